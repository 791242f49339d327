package render

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	surface   Surface
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing onto the given surface
func NewRenderOrchestrator(surface Surface) *RenderOrchestrator {
	return &RenderOrchestrator{
		surface:   surface,
		renderers: make([]rendererEntry, 0, 4),
	}
}

// NewGameOrchestrator creates an orchestrator with the ball, paddle and score renderers registered
func NewGameOrchestrator(surface Surface) *RenderOrchestrator {
	o := NewRenderOrchestrator(surface)
	o.Register(&PaddleRenderer{}, PriorityEntities)
	o.Register(&BallRenderer{}, PriorityEntities)
	o.Register(&ScoreRenderer{}, PriorityUI)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.surface.Clear()

	for _, entry := range o.renderers {
		entry.renderer.Render(ctx, o.surface)
	}

	o.surface.Show()
}

// RenderOverlay draws a single renderer over the last frame and shows it
func (o *RenderOrchestrator) RenderOverlay(r SystemRenderer, ctx RenderContext) {
	r.Render(ctx, o.surface)
	o.surface.Show()
}
