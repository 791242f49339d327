package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityEntities RenderPriority = iota
	PriorityUI
)
