package render

import "github.com/lixenwraith/vi-pong/components"

// Surface is the drawing side of the terminal session
type Surface interface {
	// Clear blanks the back buffer
	Clear()
	// SetString places str at column x, row y; off-screen cells are dropped
	SetString(x, y int, str string)
	// Show presents the back buffer
	Show()
}

// RenderContext is the read-only state a frame is drawn from
type RenderContext struct {
	Ball   *components.BallComponent
	Paddle *components.PaddleComponent
	Bounds components.BoundsComponent
}

// SystemRenderer draws one part of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, s Surface)
}
