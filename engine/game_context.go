package engine

import (
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/render"
)

// GameContext owns all simulation state. Only the game loop touches it
type GameContext struct {
	Ball   *components.BallComponent
	Paddle *components.PaddleComponent
	Bounds components.BoundsComponent
}

// NewGameContext places the paddle and ball for an arena of the given size
func NewGameContext(width, height int) *GameContext {
	length := height / constants.PaddleLengthDivisor

	top := constants.PaddleStartRow
	if top > height-length {
		top = height - length
	}
	if top < 0 {
		top = 0
	}

	return &GameContext{
		Ball: components.NewBall(width/2, height/2,
			constants.BallInitialVelocityX, constants.BallInitialVelocityY),
		Paddle: components.NewPaddle(constants.PaddleColumn, top, length),
		Bounds: components.BoundsComponent{MaxX: width, MaxY: height},
	}
}

// UpdateBounds stores a fresh bounds reading and clamps entities into it.
// Returns true if an entity had to be moved.
func (c *GameContext) UpdateBounds(width, height int) bool {
	c.Bounds = components.BoundsComponent{MaxX: width, MaxY: height}
	return physics.Clamp(c.Ball, c.Paddle, c.Bounds)
}

// RenderContext exposes the state to renderers
func (c *GameContext) RenderContext() render.RenderContext {
	return render.RenderContext{
		Ball:   c.Ball,
		Paddle: c.Paddle,
		Bounds: c.Bounds,
	}
}
