package physics

import "github.com/lixenwraith/vi-pong/components"

// StepResult describes what happened during one physics step
type StepResult struct {
	Outcome   Outcome
	PaddleHit bool
}

// Step advances the ball by one frame: plan the next position, resolve the
// paddle, then resolve the walls. Wall tests use the position planned before
// any paddle bounce.
func Step(ball *components.BallComponent, paddle *components.PaddleComponent, bounds components.BoundsComponent) StepResult {
	ball.PlanNext()

	hit := PaddleCollision(ball, paddle)
	outcome := WallCollision(ball, bounds)

	return StepResult{Outcome: outcome, PaddleHit: hit}
}

// Clamp pulls the paddle and ball back inside the arena after a resize.
// Velocities are never changed. Returns true if anything moved.
func Clamp(ball *components.BallComponent, paddle *components.PaddleComponent, bounds components.BoundsComponent) bool {
	moved := false

	maxTop := bounds.MaxY - paddle.Length
	if maxTop < 0 {
		maxTop = 0
	}
	if paddle.Y > maxTop {
		paddle.Y = maxTop
		moved = true
	}
	if paddle.Y < 0 {
		paddle.Y = 0
		moved = true
	}

	if bounds.Contains(ball.Position) {
		return moved
	}

	clamped := components.PositionComponent{
		X: clampAxis(ball.Position.X, bounds.MaxX),
		Y: clampAxis(ball.Position.Y, bounds.MaxY),
	}
	if clamped != ball.Position {
		ball.Position = clamped
		moved = true
	}

	return moved
}

// clampAxis limits v to [0, limit-1], or 0 for an empty axis
func clampAxis(v, limit int) int {
	if v >= limit {
		v = limit - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
