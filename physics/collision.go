package physics

import "github.com/lixenwraith/vi-pong/components"

// Outcome reports whether the simulation continues after a step
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeMissed           // Ball left through the left edge, game over
)

// String returns the outcome name for logging
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeMissed:
		return "missed"
	default:
		return "unknown"
	}
}

// PaddleCollision tests the ball's planned column against the paddle column
// and the ball's current row against the paddle hit span. On a hit the score
// is incremented and the column velocity inverted.
// The row test lags one frame behind the column test; gameplay depends on it.
func PaddleCollision(ball *components.BallComponent, paddle *components.PaddleComponent) bool {
	if ball.Next.X != paddle.X {
		return false
	}

	top, bottom := paddle.HitSpan()
	if ball.Position.Y < top || ball.Position.Y > bottom {
		return false
	}

	paddle.Score++
	ball.BounceX()
	return true
}

// WallCollision resolves the planned position against the arena walls and
// commits motion per axis. An axis that bounces does not advance this frame.
// The left edge is not a wall: crossing it ends the game with no mutation.
func WallCollision(ball *components.BallComponent, bounds components.BoundsComponent) Outcome {
	next := ball.Next

	if next.X < 0 {
		return OutcomeMissed
	}

	if next.X >= bounds.MaxX {
		ball.BounceX()
	} else {
		ball.Position.X += ball.Velocity.X
	}

	if next.Y >= bounds.MaxY || next.Y < 0 {
		ball.BounceY()
	} else {
		ball.Position.Y += ball.Velocity.Y
	}

	return OutcomeContinue
}
