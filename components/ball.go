package components

// BallComponent holds the ball state mutated by the physics step
type BallComponent struct {
	Position PositionComponent // Committed position, drawn each frame
	Next     PositionComponent // One-frame look-ahead used for collision tests
	Velocity VelocityComponent
}

// NewBall creates a ball at the given cell moving with the given velocity
func NewBall(x, y, vx, vy int) *BallComponent {
	return &BallComponent{
		Position: PositionComponent{X: x, Y: y},
		Velocity: VelocityComponent{X: vx, Y: vy},
	}
}

// PlanNext stores position+velocity into Next and returns it
func (b *BallComponent) PlanNext() PositionComponent {
	b.Next = b.Position.Add(b.Velocity)
	return b.Next
}

// BounceX inverts the column velocity
func (b *BallComponent) BounceX() {
	b.Velocity.X = -b.Velocity.X
}

// BounceY inverts the row velocity
func (b *BallComponent) BounceY() {
	b.Velocity.Y = -b.Velocity.Y
}
