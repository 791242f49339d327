package components

// PositionComponent is a terminal cell coordinate (column X, row Y)
type PositionComponent struct {
	X, Y int
}

// Add returns the position offset by a velocity
func (p PositionComponent) Add(v VelocityComponent) PositionComponent {
	return PositionComponent{X: p.X + v.X, Y: p.Y + v.Y}
}

// VelocityComponent is a per-frame cell delta.
// Ball velocities are unit magnitude on both axes; only the sign ever changes.
type VelocityComponent struct {
	X, Y int
}
