package components

// BoundsComponent is the drawable arena size as last queried from the terminal.
// MaxX and MaxY are exclusive: valid cells are [0, MaxX) x [0, MaxY).
type BoundsComponent struct {
	MaxX, MaxY int
}

// Contains reports whether a position lies inside the arena
func (b BoundsComponent) Contains(p PositionComponent) bool {
	return p.X >= 0 && p.X < b.MaxX && p.Y >= 0 && p.Y < b.MaxY
}
