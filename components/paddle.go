package components

// PaddleComponent is the player paddle. Y is the top edge, the paddle
// occupies rows [Y, Y+Length).
type PaddleComponent struct {
	X      int // Fixed column
	Y      int // Top row
	Length int
	Score  int
}

// NewPaddle creates a paddle at column x with its top at row y
func NewPaddle(x, y, length int) *PaddleComponent {
	return &PaddleComponent{X: x, Y: y, Length: length}
}

// HitSpan returns the inclusive row range counted as a paddle hit.
// bottom is one row past the drawn paddle.
func (p *PaddleComponent) HitSpan() (top, bottom int) {
	return p.Y, p.Bottom()
}

// Bottom returns the first row below the paddle
func (p *PaddleComponent) Bottom() int {
	return p.Y + p.Length
}
