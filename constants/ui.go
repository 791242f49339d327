package constants

// Glyphs
const (
	BallGlyph   = "O"
	PaddleGlyph = "|"
)

// Score banner layout
const (
	// ScoreFormat is rendered on ScoreRow, centred by ScoreCenterOffset
	ScoreFormat = "Score: %d"

	ScoreRow = 0

	// ScoreCenterOffset is subtracted from width/2 to place the score text
	ScoreCenterOffset = 7
)

// Pause banner layout
const (
	PauseBanner    = "PAUSE - press any key to resume"
	PauseBannerRow = 1
	PauseBannerCol = 0
)

// GameOverFormat is printed to stdout after the terminal is released
const GameOverFormat = "GAME OVER\nFinal Score: %d\n"
