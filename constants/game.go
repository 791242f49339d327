package constants

import "time"

// Game Loop Timing Constants
const (
	// TickDelay is the pacing delay between simulation frames, also used while paused
	TickDelay = 30 * time.Millisecond

	// KeyQueueSize is the buffer between the terminal event pump and the loop
	KeyQueueSize = 64
)

// Paddle Placement Constants
const (
	// PaddleColumn is the fixed column of the player paddle
	PaddleColumn = 5

	// PaddleStartRow is the initial top row of the paddle
	PaddleStartRow = 11

	// PaddleLengthDivisor sizes the paddle as arena height / divisor
	PaddleLengthDivisor = 4
)

// Ball Constants
const (
	// BallInitialVelocityX is the column delta the ball starts with
	BallInitialVelocityX = 1

	// BallInitialVelocityY is the row delta the ball starts with
	BallInitialVelocityY = 1
)
