package engine

import "time"

// Clock paces the game loop. Sleep is the only suspension point
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// Sleep blocks the calling goroutine for d
func (p *TimeProvider) Sleep(d time.Duration) {
	time.Sleep(d)
}
