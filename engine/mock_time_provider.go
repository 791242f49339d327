package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing.
// Sleep returns immediately and advances the mocked time instead.
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	sleeps      int
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Sleep advances the mocked time by d and counts the call
func (m *MockTimeProvider) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	m.sleeps++
}

// Sleeps returns how many times Sleep was called
func (m *MockTimeProvider) Sleeps() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sleeps
}
