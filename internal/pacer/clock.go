// Package pacer paces a frame loop against a monotonic clock and measures
// the achieved frame rate.
package pacer

import (
	"sync"
	"time"
)

// Clock is the time source used by the pacer.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// RealClock uses the system monotonic clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// Sleep pauses the current goroutine.
func (RealClock) Sleep(d time.Duration) { time.Sleep(d) }

// MockClock provides a controllable time source for testing.
// Sleep advances the mock time instead of blocking.
type MockClock struct {
	mu      sync.RWMutex
	current time.Time
	slept   time.Duration
}

// NewMockClock creates a new mock clock with the given start time.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

// Now returns the current mocked time.
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Sleep advances the clock by d and records it.
func (m *MockClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
	m.slept += d
}

// Advance advances the current time by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Slept returns the total time spent in Sleep.
func (m *MockClock) Slept() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slept
}
