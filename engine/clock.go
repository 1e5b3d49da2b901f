package engine

import (
	"sync"
	"time"
)

// Clock supplies the scheduler's notion of now
type Clock interface {
	Now() time.Time
}

// MonotonicClock reads the wall clock; time.Now carries the monotonic reading the scheduler subtracts
type MonotonicClock struct{}

func (MonotonicClock) Now() time.Time { return time.Now() }

// MockClock only moves when a test moves it
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// SetTime jumps to t, backwards included
func (c *MockClock) SetTime(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
