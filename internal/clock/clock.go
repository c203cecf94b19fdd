// Package clock abstracts wall time so the engine and game can be driven
// deterministically in tests and simulations.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

// Now returns time.Now.
func (System) Now() time.Time { return time.Now() }

// Manual is a clock that only moves when told to.
type Manual struct {
	mu      sync.RWMutex
	current time.Time
}

// NewManual returns a Manual clock at 2024-01-01 00:00:00 UTC.
func NewManual() *Manual {
	return NewManualAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

// NewManualAt returns a Manual clock at t.
func NewManualAt(t time.Time) *Manual {
	return &Manual{current: t}
}

// Now returns the current time on the clock.
func (c *Manual) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Advance moves the clock forward by d.
func (c *Manual) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Set moves the clock to t.
func (c *Manual) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// UnixMilli is the timestamp format stored in saves.
func UnixMilli(c Clock) int64 {
	return c.Now().UnixMilli()
}
