package clock

import "sync"

// FastForward is a pure fast-forward counter: Delay adds ms/1000 seconds to
// an internal counter and returns immediately, without consuming any real
// wall-clock time. This is the default clock for the CLI and for all
// tests — it makes the simulation's event trace reproducible and fast
// regardless of the configured cycle times.
type FastForward struct {
	mu      sync.Mutex
	seconds float64
}

// NewFastForward returns a FastForward clock starting at t=0.
func NewFastForward() *FastForward {
	return &FastForward{}
}

func (c *FastForward) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seconds
}

func (c *FastForward) Delay(ms int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seconds += float64(ms) / 1000.0
}

var _ Clock = (*FastForward)(nil)
