package clock

import (
	"sync"
	"time"
)

// Realtime tracks elapsed wall-clock time and sleeps for real on Delay.
// It exists to show the simulator's ordering guarantees hold even when the
// clock is backed by actual concurrency, not just a counter; it is not
// used by the CLI or by the simulation tests (only this package's own
// clock tests exercise it), since real sleeps would make tests slow and
// flaky for no benefit (FastForward produces an identical event
// stream, per the Design Note that a single-threaded implementation
// calling delay under the arbiter lock is indistinguishable from a
// threaded one).
type Realtime struct {
	mu    sync.Mutex
	start time.Time
}

// NewRealtime returns a Realtime clock whose epoch is the call time.
func NewRealtime() *Realtime {
	return &Realtime{start: time.Now()}
}

func (c *Realtime) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Since(c.start).Seconds()
}

func (c *Realtime) Delay(ms int) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

var _ Clock = (*Realtime)(nil)
