// Package arbiter serializes all I/O-class operations behind a single
// mutex and assigns round-robin device indices per device class,
// collapsing a sharded-pool-bucket selection pattern down to one
// global lock.
package arbiter

import "sync"

// DeviceClass identifies a countable device class for round-robin index
// assignment.
type DeviceClass int

const (
	ClassProjectorOut DeviceClass = iota
	ClassHardDriveOut
	ClassHardDriveIn
	numDeviceClasses
)

// Arbiter enforces "at most one I/O operation in progress at any simulated
// instant" and hands out device indices for projector/HDD classes.
type Arbiter struct {
	io sync.Mutex

	mu       sync.Mutex
	counters [numDeviceClasses]uint64
}

// New returns a ready-to-use Arbiter.
func New() *Arbiter {
	return &Arbiter{}
}

// Lock acquires the single global I/O mutex. Callers must call Unlock when
// the I/O operation's simulated delay completes.
func (a *Arbiter) Lock() {
	a.io.Lock()
}

// Unlock releases the single global I/O mutex.
func (a *Arbiter) Unlock() {
	a.io.Unlock()
}

// NextIndex returns the device index for the next use of class, as
// (use-count mod classSize), and advances the class's counter. classSize
// must be >= 1; device-count validation happens in internal/config.
func (a *Arbiter) NextIndex(class DeviceClass, classSize int) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := a.counters[class]
	a.counters[class]++
	return int(n % uint64(classSize))
}

// Counts returns a snapshot of the three device-class counters, in class
// order: projector-out, hdd-out, hdd-in.
func (a *Arbiter) Counts() [3]uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counters
}
