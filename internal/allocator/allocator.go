// Package allocator implements the toy bump allocator backing
// MemoryAllocate operations, modeled on a sharded RAM-disk allocator —
// simplified to a single unsynchronized cursor, since only the executor
// ever touches it.
package allocator

import "fmt"

// Allocator is a monotonically increasing byte cursor that wraps to zero
// whenever the next allocation would exceed total bytes.
type Allocator struct {
	total     int
	blockSize int
	cursor    int
}

// New returns an Allocator over a region of total bytes, handed out in
// blockSize chunks. total and blockSize must be > 0 and blockSize must
// divide total; that invariant is enforced by internal/config's
// Configuration.Validate, not here.
func New(total, blockSize int) *Allocator {
	return &Allocator{total: total, blockSize: blockSize}
}

// Allocate returns the hex-formatted address ("0x" + 8 lowercase hex
// digits) of the current cursor, then advances the cursor by blockSize,
// wrapping to zero first if the allocation would overflow total.
func (a *Allocator) Allocate() string {
	if a.cursor+a.blockSize > a.total {
		a.cursor = 0
	}
	addr := fmt.Sprintf("0x%08x", a.cursor)
	a.cursor += a.blockSize
	return addr
}

// Cursor returns the current, pre-allocation cursor value, for tests.
func (a *Allocator) Cursor() int {
	return a.cursor
}
