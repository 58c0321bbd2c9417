// Package scheduler orders runnable processes per a configurable
// discipline. It is generalized from a per-tag state machine pattern: a
// small iota-tagged enum drives branching behavior, here over "which
// process runs next" rather than "which I/O tag owns the descriptor".
package scheduler

import (
	"sort"

	"github.com/corrigan-b/ossched/internal/model"
)

// Discipline is the closed set of CPU scheduling disciplines. It is a
// single tagged value, not a pair of independent booleans (as the
// original C++ `strs`/`rrs` flags were) — RR and STR cannot coexist by
// construction.
type Discipline int

const (
	FIFO Discipline = iota
	PS              // priority scheduling: descending IOCount
	SJF             // shortest job first: ascending TaskCount
	STR             // shortest time remaining: ascending RemainingDuration
	RR              // round robin: FIFO order, quantum enforced by the executor
)

func (d Discipline) String() string {
	switch d {
	case FIFO:
		return "FIFO"
	case PS:
		return "PS"
	case SJF:
		return "SJF"
	case STR:
		return "STR"
	case RR:
		return "RR"
	default:
		return "unknown"
	}
}

// Scheduler owns the set of runnable processes and yields the next one to
// run per its Discipline.
type Scheduler struct {
	discipline Discipline
	ready      []*model.Process
}

// New returns a Scheduler ordering admissions per discipline.
func New(discipline Discipline) *Scheduler {
	return &Scheduler{discipline: discipline}
}

// Discipline returns the scheduler's configured discipline.
func (s *Scheduler) Discipline() Discipline {
	return s.discipline
}

// Admit places p into the ready set, transitioning its PCB state to Ready
// (the New/Running -> Ready admission and quantum-expiry edges).
func (s *Scheduler) Admit(p *model.Process) {
	p.State = model.StateReady
	s.ready = append(s.ready, p)
}

// Readmit places a preempted process back into the ready set. Under RR it
// is pushed to the tail, matching FIFO order; under other disciplines it
// is simply re-admitted and re-ranked on the next Next call.
func (s *Scheduler) Readmit(p *model.Process) {
	p.State = model.StateReady
	s.ready = append(s.ready, p)
}

// Next removes and returns the highest-priority process per discipline, or
// nil if the ready set is empty. Ties break by ascending PID.
func (s *Scheduler) Next() *model.Process {
	if len(s.ready) == 0 {
		return nil
	}

	idx := s.selectIndex()
	p := s.ready[idx]
	s.ready = append(s.ready[:idx], s.ready[idx+1:]...)
	p.State = model.StateRunning
	return p
}

// Snapshot returns a shallow copy of the current ready-set ordering,
// without removing anything; used by the interrupt source to clone the
// initial-workload frontier. The order matches admission order, not
// discipline order (the discipline only matters at Next time).
func (s *Scheduler) Snapshot() []*model.Process {
	out := make([]*model.Process, len(s.ready))
	copy(out, s.ready)
	return out
}

// Len reports the number of processes currently ready.
func (s *Scheduler) Len() int {
	return len(s.ready)
}

func (s *Scheduler) selectIndex() int {
	switch s.discipline {
	case PS:
		return bestIndex(s.ready, func(a, b *model.Process) bool {
			if a.IOCount != b.IOCount {
				return a.IOCount > b.IOCount // descending IOCount
			}
			return a.PID < b.PID
		})
	case SJF:
		return bestIndex(s.ready, func(a, b *model.Process) bool {
			if a.TaskCount != b.TaskCount {
				return a.TaskCount < b.TaskCount // ascending TaskCount
			}
			return a.PID < b.PID
		})
	case STR:
		return bestIndex(s.ready, func(a, b *model.Process) bool {
			ra, rb := a.RemainingDuration(), b.RemainingDuration()
			if ra != rb {
				return ra < rb // ascending remaining duration
			}
			return a.PID < b.PID
		})
	default: // FIFO, RR: ready is already in arrival/readmission order since
		// Admit and Readmit both append to the tail.
		return 0
	}
}

// bestIndex returns the index of the element that sorts first under less,
// stable for equal elements by scan order (arrival order), matching
// a tie-break rule of ascending pid, which matches arrival order.
func bestIndex(ps []*model.Process, less func(a, b *model.Process) bool) int {
	best := 0
	for i := 1; i < len(ps); i++ {
		if less(ps[i], ps[best]) {
			best = i
		}
	}
	return best
}

// SortedSnapshot returns Snapshot() sorted by the discipline's ordering,
// for diagnostics and tests; Next() does not use this (it picks the
// single best element in place, which is cheaper and sufficient). Under
// FIFO and RR the natural arrival order already is the discipline's
// ordering, so no sort is applied.
func (s *Scheduler) SortedSnapshot() []*model.Process {
	out := s.Snapshot()
	var less func(a, b *model.Process) bool
	switch s.discipline {
	case PS:
		less = func(a, b *model.Process) bool {
			if a.IOCount != b.IOCount {
				return a.IOCount > b.IOCount
			}
			return a.PID < b.PID
		}
	case SJF:
		less = func(a, b *model.Process) bool {
			if a.TaskCount != b.TaskCount {
				return a.TaskCount < b.TaskCount
			}
			return a.PID < b.PID
		}
	case STR:
		less = func(a, b *model.Process) bool {
			ra, rb := a.RemainingDuration(), b.RemainingDuration()
			if ra != rb {
				return ra < rb
			}
			return a.PID < b.PID
		}
	default:
		return out
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
