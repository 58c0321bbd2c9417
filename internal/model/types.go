// Package model holds the data types shared by every internal package —
// Operation, Process, and the PCB state enum — separated from the public
// ossched package to avoid an import cycle (ossched re-exports these as
// type aliases; internal/scheduler, internal/executor, and friends import
// model directly).
package model

import "fmt"

// OperationKind identifies the kind of work a single Operation performs.
type OperationKind int

const (
	ProcessorRun OperationKind = iota
	MemoryAllocate
	MemoryBlock
	OutputMonitor
	OutputProjector
	OutputHardDrive
	InputKeyboard
	InputHardDrive
	InputScanner
	AppStart
	AppFinish
)

// String returns a short human-readable name for the kind, used in event
// messages and diagnostics.
func (k OperationKind) String() string {
	switch k {
	case ProcessorRun:
		return "ProcessorRun"
	case MemoryAllocate:
		return "MemoryAllocate"
	case MemoryBlock:
		return "MemoryBlock"
	case OutputMonitor:
		return "OutputMonitor"
	case OutputProjector:
		return "OutputProjector"
	case OutputHardDrive:
		return "OutputHardDrive"
	case InputKeyboard:
		return "InputKeyboard"
	case InputHardDrive:
		return "InputHardDrive"
	case InputScanner:
		return "InputScanner"
	case AppStart:
		return "AppStart"
	case AppFinish:
		return "AppFinish"
	default:
		return fmt.Sprintf("OperationKind(%d)", int(k))
	}
}

// IsIO reports whether operations of this kind belong to the I/O subset
// that must acquire the device arbiter: OutputMonitor, OutputProjector,
// OutputHardDrive, InputKeyboard, InputHardDrive, InputScanner.
func (k OperationKind) IsIO() bool {
	switch k {
	case OutputMonitor, OutputProjector, OutputHardDrive,
		InputKeyboard, InputHardDrive, InputScanner:
		return true
	default:
		return false
	}
}

// Operation is a single unit of work inside a Process. Operations are
// immutable once constructed; the executor mutates only the remaining
// duration of the operation at the head of a process's queue (for
// round-robin preemption), never the Kind or Cycles.
type Operation struct {
	Kind     OperationKind
	Cycles   int
	Duration int // duration_ms, pre-resolved from Cycles * cycle-time-for-kind
}

// Process is one application's ordered, consumable sequence of Operations,
// bracketed by AppStart first and AppFinish last.
type Process struct {
	PID       int
	Ops       []Operation
	IOCount   int // number of operations in the I/O subset
	TaskCount int // total operations excluding AppStart/AppFinish
	State     ProcessState
}

// RemainingDuration returns the sum of Duration across all operations still
// pending in the process, used by the shortest-time-remaining discipline.
func (p *Process) RemainingDuration() int {
	total := 0
	for _, op := range p.Ops {
		total += op.Duration
	}
	return total
}

// Clone returns a deep copy of p suitable for re-admission under a fresh
// pid by the interrupt source; the original p is left untouched.
func (p *Process) Clone(newPID int) *Process {
	ops := make([]Operation, len(p.Ops))
	copy(ops, p.Ops)
	return &Process{
		PID:       newPID,
		Ops:       ops,
		IOCount:   p.IOCount,
		TaskCount: p.TaskCount,
	}
}

// NewProcess constructs a Process from a caller-supplied operation list,
// computing IOCount and TaskCount. ops must already be bracketed by
// AppStart first and AppFinish last.
func NewProcess(pid int, ops []Operation) *Process {
	p := &Process{PID: pid, Ops: ops}
	for _, op := range ops {
		if op.Kind == AppStart || op.Kind == AppFinish {
			continue
		}
		p.TaskCount++
		if op.Kind.IsIO() {
			p.IOCount++
		}
	}
	return p
}
