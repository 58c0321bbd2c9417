// Package ossched simulates the lifecycle of a batch of user processes on a
// small operating-system model: a configurable CPU scheduler, a per-process
// state machine, a device-contention model, and a periodic process-injection
// interrupt, all projected onto a uniform, discipline-agnostic event trace.
package ossched

import "github.com/corrigan-b/ossched/internal/model"

// OperationKind identifies the kind of work a single Operation performs.
type OperationKind = model.OperationKind

const (
	ProcessorRun    = model.ProcessorRun
	MemoryAllocate  = model.MemoryAllocate
	MemoryBlock     = model.MemoryBlock
	OutputMonitor   = model.OutputMonitor
	OutputProjector = model.OutputProjector
	OutputHardDrive = model.OutputHardDrive
	InputKeyboard   = model.InputKeyboard
	InputHardDrive  = model.InputHardDrive
	InputScanner    = model.InputScanner
	AppStart        = model.AppStart
	AppFinish       = model.AppFinish
)

// Operation is a single unit of work inside a Process. See internal/model
// for the full documentation; this is a type alias so downstream code can
// use ossched.Operation interchangeably with model.Operation.
type Operation = model.Operation

// Process is one application's ordered, consumable sequence of Operations.
type Process = model.Process

// NewProcess constructs a Process from a caller-supplied operation list.
func NewProcess(pid int, ops []Operation) *Process {
	return model.NewProcess(pid, ops)
}
