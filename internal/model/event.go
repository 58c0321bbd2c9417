package model

import "fmt"

// EventKind tags what triggered an Event, mirroring the trigger column of
// the canonical message table.
type EventKind int

const (
	EventSimulatorBegin EventKind = iota
	EventSimulatorEnd
	EventAppPreparing
	EventAppStarting
	EventAppFinish
	EventOpStart
	EventOpEnd
	EventInterrupted
)

// Event is the single structured log record the executor emits. Sinks
// receive these in emission order and are responsible only for rendering
// and writing Line; the core never touches an output medium directly.
type Event struct {
	Time float64 // simulated seconds, six-digit fixed point at render time
	Kind EventKind
	PID  int    // 0 when not process-scoped
	Line string // fully rendered human-readable text, sans timestamp prefix
}

// Sink receives Events in emission order and is responsible for rendering
// and persisting them. Implementations live in internal/sink; the executor
// depends only on this interface, never on a concrete output medium.
type Sink interface {
	Write(Event) error
	Close() error
}

// FormatLine renders the fixed-point-timestamp-prefixed line for e, in the
// canonical "%.6f - %s" form every sink uses.
func FormatLine(e Event) string {
	return fmt.Sprintf("%.6f - %s", e.Time, e.Line)
}

// Canonical event constructors, one per row of the event-emitter message
// table. Exported so internal/executor (the only emitter) can build events
// without depending on the root package — avoiding an import cycle between
// the root package (which wires the executor) and the executor itself.

func NewSimulatorBeginEvent(t float64) Event {
	return Event{Time: t, Kind: EventSimulatorBegin, Line: "Simulator program starting"}
}

func NewSimulatorEndEvent(t float64) Event {
	return Event{Time: t, Kind: EventSimulatorEnd, Line: "Simulator program ending"}
}

func NewAppPreparingEvent(t float64, pid int) Event {
	return Event{Time: t, Kind: EventAppPreparing, PID: pid, Line: fmt.Sprintf("OS: preparing process %d", pid)}
}

func NewAppStartingEvent(t float64, pid int) Event {
	return Event{Time: t, Kind: EventAppStarting, PID: pid, Line: fmt.Sprintf("OS: starting process %d", pid)}
}

func NewAppFinishEvent(t float64, pid int) Event {
	return Event{Time: t, Kind: EventAppFinish, PID: pid, Line: fmt.Sprintf("End process %d", pid)}
}

func NewInterruptedEvent(t float64, pid int) Event {
	return Event{Time: t, Kind: EventInterrupted, PID: pid, Line: "******* Process was interrupted *******"}
}

// NewOpStartEvent renders the start-phase line for op, including device
// index where the kind requires one.
func NewOpStartEvent(t float64, pid int, op Operation, deviceIndex int) Event {
	return Event{Time: t, Kind: EventOpStart, PID: pid, Line: fmt.Sprintf("Process %d: %s", pid, opDescriptor(op.Kind, "start", deviceIndex))}
}

// NewOpEndEvent renders the end-phase line for op. MemoryAllocate is
// special-cased: its end line reports the allocated address rather than the
// generic "memory allocated" descriptor.
func NewOpEndEvent(t float64, pid int, op Operation, deviceIndex int, memAddr string) Event {
	desc := opDescriptor(op.Kind, "end", deviceIndex)
	if op.Kind == MemoryAllocate {
		desc = fmt.Sprintf("memory allocated at %s", memAddr)
	}
	return Event{Time: t, Kind: EventOpEnd, PID: pid, Line: fmt.Sprintf("Process %d: %s", pid, desc)}
}

func opDescriptor(kind OperationKind, phase string, deviceIndex int) string {
	switch kind {
	case ProcessorRun:
		return phase + " processing action"
	case MemoryAllocate:
		if phase == "start" {
			return "allocating memory"
		}
		return "memory allocated"
	case MemoryBlock:
		return phase + " memory blocking"
	case OutputMonitor:
		return phase + " monitor output"
	case OutputProjector:
		return fmt.Sprintf("%s projector output on PROJ %d", phase, deviceIndex)
	case OutputHardDrive:
		return fmt.Sprintf("%s hard drive output on HDD %d", phase, deviceIndex)
	case InputKeyboard:
		return phase + " keyboard input"
	case InputHardDrive:
		return fmt.Sprintf("%s hard drive input on HDD %d", phase, deviceIndex)
	case InputScanner:
		return phase + " scanner input"
	default:
		return phase + " " + kind.String()
	}
}
