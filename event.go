package ossched

import "github.com/corrigan-b/ossched/internal/model"

// EventKind tags what triggered an Event. See internal/model for the full
// documentation.
type EventKind = model.EventKind

const (
	EventSimulatorBegin = model.EventSimulatorBegin
	EventSimulatorEnd   = model.EventSimulatorEnd
	EventAppPreparing   = model.EventAppPreparing
	EventAppStarting    = model.EventAppStarting
	EventAppFinish      = model.EventAppFinish
	EventOpStart        = model.EventOpStart
	EventOpEnd          = model.EventOpEnd
	EventInterrupted    = model.EventInterrupted
)

// Event is the single structured log record the executor emits.
type Event = model.Event

// Sink receives Events in emission order and is responsible for rendering
// and persisting them. Implementations live in internal/sink.
type Sink = model.Sink

// FormatLine renders the fixed-point-timestamp-prefixed line for e, in the
// canonical "%.6f - %s" form every sink uses.
func FormatLine(e Event) string {
	return model.FormatLine(e)
}
