package ossched

import "github.com/corrigan-b/ossched/internal/model"

// ProcessState is the process control block's state. See internal/model
// for the full documentation.
type ProcessState = model.ProcessState

const (
	StateNew     = model.StateNew
	StateReady   = model.StateReady
	StateRunning = model.StateRunning
	StateWaiting = model.StateWaiting
	StateExit    = model.StateExit
)
