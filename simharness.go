package ossched

import (
	"github.com/corrigan-b/ossched/internal/clock"
	"github.com/corrigan-b/ossched/internal/config"
	"github.com/corrigan-b/ossched/internal/scheduler"
)

// BuildProcess is a test-fixture helper that brackets ops with AppStart and
// AppFinish and constructs a Process, saving callers from repeating the
// bracketing boilerplate in every test. Modeled on exported test-support
// helpers (MockBackend et al.) — a non-test file of fixture builders
// shared across package test suites.
func BuildProcess(pid int, ops ...Operation) *Process {
	full := make([]Operation, 0, len(ops)+2)
	full = append(full, Operation{Kind: AppStart})
	full = append(full, ops...)
	full = append(full, Operation{Kind: AppFinish})
	return NewProcess(pid, full)
}

// NewTestConfiguration returns a Configuration with every cycle time,
// device count, and memory field set to a small, deterministic value
// suitable for fast unit tests, under discipline. Quantum is set whenever
// discipline is RR or STR, since Configuration.Validate requires it there.
func NewTestConfiguration(discipline scheduler.Discipline) *config.Configuration {
	cfg := &config.Configuration{
		WorkloadPath:     "workload.txt",
		MonitorCycleMs:   10,
		ProcessorCycleMs: 10,
		ScannerCycleMs:   10,
		HardDriveCycleMs: 10,
		KeyboardCycleMs:  10,
		MemoryCycleMs:    10,
		ProjectorCycleMs: 10,
		ProjectorCount:   2,
		HardDriveCount:   2,
		SystemMemoryRaw:  8,
		SystemMemoryUnit: config.UnitKbytes,
		MemoryBlockRaw:   4,
		MemoryBlockUnit:  config.UnitKbytes,
		Discipline:       discipline,
		LogTarget:        config.LogMonitor,
	}
	if discipline == scheduler.RR || discipline == scheduler.STR {
		cfg.QuantumMs = 50
		cfg.QuantumSet = true
	}
	return cfg
}

// NewTestClock returns the deterministic fast-forward clock every test
// should use, never clock.NewRealtime.
func NewTestClock() clock.Clock {
	return clock.NewFastForward()
}
