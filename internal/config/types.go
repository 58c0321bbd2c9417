// Package config parses, validates, and round-trips the simulator
// configuration file: one "key: value" pair per line, in any order.
// Modeled on a DeviceParams / Validate idiom: a plain struct plus an
// explicit validation method returning a structured error.
package config

import (
	"github.com/corrigan-b/ossched/internal/model"
	"github.com/corrigan-b/ossched/internal/scheduler"
)

// MemoryUnit is one of the three byte-count suffixes the config grammar
// accepts for memory quantities.
type MemoryUnit string

const (
	UnitKbytes MemoryUnit = "kbytes"
	UnitMbytes MemoryUnit = "Mbytes"
	UnitGbytes MemoryUnit = "Gbytes"
)

func (u MemoryUnit) bytesPerUnit() int {
	switch u {
	case UnitKbytes:
		return 1024
	case UnitMbytes:
		return 1024 * 1024
	case UnitGbytes:
		return 1024 * 1024 * 1024
	default:
		return 1
	}
}

// LogTarget is the configured event-sink policy.
type LogTarget int

const (
	LogMonitor LogTarget = iota
	LogFile
	LogBoth
)

func (t LogTarget) String() string {
	switch t {
	case LogMonitor:
		return "Monitor"
	case LogFile:
		return "File"
	case LogBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

// Configuration is the fully parsed, validated config file: per-device
// cycle times, device counts, the memory layout, the scheduling
// discipline, and the logging target. Memory quantities are kept as the
// raw unit/value pairs that were parsed (byte counts are derived from them
// by SystemMemoryBytes and MemoryBlockSizeBytes) so Encode can write back
// a file that Parse reads into an equal Configuration (the round-trip
// testable property).
type Configuration struct {
	WorkloadPath string

	MonitorCycleMs   int
	ProcessorCycleMs int
	ScannerCycleMs   int
	HardDriveCycleMs int
	KeyboardCycleMs  int
	MemoryCycleMs    int
	ProjectorCycleMs int

	QuantumMs  int
	QuantumSet bool // RR/STR require this; other disciplines may omit it

	ProjectorCount int
	HardDriveCount int

	SystemMemoryRaw  int
	SystemMemoryUnit MemoryUnit
	MemoryBlockRaw   int
	MemoryBlockUnit  MemoryUnit

	Discipline scheduler.Discipline

	LogTarget LogTarget
	LogPath   string
}

// SystemMemoryBytes returns the normalized total memory in bytes.
func (c *Configuration) SystemMemoryBytes() int {
	return c.SystemMemoryRaw * c.SystemMemoryUnit.bytesPerUnit()
}

// MemoryBlockSizeBytes returns the normalized memory block size in bytes.
func (c *Configuration) MemoryBlockSizeBytes() int {
	return c.MemoryBlockRaw * c.MemoryBlockUnit.bytesPerUnit()
}

// Validate enforces the configuration's invariants: all cycle times positive,
// quantum positive when a preemptive discipline is chosen, and memory
// block size divides total memory.
func (c *Configuration) Validate() *model.Error {
	cycles := map[string]int{
		"monitor cycle time":   c.MonitorCycleMs,
		"processor cycle time": c.ProcessorCycleMs,
		"scanner cycle time":   c.ScannerCycleMs,
		"hard drive cycle time": c.HardDriveCycleMs,
		"keyboard cycle time":  c.KeyboardCycleMs,
		"memory cycle time":    c.MemoryCycleMs,
		"projector cycle time": c.ProjectorCycleMs,
	}
	for name, v := range cycles {
		if v <= 0 {
			return model.NewError("config.Validate", model.ErrCodeConfigMalformed, name+" must be > 0")
		}
	}

	if c.ProjectorCount < 1 {
		return model.NewError("config.Validate", model.ErrCodeConfigMalformed, "projector quantity must be >= 1")
	}
	if c.HardDriveCount < 1 {
		return model.NewError("config.Validate", model.ErrCodeConfigMalformed, "hard drive quantity must be >= 1")
	}

	if c.Discipline == scheduler.RR || c.Discipline == scheduler.STR {
		if !c.QuantumSet || c.QuantumMs <= 0 {
			return model.NewError("config.Validate", model.ErrCodeConfigMalformed, "processor quantum is required and must be > 0 for RR/STR")
		}
	}

	total := c.SystemMemoryBytes()
	block := c.MemoryBlockSizeBytes()
	if total <= 0 || block <= 0 {
		return model.NewError("config.Validate", model.ErrCodeConfigMalformed, "system memory and memory block size must be > 0")
	}
	if total%block != 0 {
		return model.NewError("config.Validate", model.ErrCodeConfigMalformed, "memory block size must divide total system memory")
	}

	if c.WorkloadPath == "" {
		return model.NewError("config.Validate", model.ErrCodeConfigMalformed, "Path must be set")
	}

	return nil
}
