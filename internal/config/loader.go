package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/corrigan-b/ossched/internal/model"
	"github.com/corrigan-b/ossched/internal/scheduler"
)

// Load opens path and parses it as a configuration file.
func Load(path string) (*Configuration, *model.Error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.NewError("config.Load", model.ErrCodeConfigNotFound, fmt.Sprintf("config file not found: %s", path))
		}
		return nil, model.WrapError("config.Load", model.ErrCodeConfigNotFound, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the configuration file line by line, each non-blank line a
// "key: value" pair, with the lines in any order, and returns a validated
// Configuration.
func Parse(r io.Reader) (*Configuration, *model.Error) {
	cfg := &Configuration{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := applyLine(cfg, line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, model.WrapError("config.Parse", model.ErrCodeConfigMalformed, err)
	}
	if verr := cfg.Validate(); verr != nil {
		return nil, verr
	}
	return cfg, nil
}

func applyLine(cfg *Configuration, line string) *model.Error {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return model.NewError("config.applyLine", model.ErrCodeConfigMalformed, "missing ':' in line: "+line)
	}
	key := strings.TrimSpace(line[:idx])
	val := strings.TrimSpace(line[idx+1:])

	switch {
	case key == "Path":
		cfg.WorkloadPath = val
	case key == "Monitor display time {msec}":
		n, err := parseInt("Monitor display time", val)
		if err != nil {
			return err
		}
		cfg.MonitorCycleMs = n
	case key == "Processor cycle time {msec}":
		n, err := parseInt("Processor cycle time", val)
		if err != nil {
			return err
		}
		cfg.ProcessorCycleMs = n
	case key == "Processor Quantum Number {msec}":
		n, err := parseInt("Processor Quantum Number", val)
		if err != nil {
			return err
		}
		cfg.QuantumMs = n
		cfg.QuantumSet = true
	case key == "Scanner cycle time {msec}":
		n, err := parseInt("Scanner cycle time", val)
		if err != nil {
			return err
		}
		cfg.ScannerCycleMs = n
	case key == "Hard drive cycle time {msec}":
		n, err := parseInt("Hard drive cycle time", val)
		if err != nil {
			return err
		}
		cfg.HardDriveCycleMs = n
	case key == "Keyboard cycle time {msec}":
		n, err := parseInt("Keyboard cycle time", val)
		if err != nil {
			return err
		}
		cfg.KeyboardCycleMs = n
	case key == "Memory cycle time {msec}":
		n, err := parseInt("Memory cycle time", val)
		if err != nil {
			return err
		}
		cfg.MemoryCycleMs = n
	case key == "Projector cycle time {msec}":
		n, err := parseInt("Projector cycle time", val)
		if err != nil {
			return err
		}
		cfg.ProjectorCycleMs = n
	case key == "Projector quantity":
		n, err := parseInt("Projector quantity", val)
		if err != nil {
			return err
		}
		cfg.ProjectorCount = n
	case key == "Hard drive quantity":
		n, err := parseInt("Hard drive quantity", val)
		if err != nil {
			return err
		}
		cfg.HardDriveCount = n
	case strings.HasPrefix(key, "System memory {") && strings.HasSuffix(key, "}"):
		unit := MemoryUnit(key[len("System memory {") : len(key)-1])
		n, err := parseInt("System memory", val)
		if err != nil {
			return err
		}
		cfg.SystemMemoryRaw = n
		cfg.SystemMemoryUnit = unit
	case strings.HasPrefix(key, "Memory block size {") && strings.HasSuffix(key, "}"):
		unit := MemoryUnit(key[len("Memory block size {") : len(key)-1])
		n, err := parseInt("Memory block size", val)
		if err != nil {
			return err
		}
		cfg.MemoryBlockRaw = n
		cfg.MemoryBlockUnit = unit
	case key == "CPU Scheduling Code":
		d, derr := parseDiscipline(val)
		if derr != nil {
			return derr
		}
		cfg.Discipline = d
	case key == "Log":
		target, terr := parseLogTarget(val)
		if terr != nil {
			return terr
		}
		cfg.LogTarget = target
	case key == "Log File Path":
		cfg.LogPath = val
	default:
		return model.NewError("config.applyLine", model.ErrCodeConfigMalformed, "unknown config key: "+key)
	}
	return nil
}

func parseInt(field, val string) (int, *model.Error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, model.NewError("config.parseInt", model.ErrCodeConfigMalformed, fmt.Sprintf("%s: invalid integer %q", field, val))
	}
	return n, nil
}

func parseDiscipline(val string) (scheduler.Discipline, *model.Error) {
	switch val {
	case "FIFO":
		return scheduler.FIFO, nil
	case "PS":
		return scheduler.PS, nil
	case "SJF":
		return scheduler.SJF, nil
	case "STR":
		return scheduler.STR, nil
	case "RR":
		return scheduler.RR, nil
	default:
		return 0, model.NewError("config.parseDiscipline", model.ErrCodeConfigMalformed, "unknown CPU Scheduling Code: "+val)
	}
}

// parseLogTarget accepts either the bare keyword or the full "Log to
// <keyword>" phrasing the grammar allows, taking the final token.
func parseLogTarget(val string) (LogTarget, *model.Error) {
	fields := strings.Fields(val)
	if len(fields) == 0 {
		return 0, model.NewError("config.parseLogTarget", model.ErrCodeConfigMalformed, "empty Log target")
	}
	keyword := fields[len(fields)-1]
	switch keyword {
	case "Monitor":
		return LogMonitor, nil
	case "File":
		return LogFile, nil
	case "Both":
		return LogBoth, nil
	default:
		return 0, model.NewError("config.parseLogTarget", model.ErrCodeConfigMalformed, "unknown log target: "+keyword)
	}
}

// Encode writes cfg back out in the canonical field order, reproducing a
// file Parse would read back into an equal Configuration (the
// round-trip testable property).
func (c *Configuration) Encode(w io.Writer) error {
	lines := []string{
		"Path: " + c.WorkloadPath,
		fmt.Sprintf("Monitor display time {msec}: %d", c.MonitorCycleMs),
		fmt.Sprintf("Processor cycle time {msec}: %d", c.ProcessorCycleMs),
	}
	if c.QuantumSet {
		lines = append(lines, fmt.Sprintf("Processor Quantum Number {msec}: %d", c.QuantumMs))
	}
	lines = append(lines,
		fmt.Sprintf("Scanner cycle time {msec}: %d", c.ScannerCycleMs),
		fmt.Sprintf("Hard drive cycle time {msec}: %d", c.HardDriveCycleMs),
		fmt.Sprintf("Keyboard cycle time {msec}: %d", c.KeyboardCycleMs),
		fmt.Sprintf("Memory cycle time {msec}: %d", c.MemoryCycleMs),
		fmt.Sprintf("Projector cycle time {msec}: %d", c.ProjectorCycleMs),
		fmt.Sprintf("Projector quantity: %d", c.ProjectorCount),
		fmt.Sprintf("Hard drive quantity: %d", c.HardDriveCount),
		fmt.Sprintf("System memory {%s}: %d", c.SystemMemoryUnit, c.SystemMemoryRaw),
		fmt.Sprintf("Memory block size {%s}: %d", c.MemoryBlockUnit, c.MemoryBlockRaw),
		fmt.Sprintf("CPU Scheduling Code: %s", c.Discipline.String()),
		fmt.Sprintf("Log: Log to %s", c.LogTarget.String()),
		fmt.Sprintf("Log File Path: %s", c.LogPath),
	)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
