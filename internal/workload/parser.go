// Package workload tokenizes and parses the meta-data file: the
// `X{command}N;` token stream describing a batch of applications, each
// an ordered list of processor/memory/I-O operations. Modeled on a
// fixed opcode table driving a switch, with explicit errors on
// malformed fields, generalized from binary opcodes to the
// two-character textual codes this grammar uses.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/corrigan-b/ossched/internal/config"
	"github.com/corrigan-b/ossched/internal/model"
)

// token is one `X{command}N` unit lexed out of the stream, with its
// trailing semicolon already stripped.
type token struct {
	letter  byte
	command string
	count   int
}

var tokenPattern = regexp.MustCompile(`([A-Z])\{([^}]*)\}(\d+);`)

// tokenize splits the entire stream into tokens in appearance order. The
// grammar has no other syntax (no comments, no whitespace significance
// beyond separating tokens), so a single regexp pass over the whole file
// is simpler and no less correct than a stateful scanner.
func tokenize(r io.Reader) ([]token, *model.Error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, model.WrapError("workload.tokenize", model.ErrCodeWorkloadMalformed, err)
	}
	matches := tokenPattern.FindAllStringSubmatch(string(data), -1)
	tokens := make([]token, 0, len(matches))
	for _, m := range matches {
		n, convErr := strconv.Atoi(m[3])
		if convErr != nil {
			return nil, model.NewError("workload.tokenize", model.ErrCodeWorkloadMalformed, "bad cycle count in token: "+m[0])
		}
		tokens = append(tokens, token{letter: m[1][0], command: m[2], count: n})
	}
	return tokens, nil
}

// opKindFor maps a P/M/O/I token's (letter, command) pair to an
// OperationKind per the grammar's fixed code table.
func opKindFor(t token) (model.OperationKind, *model.Error) {
	switch t.letter {
	case 'P':
		if t.command == "run" {
			return model.ProcessorRun, nil
		}
	case 'M':
		switch t.command {
		case "allocate":
			return model.MemoryAllocate, nil
		case "block":
			return model.MemoryBlock, nil
		}
	case 'O':
		switch t.command {
		case "monitor":
			return model.OutputMonitor, nil
		case "projector":
			return model.OutputProjector, nil
		case "hard drive":
			return model.OutputHardDrive, nil
		}
	case 'I':
		switch t.command {
		case "keyboard":
			return model.InputKeyboard, nil
		case "hard drive":
			return model.InputHardDrive, nil
		case "scanner":
			return model.InputScanner, nil
		}
	}
	return 0, model.NewError("workload.opKindFor", model.ErrCodeWorkloadMalformed,
		fmt.Sprintf("unknown operation code %c{%s}", t.letter, t.command))
}

// cycleTimeFor returns the configured per-cycle time, in ms, for kind.
func cycleTimeFor(cfg *config.Configuration, kind model.OperationKind) int {
	switch kind {
	case model.ProcessorRun:
		return cfg.ProcessorCycleMs
	case model.MemoryAllocate, model.MemoryBlock:
		return cfg.MemoryCycleMs
	case model.OutputMonitor:
		return cfg.MonitorCycleMs
	case model.OutputProjector:
		return cfg.ProjectorCycleMs
	case model.OutputHardDrive, model.InputHardDrive:
		return cfg.HardDriveCycleMs
	case model.InputKeyboard:
		return cfg.KeyboardCycleMs
	case model.InputScanner:
		return cfg.ScannerCycleMs
	default:
		return 0
	}
}

// Parse reads the full meta-data stream and returns one Process per
// A{begin}/A{finish} bracketed pair, in pid order starting at 1. Each
// operation's duration_ms is pre-resolved against cfg's per-device cycle
// times, so each Operation carries a pre-resolved duration in ms.
// A missing A{finish} before S{finish} is reported as WorkloadMalformed.
func Parse(r io.Reader, cfg *config.Configuration) ([]*model.Process, *model.Error) {
	tokens, err := tokenize(r)
	if err != nil {
		return nil, err
	}

	var programOpen, appOpen bool
	var processes []*model.Process
	var current []model.Operation
	nextPID := 1

	for _, t := range tokens {
		if t.letter == 'S' {
			switch t.command {
			case "begin":
				programOpen = true
			case "finish":
				if appOpen {
					return nil, model.NewError("workload.Parse", model.ErrCodeWorkloadMalformed, "S{finish} encountered with an application still open")
				}
				programOpen = false
			default:
				return nil, model.NewError("workload.Parse", model.ErrCodeWorkloadMalformed, "unknown S command: "+t.command)
			}
			continue
		}
		if !programOpen {
			return nil, model.NewError("workload.Parse", model.ErrCodeWorkloadMalformed, "operation token outside S{begin}/S{finish} bracket")
		}
		if t.letter == 'A' {
			switch t.command {
			case "begin":
				if appOpen {
					return nil, model.NewError("workload.Parse", model.ErrCodeWorkloadMalformed, "nested A{begin} without a matching A{finish}")
				}
				appOpen = true
				current = []model.Operation{{Kind: model.AppStart}}
			case "finish":
				if !appOpen {
					return nil, model.NewError("workload.Parse", model.ErrCodeWorkloadMalformed, "A{finish} without a matching A{begin}")
				}
				current = append(current, model.Operation{Kind: model.AppFinish})
				processes = append(processes, model.NewProcess(nextPID, current))
				nextPID++
				current = nil
				appOpen = false
			default:
				return nil, model.NewError("workload.Parse", model.ErrCodeWorkloadMalformed, "unknown A command: "+t.command)
			}
			continue
		}

		if !appOpen {
			return nil, model.NewError("workload.Parse", model.ErrCodeWorkloadMalformed, "operation token outside A{begin}/A{finish} bracket")
		}
		kind, kerr := opKindFor(t)
		if kerr != nil {
			return nil, kerr
		}
		duration := t.count * cycleTimeFor(cfg, kind)
		current = append(current, model.Operation{Kind: kind, Cycles: t.count, Duration: duration})
	}

	if appOpen {
		return nil, model.NewError("workload.Parse", model.ErrCodeWorkloadMalformed, "missing A{finish} before end of input")
	}
	if programOpen {
		return nil, model.NewError("workload.Parse", model.ErrCodeWorkloadMalformed, "missing S{finish} before end of input")
	}
	return processes, nil
}

// Load opens path and parses it against cfg.
func Load(path string, cfg *config.Configuration) ([]*model.Process, *model.Error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, model.NewError("workload.Load", model.ErrCodeWorkloadNotFound, fmt.Sprintf("workload file not found: %s", path))
	}
	defer f.Close()
	return Parse(bufio.NewReader(f), cfg)
}
