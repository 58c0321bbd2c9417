package ossched

import (
	"io"

	"github.com/corrigan-b/ossched/internal/allocator"
	"github.com/corrigan-b/ossched/internal/arbiter"
	"github.com/corrigan-b/ossched/internal/clock"
	"github.com/corrigan-b/ossched/internal/config"
	"github.com/corrigan-b/ossched/internal/executor"
	"github.com/corrigan-b/ossched/internal/model"
	"github.com/corrigan-b/ossched/internal/scheduler"
	"github.com/corrigan-b/ossched/internal/sink"
	"github.com/corrigan-b/ossched/internal/workload"
)

// Simulation is the assembled context a single run owns: the scheduler's
// ready queue, the simulated clock, the device arbiter, the memory
// allocator, the event sink, and ambient metrics. It is the Go-native
// replacement for the global mutable state (config, PCB, clock, device
// counters, scheduler queues, log target) an original process-oriented
// design kept as module-wide variables, modeled on a Device/
// CreateAndServe pattern: a context struct assembled once, owning every
// sub-component's lifecycle, with a single top-level constructor.
type Simulation struct {
	Config  *config.Configuration
	Clock   clock.Clock
	Sink    Sink
	Metrics *Metrics

	exec *executor.Executor
}

// New assembles a Simulation from a validated Configuration, a clock
// (typically clock.NewFastForward()), and an output sink. The scheduler,
// arbiter, and allocator are constructed here from cfg's fields so callers
// never need to touch internal packages directly.
func New(cfg *config.Configuration, clk clock.Clock, s Sink) *Simulation {
	metrics := NewMetrics()
	sched := scheduler.New(cfg.Discipline)
	arb := arbiter.New()
	alloc := allocator.New(cfg.SystemMemoryBytes(), cfg.MemoryBlockSizeBytes())
	obs := NewMetricsObserver(metrics)

	exec := executor.New(sched, clk, arb, alloc, s, obs, cfg.QuantumMs, cfg.ProjectorCount, cfg.HardDriveCount)

	return &Simulation{
		Config:  cfg,
		Clock:   clk,
		Sink:    s,
		Metrics: metrics,
		exec:    exec,
	}
}

// Run admits procs as the initial workload and drives the simulation to
// completion, bracketing the whole run with exactly one simulator begin
// event and one end event. Exactly one Run call is meaningful per
// Simulation; build a fresh Simulation per run.
func (sim *Simulation) Run(procs []*Process) error {
	if err := sim.emit(model.NewSimulatorBeginEvent(sim.Clock.Now())); err != nil {
		return err
	}

	sim.exec.Admit(procs)
	if err := sim.exec.Run(); err != nil {
		return err
	}

	sim.Metrics.Stop()
	return sim.emit(model.NewSimulatorEndEvent(sim.Clock.Now()))
}

func (sim *Simulation) emit(ev Event) error {
	if sim.Sink == nil {
		return nil
	}
	return sim.Sink.Write(ev)
}

// BuildSink constructs the Sink named by cfg's logging target, writing to
// monitorWriter for the Monitor/Both cases (typically os.Stdout).
func BuildSink(cfg *config.Configuration, monitorWriter io.Writer) (Sink, error) {
	switch cfg.LogTarget {
	case config.LogMonitor:
		return sink.NewMonitor(monitorWriter), nil
	case config.LogFile:
		f, err := sink.NewFile(cfg.LogPath)
		if err != nil {
			return nil, err
		}
		return f, nil
	case config.LogBoth:
		f, err := sink.NewFile(cfg.LogPath)
		if err != nil {
			return nil, err
		}
		return sink.NewMulti(sink.NewMonitor(monitorWriter), f), nil
	default:
		return sink.NewMonitor(monitorWriter), nil
	}
}

// RunFromFiles loads configPath and the workload file it names, builds a
// Simulation wired per the configuration, and runs it to completion. This
// is the entry point cmd/ossched calls; monitorWriter is the destination
// for the Monitor/Both logging target (os.Stdout in production).
func RunFromFiles(configPath string, monitorWriter io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	procs, werr := workload.Load(cfg.WorkloadPath, cfg)
	if werr != nil {
		return werr
	}

	s, serr := BuildSink(cfg, monitorWriter)
	if serr != nil {
		return serr
	}
	defer s.Close()

	sim := New(cfg, clock.NewFastForward(), s)
	return sim.Run(procs)
}
