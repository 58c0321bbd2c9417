// Package executor drives the per-process PCB state machine to completion,
// consulting a scheduler for dispatch/preemption decisions and a device
// arbiter for I/O serialization, and projecting every transition onto the
// uniform Event trace. It is the simulation's hard engineering core,
// generalized from a runner-loop pattern (pop next unit of work, drive it
// to completion or a suspension point, update shared state, repeat) onto
// PCB transitions instead of raw I/O completions.
package executor

import (
	"github.com/corrigan-b/ossched/internal/allocator"
	"github.com/corrigan-b/ossched/internal/arbiter"
	"github.com/corrigan-b/ossched/internal/clock"
	"github.com/corrigan-b/ossched/internal/model"
	"github.com/corrigan-b/ossched/internal/scheduler"
)

// injectionBoundaryMs is the period, in simulated milliseconds, at which
// the process loader re-admits a copy of the initial workload.
const injectionBoundaryMs = 100

// maxInjections bounds the number of times the process loader fires.
const maxInjections = 9

// Executor owns every piece of per-run mutable state the simulation needs:
// the scheduler's ready queue, the simulated clock, the device arbiter, the
// memory allocator, the event sink, and the global monotonic pid counter
// shared with injected process copies.
type Executor struct {
	Scheduler *scheduler.Scheduler
	Clock     clock.Clock
	Arbiter   *arbiter.Arbiter
	Allocator *allocator.Allocator
	Sink      model.Sink
	Observer  model.Observer

	Quantum        int // ms; only consulted under RR
	ProjectorCount int // device class size for OutputProjector
	HDDCount       int // device class size for OutputHardDrive / InputHardDrive

	nextPID         int
	initialFrontier []*model.Process
	injectionsFired int
	cumulativeMs    int
}

// New returns an Executor ready to drive processes admitted to sched.
// quantum is ignored unless sched.Discipline() is scheduler.RR. A nil obs
// is replaced with an inert observer.
func New(sched *scheduler.Scheduler, clk clock.Clock, arb *arbiter.Arbiter, alloc *allocator.Allocator, sink model.Sink, obs model.Observer, quantum, projectorCount, hddCount int) *Executor {
	if obs == nil {
		obs = noOpObserver{}
	}
	return &Executor{
		Scheduler:      sched,
		Clock:          clk,
		Arbiter:        arb,
		Allocator:      alloc,
		Sink:           sink,
		Observer:       obs,
		Quantum:        quantum,
		ProjectorCount: projectorCount,
		HDDCount:       hddCount,
	}
}

type noOpObserver struct{}

func (noOpObserver) ObserveOp(model.OperationKind, int) {}
func (noOpObserver) ObserveInjection()                  {}
func (noOpObserver) ObserveInterruption()               {}

// Admit places the initial workload into the ready queue and captures the
// frontier snapshot the process loader re-injects on each 100ms boundary.
// nextPID is seeded one past the highest pid in procs, so injected copies
// never collide with the initial workload's identities.
func (e *Executor) Admit(procs []*model.Process) {
	highest := 0
	for _, p := range procs {
		e.Scheduler.Admit(p)
		if p.PID > highest {
			highest = p.PID
		}
	}
	e.nextPID = highest + 1

	// The frontier must be a point-in-time snapshot, not a set of live
	// pointers: the executor mutates each Process's Ops in place as it
	// runs, so deep-copy every element now, before any operation executes.
	snap := e.Scheduler.Snapshot()
	e.initialFrontier = make([]*model.Process, len(snap))
	for i, p := range snap {
		e.initialFrontier[i] = p.Clone(p.PID)
	}
}

// Run drives every admitted process (plus any the process loader injects
// along the way) to completion, emitting events to Sink as it goes. Run
// does not itself emit the simulator begin/end bracket; that is the
// caller's responsibility (see simulation.go), since Run may be invoked
// against a fixture that wants to assert on the bracket separately.
func (e *Executor) Run() error {
	for {
		p := e.Scheduler.Next()
		if p == nil {
			return nil
		}
		if err := e.drive(p); err != nil {
			return err
		}
	}
}

// isRR reports whether the configured discipline enforces quantum
// preemption; AppStart/AppFinish are never subject to it regardless.
func (e *Executor) isRR() bool {
	return e.Scheduler.Discipline() == scheduler.RR
}

func preemptible(op model.Operation) bool {
	return op.Kind != model.AppStart && op.Kind != model.AppFinish
}

// drive pops and executes operations from the head of p until p either
// finishes or is preempted by RR quantum expiry. The per-dispatch budget
// resets to e.Quantum at the top of every dispatch — on the next dispatch
// of any process, not cumulatively across dispatches.
func (e *Executor) drive(p *model.Process) error {
	budget := e.Quantum

	for len(p.Ops) > 0 {
		op := p.Ops[0]

		if e.isRR() && preemptible(op) && op.Duration > budget {
			truncated := op
			if err := e.runTruncated(p, &truncated, budget); err != nil {
				return err
			}
			p.Ops[0] = truncated
			e.Scheduler.Readmit(p)
			return nil
		}

		if err := e.runOp(p, op); err != nil {
			return err
		}
		if e.isRR() && preemptible(op) {
			budget -= op.Duration
		}
		p.Ops = p.Ops[1:]

		if op.Kind == model.AppFinish {
			return nil
		}

		if err := e.maybeInject(); err != nil {
			return err
		}
	}
	return nil
}

// runOp executes one full operation (AppStart/AppFinish/ProcessorRun/
// Memory*/I-O) to completion and emits its start/end event pair.
func (e *Executor) runOp(p *model.Process, op model.Operation) error {
	switch op.Kind {
	case model.AppStart:
		return e.runAppStart(p)
	case model.AppFinish:
		return e.runAppFinish(p)
	default:
		return e.runWorkOp(p, op, op.Duration)
	}
}

func (e *Executor) runAppStart(p *model.Process) error {
	t := e.Clock.Now()
	if err := e.emit(model.NewAppPreparingEvent(t, p.PID)); err != nil {
		return err
	}
	return e.emit(model.NewAppStartingEvent(t, p.PID))
}

func (e *Executor) runAppFinish(p *model.Process) error {
	t := e.Clock.Now()
	p.State = model.StateExit
	return e.emit(model.NewAppFinishEvent(t, p.PID))
}

// runWorkOp executes a single ProcessorRun/Memory*/I-O operation for
// exactly durationMs simulated ms and emits its start/end pair. For the
// I/O subset, the device arbiter lock is held across the delay so at most
// one I/O operation is ever in flight; for everything else the delay runs
// unguarded.
func (e *Executor) runWorkOp(p *model.Process, op model.Operation, durationMs int) error {
	deviceIndex := 0
	if op.Kind.IsIO() {
		p.State = model.StateWaiting
		e.Arbiter.Lock()
		deviceIndex = e.deviceIndexFor(op.Kind)
	}

	tStart := e.Clock.Now()
	if err := e.emit(model.NewOpStartEvent(tStart, p.PID, op, deviceIndex)); err != nil {
		if op.Kind.IsIO() {
			e.Arbiter.Unlock()
		}
		return err
	}

	e.Clock.Delay(durationMs)
	e.cumulativeMs += durationMs

	tEnd := e.Clock.Now()
	if op.Kind.IsIO() {
		e.Arbiter.Unlock()
		p.State = model.StateRunning
	}

	memAddr := ""
	if op.Kind == model.MemoryAllocate {
		memAddr = e.Allocator.Allocate()
	}

	e.Observer.ObserveOp(op.Kind, durationMs)
	return e.emit(model.NewOpEndEvent(tEnd, p.PID, op, deviceIndex, memAddr))
}

// runTruncated executes only the first budgetMs of op, emits the
// truncated start/end pair plus the interrupted notice, and decrements
// op.Duration in place by budgetMs so the caller can push the
// partially-consumed operation back onto the head of p's queue.
func (e *Executor) runTruncated(p *model.Process, op *model.Operation, budgetMs int) error {
	truncated := model.Operation{Kind: op.Kind, Cycles: op.Cycles, Duration: budgetMs}
	if err := e.runWorkOp(p, truncated, budgetMs); err != nil {
		return err
	}
	op.Duration -= budgetMs

	e.Observer.ObserveInterruption()
	return e.emit(model.NewInterruptedEvent(e.Clock.Now(), p.PID))
}

func (e *Executor) deviceIndexFor(kind model.OperationKind) int {
	switch kind {
	case model.OutputProjector:
		return e.Arbiter.NextIndex(arbiter.ClassProjectorOut, e.ProjectorCount)
	case model.OutputHardDrive:
		return e.Arbiter.NextIndex(arbiter.ClassHardDriveOut, e.HDDCount)
	case model.InputHardDrive:
		return e.Arbiter.NextIndex(arbiter.ClassHardDriveIn, e.HDDCount)
	default:
		return 0
	}
}

// maybeInject checks the 100ms injection boundary and, for every 100ms
// marker crossed since the last check (a single long operation can cross
// more than one at once — the check only runs between operations), injects
// one fresh copy of the initial workload frontier under newly-minted pids,
// up to maxInjections total. The check is performed only between
// operations, matching spec's "never mid-operation" rule, since this is
// the only call site (RR quantum truncation is treated as still
// mid-operation, since the truncated op has not actually completed).
func (e *Executor) maybeInject() error {
	for e.injectionsFired < maxInjections && e.cumulativeMs >= (e.injectionsFired+1)*injectionBoundaryMs {
		e.injectionsFired++
		for _, src := range e.initialFrontier {
			clone := src.Clone(e.nextPID)
			e.nextPID++
			e.Scheduler.Admit(clone)
		}
		e.Observer.ObserveInjection()
	}
	return nil
}

func (e *Executor) emit(ev model.Event) error {
	if e.Sink == nil {
		return nil
	}
	return e.Sink.Write(ev)
}
