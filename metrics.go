package ossched

import (
	"sync/atomic"
	"time"

	"github.com/corrigan-b/ossched/internal/model"
)

// LatencyBucketsMs defines the simulated-duration histogram buckets in
// milliseconds, covering from 1ms to 10s with logarithmic spacing.
var LatencyBucketsMs = []uint64{1, 10, 100, 1_000, 10_000}

const numLatencyBuckets = 5

// Observer receives callbacks about simulation progress, independent of the
// Event trace itself. See internal/model for the full documentation.
type Observer = model.Observer

// Metrics tracks ambient, run-level statistics over emitted operations.
// It is independent of the Event trace itself: a run with no Sink
// configured still accumulates Metrics.
type Metrics struct {
	OpsByKind [int(AppFinish) + 1]atomic.Uint64

	TotalDurationMs atomic.Uint64
	OpCount         atomic.Uint64

	InjectionsFired atomic.Uint64
	Interruptions   atomic.Uint64
	DurationBuckets [numLatencyBuckets]atomic.Uint64

	StartedAtUnixNano atomic.Int64
	EndedAtUnixNano   atomic.Int64
}

// NewMetrics creates a new, started Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.StartedAtUnixNano.Store(time.Now().UnixNano())
	return m
}

// RecordOp records completion of a single operation of the given kind and
// duration.
func (m *Metrics) RecordOp(kind OperationKind, durationMs int) {
	if int(kind) >= 0 && int(kind) < len(m.OpsByKind) {
		m.OpsByKind[kind].Add(1)
	}
	m.OpCount.Add(1)
	m.TotalDurationMs.Add(uint64(durationMs))
	m.recordBucket(uint64(durationMs))
}

// RecordInjection records one firing of the 100ms process-loader interrupt.
func (m *Metrics) RecordInjection() {
	m.InjectionsFired.Add(1)
}

// RecordInterruption records one round-robin quantum preemption.
func (m *Metrics) RecordInterruption() {
	m.Interruptions.Add(1)
}

func (m *Metrics) recordBucket(durationMs uint64) {
	for i, edge := range LatencyBucketsMs {
		if durationMs <= edge {
			m.DurationBuckets[i].Add(1)
			return
		}
	}
	m.DurationBuckets[numLatencyBuckets-1].Add(1)
}

// Stop records the run's end time.
func (m *Metrics) Stop() {
	m.EndedAtUnixNano.Store(time.Now().UnixNano())
}

// MetricsSnapshot is a point-in-time, non-atomic copy of Metrics for
// reporting.
type MetricsSnapshot struct {
	OpsByKind       map[OperationKind]uint64
	TotalDurationMs uint64
	OpCount         uint64
	InjectionsFired uint64
	Interruptions   uint64
	WallElapsed     time.Duration
}

// Snapshot returns a consistent-enough point-in-time copy of m.
func (m *Metrics) Snapshot() MetricsSnapshot {
	ops := make(map[OperationKind]uint64, len(m.OpsByKind))
	for i := range m.OpsByKind {
		if v := m.OpsByKind[i].Load(); v > 0 {
			ops[OperationKind(i)] = v
		}
	}

	start := m.StartedAtUnixNano.Load()
	end := m.EndedAtUnixNano.Load()
	var elapsed time.Duration
	if start != 0 && end != 0 {
		elapsed = time.Duration(end - start)
	}

	return MetricsSnapshot{
		OpsByKind:       ops,
		TotalDurationMs: m.TotalDurationMs.Load(),
		OpCount:         m.OpCount.Load(),
		InjectionsFired: m.InjectionsFired.Load(),
		Interruptions:   m.Interruptions.Load(),
		WallElapsed:     elapsed,
	}
}

// NoOpObserver implements Observer with no-op methods.
type NoOpObserver struct{}

func (NoOpObserver) ObserveOp(OperationKind, int) {}
func (NoOpObserver) ObserveInjection()            {}
func (NoOpObserver) ObserveInterruption()         {}

// MetricsObserver adapts a *Metrics to the Observer interface.
type MetricsObserver struct {
	Metrics *Metrics
}

// NewMetricsObserver returns an Observer that records into m.
func NewMetricsObserver(m *Metrics) *MetricsObserver {
	return &MetricsObserver{Metrics: m}
}

func (o *MetricsObserver) ObserveOp(kind OperationKind, durationMs int) {
	o.Metrics.RecordOp(kind, durationMs)
}

func (o *MetricsObserver) ObserveInjection() {
	o.Metrics.RecordInjection()
}

func (o *MetricsObserver) ObserveInterruption() {
	o.Metrics.RecordInterruption()
}
