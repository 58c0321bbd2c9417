package ossched

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrigan-b/ossched/internal/model"
	"github.com/corrigan-b/ossched/internal/scheduler"
)

type captureSink struct {
	events []Event
}

func (c *captureSink) Write(e Event) error {
	c.events = append(c.events, e)
	return nil
}

func (c *captureSink) Close() error { return nil }

func (c *captureSink) kinds() []EventKind {
	out := make([]EventKind, len(c.events))
	for i, e := range c.events {
		out[i] = e.Kind
	}
	return out
}

// TestEmptyWorkload verifies an empty workload produces exactly the
// simulator begin/end bracket, nothing else.
func TestEmptyWorkload(t *testing.T) {
	cfg := NewTestConfiguration(scheduler.FIFO)
	sink := &captureSink{}
	sim := New(cfg, NewTestClock(), sink)

	require.NoError(t, sim.Run(nil))

	assert.Equal(t, []EventKind{EventSimulatorBegin, EventSimulatorEnd}, sink.kinds())
	assert.GreaterOrEqual(t, sink.events[1].Time, sink.events[0].Time)
}

// TestSimulatorBeginEndBracketing verifies exactly one begin/end pair,
// strictly bracketing every process event.
func TestSimulatorBeginEndBracketing(t *testing.T) {
	cfg := NewTestConfiguration(scheduler.FIFO)
	sink := &captureSink{}
	sim := New(cfg, NewTestClock(), sink)

	p := BuildProcess(1, Operation{Kind: ProcessorRun, Cycles: 1, Duration: 10})
	require.NoError(t, sim.Run([]*Process{p}))

	kinds := sink.kinds()
	require.GreaterOrEqual(t, len(kinds), 2)
	assert.Equal(t, EventSimulatorBegin, kinds[0])
	assert.Equal(t, EventSimulatorEnd, kinds[len(kinds)-1])

	beginCount, endCount := 0, 0
	for _, k := range kinds {
		if k == EventSimulatorBegin {
			beginCount++
		}
		if k == EventSimulatorEnd {
			endCount++
		}
	}
	assert.Equal(t, 1, beginCount)
	assert.Equal(t, 1, endCount)
}

// TestSingleProcessFIFO verifies one process, one ProcessorRun operation,
// under FIFO discipline.
func TestSingleProcessFIFO(t *testing.T) {
	cfg := NewTestConfiguration(scheduler.FIFO)
	sink := &captureSink{}
	sim := New(cfg, NewTestClock(), sink)

	p := BuildProcess(1, Operation{Kind: ProcessorRun, Cycles: 2, Duration: 20})
	require.NoError(t, sim.Run([]*Process{p}))

	var lines []string
	for _, e := range sink.events {
		lines = append(lines, e.Line)
	}
	assert.Contains(t, lines, "Simulator program starting")
	assert.Contains(t, lines, "OS: preparing process 1")
	assert.Contains(t, lines, "OS: starting process 1")
	assert.Contains(t, lines, "Process 1: start processing action")
	assert.Contains(t, lines, "Process 1: end processing action")
	assert.Contains(t, lines, "End process 1")
	assert.Contains(t, lines, "Simulator program ending")
}

func TestRunWithNilSinkDoesNotPanic(t *testing.T) {
	cfg := NewTestConfiguration(scheduler.FIFO)
	sim := New(cfg, NewTestClock(), nil)
	p := BuildProcess(1, Operation{Kind: ProcessorRun, Cycles: 1, Duration: 10})
	assert.NoError(t, sim.Run([]*Process{p}))
}

func TestRunRecordsMetrics(t *testing.T) {
	cfg := NewTestConfiguration(scheduler.FIFO)
	sink := &captureSink{}
	sim := New(cfg, NewTestClock(), sink)

	p := BuildProcess(1, Operation{Kind: ProcessorRun, Cycles: 1, Duration: 10})
	require.NoError(t, sim.Run([]*Process{p}))

	snap := sim.Metrics.Snapshot()
	assert.Equal(t, uint64(1), snap.OpCount)
	assert.Equal(t, uint64(10), snap.TotalDurationMs)
}

func TestBuildSinkMonitorTarget(t *testing.T) {
	cfg := NewTestConfiguration(scheduler.FIFO)
	var buf bytes.Buffer
	s, err := BuildSink(cfg, &buf)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write(model.NewSimulatorBeginEvent(0)))
	assert.Contains(t, buf.String(), "Simulator program starting")
}
