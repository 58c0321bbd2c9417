package workload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrigan-b/ossched/internal/config"
	"github.com/corrigan-b/ossched/internal/model"
)

func testConfig() *config.Configuration {
	return &config.Configuration{
		ProcessorCycleMs: 10,
		MemoryCycleMs:    5,
		MonitorCycleMs:   20,
		ProjectorCycleMs: 40,
		HardDriveCycleMs: 25,
		KeyboardCycleMs:  30,
		ScannerCycleMs:   15,
	}
}

func TestParseEmptyProgram(t *testing.T) {
	procs, err := Parse(strings.NewReader("S{begin}0;S{finish}0;"), testConfig())
	require.Nil(t, err)
	assert.Empty(t, procs)
}

func TestParseSingleProcessSingleOp(t *testing.T) {
	src := "S{begin}0;A{begin}0;P{run}2;A{finish}0;S{finish}0;"
	procs, err := Parse(strings.NewReader(src), testConfig())
	require.Nil(t, err)
	require.Len(t, procs, 1)

	p := procs[0]
	assert.Equal(t, 1, p.PID)
	require.Len(t, p.Ops, 3)
	assert.Equal(t, model.AppStart, p.Ops[0].Kind)
	assert.Equal(t, model.ProcessorRun, p.Ops[1].Kind)
	assert.Equal(t, 2, p.Ops[1].Cycles)
	assert.Equal(t, 20, p.Ops[1].Duration) // 2 cycles * 10ms
	assert.Equal(t, model.AppFinish, p.Ops[2].Kind)
	assert.Equal(t, 1, p.TaskCount)
	assert.Equal(t, 0, p.IOCount)
}

func TestParseAssignsSequentialPIDs(t *testing.T) {
	src := "S{begin}0;" +
		"A{begin}0;P{run}1;A{finish}0;" +
		"A{begin}0;P{run}1;A{finish}0;" +
		"S{finish}0;"
	procs, err := Parse(strings.NewReader(src), testConfig())
	require.Nil(t, err)
	require.Len(t, procs, 2)
	assert.Equal(t, 1, procs[0].PID)
	assert.Equal(t, 2, procs[1].PID)
}

func TestParseIOCountAndTaskCount(t *testing.T) {
	src := "S{begin}0;A{begin}0;" +
		"P{run}1;O{projector}1;I{keyboard}1;M{allocate}1;" +
		"A{finish}0;S{finish}0;"
	procs, err := Parse(strings.NewReader(src), testConfig())
	require.Nil(t, err)
	require.Len(t, procs, 1)
	assert.Equal(t, 4, procs[0].TaskCount)
	assert.Equal(t, 2, procs[0].IOCount)
}

func TestParseAllOperationCodes(t *testing.T) {
	src := "S{begin}0;A{begin}0;" +
		"P{run}1;M{allocate}1;M{block}1;O{monitor}1;O{projector}1;" +
		"O{hard drive}1;I{keyboard}1;I{hard drive}1;I{scanner}1;" +
		"A{finish}0;S{finish}0;"
	procs, err := Parse(strings.NewReader(src), testConfig())
	require.Nil(t, err)
	require.Len(t, procs, 1)

	kinds := make([]model.OperationKind, 0, len(procs[0].Ops)-2)
	for _, op := range procs[0].Ops[1 : len(procs[0].Ops)-1] {
		kinds = append(kinds, op.Kind)
	}
	assert.Equal(t, []model.OperationKind{
		model.ProcessorRun, model.MemoryAllocate, model.MemoryBlock,
		model.OutputMonitor, model.OutputProjector, model.OutputHardDrive,
		model.InputKeyboard, model.InputHardDrive, model.InputScanner,
	}, kinds)
}

func TestParseMissingAppFinishIsMalformed(t *testing.T) {
	src := "S{begin}0;A{begin}0;P{run}1;S{finish}0;"
	_, err := Parse(strings.NewReader(src), testConfig())
	require.NotNil(t, err)
	assert.Equal(t, model.ErrCodeWorkloadMalformed, err.Code)
}

func TestParseUnknownOperationCodeIsMalformed(t *testing.T) {
	src := "S{begin}0;A{begin}0;Q{teleport}1;A{finish}0;S{finish}0;"
	_, err := Parse(strings.NewReader(src), testConfig())
	require.NotNil(t, err)
	assert.Equal(t, model.ErrCodeWorkloadMalformed, err.Code)
}

func TestParseNestedAppBeginIsMalformed(t *testing.T) {
	src := "S{begin}0;A{begin}0;A{begin}0;A{finish}0;A{finish}0;S{finish}0;"
	_, err := Parse(strings.NewReader(src), testConfig())
	require.NotNil(t, err)
	assert.Equal(t, model.ErrCodeWorkloadMalformed, err.Code)
}

func TestLoadMissingFileIsNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/workload.txt", testConfig())
	require.NotNil(t, err)
	assert.Equal(t, model.ErrCodeWorkloadNotFound, err.Code)
}
