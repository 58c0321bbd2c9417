package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrigan-b/ossched/internal/model"
	"github.com/corrigan-b/ossched/internal/scheduler"
)

const sampleRR = `Path: workload.txt
Monitor display time {msec}: 20
Processor cycle time {msec}: 10
Processor Quantum Number {msec}: 50
Scanner cycle time {msec}: 15
Hard drive cycle time {msec}: 25
Keyboard cycle time {msec}: 30
Memory cycle time {msec}: 5
Projector cycle time {msec}: 40
Projector quantity: 2
Hard drive quantity: 2
System memory {Mbytes}: 16
Memory block size {kbytes}: 4
CPU Scheduling Code: RR
Log: Log to Both
Log File Path: run.log
`

func TestParseValidConfiguration(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sampleRR))
	require.Nil(t, err)
	assert.Equal(t, "workload.txt", cfg.WorkloadPath)
	assert.Equal(t, 20, cfg.MonitorCycleMs)
	assert.Equal(t, 10, cfg.ProcessorCycleMs)
	assert.True(t, cfg.QuantumSet)
	assert.Equal(t, 50, cfg.QuantumMs)
	assert.Equal(t, 2, cfg.ProjectorCount)
	assert.Equal(t, 2, cfg.HardDriveCount)
	assert.Equal(t, UnitMbytes, cfg.SystemMemoryUnit)
	assert.Equal(t, 16, cfg.SystemMemoryRaw)
	assert.Equal(t, UnitKbytes, cfg.MemoryBlockUnit)
	assert.Equal(t, 4, cfg.MemoryBlockRaw)
	assert.Equal(t, scheduler.RR, cfg.Discipline)
	assert.Equal(t, LogBoth, cfg.LogTarget)
	assert.Equal(t, "run.log", cfg.LogPath)
}

func TestParseIsOrderTolerant(t *testing.T) {
	lines := strings.Split(strings.TrimRight(sampleRR, "\n"), "\n")
	reversed := make([]string, len(lines))
	for i, l := range lines {
		reversed[len(lines)-1-i] = l
	}
	cfg, err := Parse(strings.NewReader(strings.Join(reversed, "\n")))
	require.Nil(t, err)
	assert.Equal(t, scheduler.RR, cfg.Discipline)
	assert.Equal(t, 50, cfg.QuantumMs)
}

func TestParseMissingQuantumForRRIsMalformed(t *testing.T) {
	bad := strings.Replace(sampleRR, "Processor Quantum Number {msec}: 50\n", "", 1)
	_, err := Parse(strings.NewReader(bad))
	require.NotNil(t, err)
	assert.Equal(t, model.ErrCodeConfigMalformed, err.Code)
}

func TestParseUnknownDisciplineIsMalformed(t *testing.T) {
	bad := strings.Replace(sampleRR, "CPU Scheduling Code: RR", "CPU Scheduling Code: WRR", 1)
	_, err := Parse(strings.NewReader(bad))
	require.NotNil(t, err)
	assert.Equal(t, model.ErrCodeConfigMalformed, err.Code)
}

func TestParseNonDivisibleMemoryIsMalformed(t *testing.T) {
	bad := strings.Replace(sampleRR, "Memory block size {kbytes}: 4", "Memory block size {kbytes}: 3", 1)
	_, err := Parse(strings.NewReader(bad))
	require.NotNil(t, err)
	assert.Equal(t, model.ErrCodeConfigMalformed, err.Code)
}

func TestParseUnknownKeyIsMalformed(t *testing.T) {
	bad := sampleRR + "Warp Drive cycle time {msec}: 1\n"
	_, err := Parse(strings.NewReader(bad))
	require.NotNil(t, err)
	assert.Equal(t, model.ErrCodeConfigMalformed, err.Code)
}

func TestLoadMissingFileIsNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/ossched.cfg")
	require.NotNil(t, err)
	assert.Equal(t, model.ErrCodeConfigNotFound, err.Code)
}

func TestConfigurationRoundTrip(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sampleRR))
	require.Nil(t, err)

	var buf strings.Builder
	require.NoError(t, cfg.Encode(&buf))

	again, err2 := Parse(strings.NewReader(buf.String()))
	require.Nil(t, err2)
	assert.Equal(t, cfg, again)
}

func TestConfigurationRoundTripWithoutQuantum(t *testing.T) {
	fifo := strings.Replace(sampleRR, "Processor Quantum Number {msec}: 50\n", "", 1)
	fifo = strings.Replace(fifo, "CPU Scheduling Code: RR", "CPU Scheduling Code: FIFO", 1)
	cfg, err := Parse(strings.NewReader(fifo))
	require.Nil(t, err)
	assert.False(t, cfg.QuantumSet)

	var buf strings.Builder
	require.NoError(t, cfg.Encode(&buf))
	assert.NotContains(t, buf.String(), "Processor Quantum Number")

	again, err2 := Parse(strings.NewReader(buf.String()))
	require.Nil(t, err2)
	assert.Equal(t, cfg, again)
}
