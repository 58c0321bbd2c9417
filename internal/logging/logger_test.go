package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Level: LevelWarn, Output: &buf})

	logger.Debug("should not appear")
	logger.Info("should not appear either")
	logger.Warn("first visible line")
	logger.Error("second visible line")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "[WARN] first visible line")
	assert.Contains(t, out, "[ERROR] second visible line")
}

func TestFormatArgsPairing(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Level: LevelDebug, Output: &buf})

	logger.Info("dispatch", "pid", 3, "discipline", "RR")

	line := buf.String()
	assert.True(t, strings.Contains(line, "pid=3"))
	assert.True(t, strings.Contains(line, "discipline=RR"))
}

func TestDefaultLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	SetDefault(NewLogger(&Config{Level: LevelInfo, Output: &buf}))
	Info("hello from default logger")

	assert.Contains(t, buf.String(), "hello from default logger")
}

func TestNilConfigUsesDefaults(t *testing.T) {
	logger := NewLogger(nil)
	assert.Equal(t, LevelInfo, logger.level)
}
