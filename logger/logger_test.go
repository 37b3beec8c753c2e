package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    log.Level
		expectError bool
	}{
		{"Empty string returns Info", "", log.InfoLevel, false},
		{"Valid Trace level", "Trace", TraceLevel, false},
		{"Valid Debug level", "Debug", log.DebugLevel, false},
		{"Valid Info level", "Info", log.InfoLevel, false},
		{"Valid Warning level", "Warning", log.WarnLevel, false},
		{"Valid Off level", "Off", log.FatalLevel + 1, false},
		{"Invalid lowercase level", "debug", 0, true},
		{"Invalid level", "Loud", 0, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			level, err := ParseLogLevel(test.input)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, level)
		})
	}
}

func TestNewWritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.InfoLevel)

	l.Debug("hidden")
	l.Info("shown", "mount", "hello")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "mount=hello")
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	l := New(&buf, log.DebugLevel)
	SetDefault(l)
	assert.Same(t, l, Default())

	SetDefault(nil)
	assert.Same(t, l, Default())
}
