// Package logger configures the structured logger used as the observability
// sink for rendering and lifecycle events.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

// TraceLevel sits below charm's DebugLevel; it is used for per-tick output.
const TraceLevel = log.DebugLevel - 1

// offLevel is above every level charm emits.
const offLevel = log.FatalLevel + 1

var defaultLogger atomic.Pointer[log.Logger]

func init() {
	defaultLogger.Store(New(os.Stderr, log.InfoLevel))
}

// Default returns the process-wide logger.
func Default() *log.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger. Nil is ignored.
func SetDefault(l *log.Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "interop",
	})
}

// ParseLogLevel maps a configured level name onto a charm level.
// An empty string selects Info.
func ParseLogLevel(logLevel string) (log.Level, error) {
	if logLevel == "" {
		return log.InfoLevel, nil
	}

	switch LogLevel(logLevel) {
	case LogLevelTrace:
		return TraceLevel, nil
	case LogLevelDebug:
		return log.DebugLevel, nil
	case LogLevelInfo:
		return log.InfoLevel, nil
	case LogLevelWarning:
		return log.WarnLevel, nil
	case LogLevelOff:
		return offLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("invalid log level '%s'. Supported log levels are Trace, Debug, Info, Warning, Off", logLevel)
	}
}
