package logger

import (
	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
)

// NoopLogger discards every entry
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger returns a logger for tests and for wiring without output
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }
func (l *NoopLogger) GetLevel() core.LogLevel      { return l.level }

func (*NoopLogger) Debug(string, map[string]any) {}
func (*NoopLogger) Info(string, map[string]any)  {}
func (*NoopLogger) Warn(string, map[string]any)  {}
func (*NoopLogger) Error(string, map[string]any) {}
func (*NoopLogger) Flush() error                 { return nil }
