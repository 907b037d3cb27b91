package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
)

// Options configures a zap-backed logger
type Options struct {
	Level      string // debug, info, warn, error
	Format     string // json or console
	Output     string // stdout, stderr or a file path
	CallerInfo bool
}

// ZapLogger writes structured entries through zap. Its level can change at runtime.
type ZapLogger struct {
	z     *zap.Logger
	level zap.AtomicLevel
}

var _ core.Logger = (*ZapLogger)(nil)

// NewZapLogger builds a logger from opts
func NewZapLogger(opts Options) (*ZapLogger, error) {
	level := zap.NewAtomicLevelAt(zapLevel(core.ParseLogLevel(opts.Level)))

	cfg := zapConfig(opts)
	cfg.Level = level

	z, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &ZapLogger{z: z, level: level}, nil
}

// NewZapLoggerWithCore wraps an existing zap core, mainly for tests
func NewZapLoggerWithCore(zc zapcore.Core, level core.LogLevel) *ZapLogger {
	return &ZapLogger{
		z:     zap.New(zc),
		level: zap.NewAtomicLevelAt(zapLevel(level)),
	}
}

// zapConfig picks the console encoder for local runs and ISO8601 JSON otherwise
func zapConfig(opts Options) zap.Config {
	var cfg zap.Config
	if strings.EqualFold(opts.Format, "console") {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.DisableCaller = !opts.CallerInfo
	if opts.Output != "" {
		cfg.OutputPaths = []string{opts.Output}
	}
	return cfg
}

var levels = []struct {
	core core.LogLevel
	zap  zapcore.Level
}{
	{core.LogLevelDebug, zapcore.DebugLevel},
	{core.LogLevelInfo, zapcore.InfoLevel},
	{core.LogLevelWarn, zapcore.WarnLevel},
	{core.LogLevelError, zapcore.ErrorLevel},
}

func zapLevel(level core.LogLevel) zapcore.Level {
	for _, l := range levels {
		if l.core == level {
			return l.zap
		}
	}
	return zapcore.InfoLevel
}

func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level.SetLevel(zapLevel(level))
}

func (l *ZapLogger) GetLevel() core.LogLevel {
	current := l.level.Level()
	for _, lv := range levels {
		if lv.zap == current {
			return lv.core
		}
	}
	return core.LogLevelInfo
}

func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.write(zapcore.DebugLevel, message, fields)
}

func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.write(zapcore.InfoLevel, message, fields)
}

func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.write(zapcore.WarnLevel, message, fields)
}

func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.write(zapcore.ErrorLevel, message, fields)
}

// Flush syncs the underlying writer
func (l *ZapLogger) Flush() error {
	return l.z.Sync()
}

func (l *ZapLogger) write(lvl zapcore.Level, message string, fields map[string]any) {
	if !l.level.Enabled(lvl) {
		return
	}
	ce := l.z.Check(lvl, message)
	if ce == nil {
		return
	}

	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	ce.Write(zf...)
}
