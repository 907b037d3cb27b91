package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
)

// slowStatementThreshold marks statements logged as slow
const slowStatementThreshold = 200 * time.Millisecond

// SQLLogger routes GORM statement traces into the application logger
type SQLLogger struct {
	log   coreport.Logger
	clock coreport.TimeProvider
	level gormlogger.LogLevel
	slow  time.Duration
}

var _ gormlogger.Interface = (*SQLLogger)(nil)

// NewSQLLogger creates a GORM logger writing to log. clock may be nil.
func NewSQLLogger(log coreport.Logger, clock coreport.TimeProvider, level string) *SQLLogger {
	return &SQLLogger{
		log:   log,
		clock: clock,
		level: parseGormLogLevel(level),
		slow:  slowStatementThreshold,
	}
}

// parseGormLogLevel maps a configured level name to a GORM log level
func parseGormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	default:
		return gormlogger.Info
	}
}

// LogMode returns a copy logging at level
func (l *SQLLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

// Info logs GORM info messages
func (l *SQLLogger) Info(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		l.log.Info(fmt.Sprintf(msg, data...), map[string]any{"source": "database"})
	}
}

// Warn logs GORM warnings
func (l *SQLLogger) Warn(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, data...), map[string]any{"source": "database"})
	}
}

// Error logs GORM errors
func (l *SQLLogger) Error(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		l.log.Error(fmt.Sprintf(msg, data...), map[string]any{"source": "database"})
	}
}

// Trace logs one executed statement: failures at error, slow statements at warn and
// everything else at debug when the level is info.
func (l *SQLLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := l.since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error
	slow := l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn
	if !failed && !slow && l.level < gormlogger.Info {
		return
	}

	stmt, rows := fc()
	fields := statementFields(ctx, stmt, rows, elapsed)

	switch {
	case failed:
		fields["error"] = err.Error()
		l.log.Error("SQL statement failed", fields)
	case slow:
		l.log.Warn("Slow SQL statement", fields)
	default:
		l.log.Debug("SQL statement", fields)
	}
}

func (l *SQLLogger) since(begin time.Time) time.Duration {
	if l.clock == nil {
		return time.Since(begin)
	}
	return l.clock.Since(begin)
}

func statementFields(ctx context.Context, stmt string, rows int64, elapsed time.Duration) map[string]any {
	fields := map[string]any{
		"source":     "database",
		"sql":        stmt,
		"rows":       rows,
		"elapsed_ms": float64(elapsed.Microseconds()) / 1000,
	}

	if verb, table := describeStatement(stmt); verb != "" {
		fields["operation"] = verb
		if table != "" {
			fields["table"] = table
		}
	}
	if id := coreport.CorrelationIDFromContext(ctx); id != "" {
		fields["correlation_id"] = id
	}
	return fields
}

// describeStatement returns the lower-cased leading verb of stmt and, for DML, the table it targets
func describeStatement(stmt string) (verb, table string) {
	words := strings.Fields(strings.ToLower(stmt))
	if len(words) == 0 {
		return "", ""
	}
	verb = words[0]

	var marker string
	switch verb {
	case "select", "delete":
		marker = "from"
	case "insert":
		marker = "into"
	case "update":
		if len(words) > 1 {
			return verb, trimIdentifier(words[1])
		}
		return verb, ""
	default:
		return verb, ""
	}

	for i := 1; i < len(words)-1; i++ {
		if words[i] == marker {
			return verb, trimIdentifier(words[i+1])
		}
	}
	return verb, ""
}

func trimIdentifier(word string) string {
	return strings.Trim(word, "`\"(")
}
