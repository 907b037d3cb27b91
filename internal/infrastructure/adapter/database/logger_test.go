package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/loan-cob-lock/mocks/port/core"
)

const selectLocksSQL = "SELECT * FROM `m_loan_account_locks` WHERE loan_id IN (1,2)"

func statement(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestSQLLogger_TraceError(t *testing.T) {
	coreLogger := coremocks.NewMockLogger(t)
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Since(mock.Anything).Return(5 * time.Millisecond)

	var logged map[string]any
	coreLogger.EXPECT().Error("SQL statement failed", mock.Anything).Run(func(_ string, fields map[string]any) {
		logged = fields
	}).Once()

	sqlLogger := NewSQLLogger(coreLogger, clock, "info")
	ctx := coreport.WithCorrelationID(context.Background(), "exec-42")
	sqlLogger.Trace(ctx, time.Now(), statement(selectLocksSQL, 0), errors.New("fail"))

	assert.Equal(t, "fail", logged["error"])
	assert.Equal(t, "exec-42", logged["correlation_id"])
	assert.Equal(t, "select", logged["operation"])
	assert.Equal(t, "m_loan_account_locks", logged["table"])
	assert.Equal(t, 5.0, logged["elapsed_ms"])
}

func TestSQLLogger_TraceSlowStatement(t *testing.T) {
	coreLogger := coremocks.NewMockLogger(t)
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Since(mock.Anything).Return(time.Second)
	coreLogger.EXPECT().Warn("Slow SQL statement", mock.Anything).Once()

	sqlLogger := NewSQLLogger(coreLogger, clock, "warn")
	sqlLogger.Trace(context.Background(), time.Now(), statement(selectLocksSQL, 2), nil)
}

func TestSQLLogger_RecordNotFoundIsNotAnError(t *testing.T) {
	coreLogger := coremocks.NewMockLogger(t)
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Since(mock.Anything).Return(time.Millisecond)

	sqlLogger := NewSQLLogger(coreLogger, clock, "warn")
	sqlLogger.Trace(context.Background(), time.Now(), statement(selectLocksSQL, 0), gorm.ErrRecordNotFound)

	coreLogger.AssertNotCalled(t, "Error", mock.Anything, mock.Anything)
}

func TestSQLLogger_Silent(t *testing.T) {
	coreLogger := coremocks.NewMockLogger(t)

	sqlLogger := NewSQLLogger(coreLogger, nil, "silent")
	sqlLogger.Trace(context.Background(), time.Now(), statement(selectLocksSQL, 0), errors.New("fail"))
	sqlLogger.Error(context.Background(), "ignored")

	coreLogger.AssertNotCalled(t, "Error", mock.Anything, mock.Anything)
}

func TestDescribeStatement(t *testing.T) {
	tests := []struct {
		sql   string
		verb  string
		table string
	}{
		{selectLocksSQL, "select", "m_loan_account_locks"},
		{"INSERT INTO m_loan_account_locks\n\t(loan_id, version) VALUES (?, ?)", "insert", "m_loan_account_locks"},
		{`UPDATE "schema_versions" SET version = '1.1.0'`, "update", "schema_versions"},
		{"DELETE FROM m_loan_account_locks WHERE id = 1", "delete", "m_loan_account_locks"},
		{"CREATE INDEX idx ON t (a)", "create", ""},
		{"  ", "", ""},
	}

	for _, tt := range tests {
		verb, table := describeStatement(tt.sql)
		assert.Equal(t, tt.verb, verb, tt.sql)
		assert.Equal(t, tt.table, table, tt.sql)
	}
}

func TestParseGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseGormLogLevel("silent"))
	assert.Equal(t, logger.Error, parseGormLogLevel("ERROR"))
	assert.Equal(t, logger.Warn, parseGormLogLevel("warn"))
	assert.Equal(t, logger.Info, parseGormLogLevel("debug"))
}
