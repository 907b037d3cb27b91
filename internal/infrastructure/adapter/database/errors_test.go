package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	domainErr "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
)

func TestToDomainError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"duplicate", errors.New("UNIQUE constraint failed: m_loan_account_locks.loan_id"), domainErr.ErrDuplicateLock},
		{"refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), domainErr.ErrDatabaseConnection},
		{"closed", errors.New("sql: database is closed"), domainErr.ErrDatabaseConnection},
		{"deadline", fmt.Errorf("ping: %w", context.DeadlineExceeded), domainErr.ErrDatabaseConnection},
		{"timeout text", errors.New("i/o timeout"), domainErr.ErrDatabaseConnection},
		{"other", errors.New("syntax error at or near"), domainErr.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, toDomainError(tc.err, "connect"), tc.expected)
		})
	}

	assert.NoError(t, toDomainError(nil, "connect"))
	assert.ErrorContains(t, toDomainError(context.DeadlineExceeded, "ping"), "ping timed out")
}
