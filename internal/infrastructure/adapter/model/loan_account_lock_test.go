package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
)

func TestLoanAccountLock_RoundTrip(t *testing.T) {
	placedOn := time.Date(2023, 1, 2, 1, 30, 0, 0, time.UTC)
	lock := entity.LoanAccountLock{
		LoanID:       11,
		LockOwner:    entity.LockOwnerCOBPartitioning,
		LockDate:     time.Date(2023, 1, 1, 18, 0, 0, 0, time.UTC),
		LockPlacedOn: placedOn,
		Version:      entity.InitialLockVersion,
	}

	row := NewLoanAccountLock(lock)

	assert.Equal(t, "LOAN_COB_PARTITIONING", row.LockOwner)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), row.LockPlacedOnCOBBusinessDate)
	assert.Equal(t, []any{
		int64(11),
		entity.InitialLockVersion,
		"LOAN_COB_PARTITIONING",
		placedOn,
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}, row.InsertParams())

	back := row.ToEntity()
	assert.Equal(t, lock.Key(), back.Key())
	assert.Equal(t, entity.BusinessDay(lock.LockDate), back.LockDate)
	assert.Equal(t, LoanAccountLockTable, LoanAccountLock{}.TableName())
}
