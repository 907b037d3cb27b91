package model

import (
	"time"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
)

// LoanAccountLockTable is the table holding loan account locks
const LoanAccountLockTable = "m_loan_account_locks"

// LoanAccountLock represents the database model for loan account locks.
// At most one row exists per (loan_id, lock_owner).
type LoanAccountLock struct {
	ID                          uint64    `gorm:"primaryKey;autoIncrement"`
	LoanID                      int64     `gorm:"column:loan_id;not null;uniqueIndex:uk_loan_account_locks_loan_owner,priority:1"`
	Version                     int64     `gorm:"column:version;not null;default:1"`
	LockOwner                   string    `gorm:"column:lock_owner;type:varchar(50);not null;uniqueIndex:uk_loan_account_locks_loan_owner,priority:2;index:idx_loan_account_locks_owner"`
	LockPlacedOn                time.Time `gorm:"column:lock_placed_on;not null"`
	LockPlacedOnCOBBusinessDate time.Time `gorm:"column:lock_placed_on_cob_business_date;type:date;not null"`
}

// TableName specifies the table name for LoanAccountLock
func (LoanAccountLock) TableName() string {
	return LoanAccountLockTable
}

// NewLoanAccountLock converts a lock entity to its database model
func NewLoanAccountLock(lock entity.LoanAccountLock) LoanAccountLock {
	return LoanAccountLock{
		LoanID:                      lock.LoanID,
		Version:                     lock.Version,
		LockOwner:                   lock.LockOwner.String(),
		LockPlacedOn:                lock.LockPlacedOn,
		LockPlacedOnCOBBusinessDate: entity.BusinessDay(lock.LockDate),
	}
}

// ToEntity converts the database model to a lock entity
func (m LoanAccountLock) ToEntity() entity.LoanAccountLock {
	return entity.LoanAccountLock{
		LoanID:       m.LoanID,
		LockOwner:    entity.LockOwner(m.LockOwner),
		LockDate:     entity.BusinessDay(m.LockPlacedOnCOBBusinessDate),
		LockPlacedOn: m.LockPlacedOn,
		Version:      m.Version,
	}
}

// InsertParams maps the row to the positional parameters of an insert over
// (loan_id, version, lock_owner, lock_placed_on, lock_placed_on_cob_business_date)
func (m LoanAccountLock) InsertParams() []any {
	return []any{
		m.LoanID,
		m.Version,
		m.LockOwner,
		m.LockPlacedOn,
		m.LockPlacedOnCOBBusinessDate,
	}
}
