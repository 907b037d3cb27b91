package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
)

// InitialLockVersion is the optimistic-locking version of a freshly placed lock
const InitialLockVersion int64 = 1

// LoanAccountLock is one stage's claim on one loan account
type LoanAccountLock struct {
	LoanID       int64     // Loan account the lock applies to
	LockOwner    LockOwner // Stage holding the lock
	LockDate     time.Time // COB business date the lock was placed on (date only)
	LockPlacedOn time.Time // Wall-clock time the lock was written
	Version      int64
}

// LockKey identifies a lock row; at most one row exists per key
type LockKey struct {
	LoanID    int64
	LockOwner LockOwner
}

// NewLoanAccountLock creates a lock for the given loan, owner and business date
func NewLoanAccountLock(loanID int64, owner LockOwner, businessDate time.Time, timeProvider coreport.TimeProvider) (*LoanAccountLock, error) {
	if loanID <= 0 {
		return nil, errs.ErrInvalidLoanID
	}
	if !owner.IsValid() {
		return nil, errs.ErrInvalidLockOwner
	}
	if businessDate.IsZero() {
		return nil, errs.ErrInvalidBusinessDate
	}

	return &LoanAccountLock{
		LoanID:       loanID,
		LockOwner:    owner,
		LockDate:     BusinessDay(businessDate),
		LockPlacedOn: timeProvider.Now(),
		Version:      InitialLockVersion,
	}, nil
}

// Key returns the uniqueness key of the lock
func (l LoanAccountLock) Key() LockKey {
	return LockKey{LoanID: l.LoanID, LockOwner: l.LockOwner}
}

// IsOwnedBy reports whether the lock belongs to the given stage
func (l LoanAccountLock) IsOwnedBy(owner LockOwner) bool {
	return l.LockOwner == owner
}
