package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
)

// ApplyLocksRequest carries one step invocation's input to the lock application algorithm
type ApplyLocksRequest struct {
	LoanIDs      []int64          // Assigned loan IDs, in scheduler order
	Owner        entity.LockOwner // Stage the locks are placed for
	BusinessDate time.Time        // COB business date recorded on new locks
	ExecutionID  string           // Correlates log lines of one invocation
}

// ApplyLocksResult summarises what one invocation decided and wrote
type ApplyLocksResult struct {
	Assigned       int     `json:"assigned"`
	Duplicates     int     `json:"duplicates"`
	AlreadyLocked  int     `json:"alreadyLocked"`
	Applied        int     `json:"applied"`
	AppliedLoanIDs []int64 `json:"appliedLoanIds"`
}

// LoanLockUseCase defines the loan account lock operations of the COB pipeline
type LoanLockUseCase interface {
	// ApplyLocks places locks for req.Owner on every assigned loan that does not hold one yet.
	// Store faults are returned unchanged; a write fault may leave earlier chunks committed.
	ApplyLocks(ctx context.Context, req ApplyLocksRequest) (*ApplyLocksResult, error)

	// LocksForLoan returns every lock currently held on the loan
	LocksForLoan(ctx context.Context, loanID int64) ([]entity.LoanAccountLock, error)

	// IsLockedBy reports whether the loan is locked by the given stage
	IsLockedBy(ctx context.Context, loanID int64, owner entity.LockOwner) (bool, error)
}
