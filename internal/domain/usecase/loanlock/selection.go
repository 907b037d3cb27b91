package loanlock

import (
	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
)

// validateLoanIDs rejects non-positive loan IDs before any store call
func validateLoanIDs(loanIDs []int64) error {
	for _, loanID := range loanIDs {
		if loanID <= 0 {
			return errs.ErrInvalidLoanID
		}
	}
	return nil
}

// distinctLoanIDs drops repeated IDs, keeping the first occurrence of each,
// and reports how many were dropped
func distinctLoanIDs(loanIDs []int64) ([]int64, int) {
	seen := make(map[int64]struct{}, len(loanIDs))
	distinct := make([]int64, 0, len(loanIDs))
	for _, loanID := range loanIDs {
		if _, ok := seen[loanID]; ok {
			continue
		}
		seen[loanID] = struct{}{}
		distinct = append(distinct, loanID)
	}
	return distinct, len(loanIDs) - len(distinct)
}

// lockedBy returns the loans holding a lock of exactly the given owner.
// Locks of other owners never exclude a loan.
func lockedBy(locks []entity.LoanAccountLock, owner entity.LockOwner) map[int64]struct{} {
	excluded := make(map[int64]struct{})
	for _, lock := range locks {
		if lock.IsOwnedBy(owner) {
			excluded[lock.LoanID] = struct{}{}
		}
	}
	return excluded
}

// pendingLoanIDs returns loanIDs minus excluded, in the order of loanIDs
func pendingLoanIDs(loanIDs []int64, excluded map[int64]struct{}) []int64 {
	pending := make([]int64, 0, len(loanIDs))
	for _, loanID := range loanIDs {
		if _, ok := excluded[loanID]; ok {
			continue
		}
		pending = append(pending, loanID)
	}
	return pending
}
