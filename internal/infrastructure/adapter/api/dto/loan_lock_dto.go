package dto

import (
	"time"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
)

// LoanLockResponse represents one lock held on a loan account
type LoanLockResponse struct {
	LoanID                      int64  `json:"loanId"`
	LockOwner                   string `json:"lockOwner"`
	LockPlacedOn                string `json:"lockPlacedOn"`
	LockPlacedOnCOBBusinessDate string `json:"lockPlacedOnCobBusinessDate"`
	Version                     int64  `json:"version"`
}

// LoanLocksResponse lists the locks held on a loan account
type LoanLocksResponse struct {
	LoanID int64              `json:"loanId"`
	Locked bool               `json:"locked"`
	Locks  []LoanLockResponse `json:"locks"`
}

// LoanLockStatusResponse reports whether a loan is locked by one owner
type LoanLockStatusResponse struct {
	LoanID    int64  `json:"loanId"`
	LockOwner string `json:"lockOwner"`
	Locked    bool   `json:"locked"`
}

// NewLoanLocksResponse maps lock entities to the API response
func NewLoanLocksResponse(loanID int64, locks []entity.LoanAccountLock) LoanLocksResponse {
	resp := LoanLocksResponse{
		LoanID: loanID,
		Locked: len(locks) > 0,
		Locks:  make([]LoanLockResponse, 0, len(locks)),
	}
	for _, lock := range locks {
		resp.Locks = append(resp.Locks, LoanLockResponse{
			LoanID:                      lock.LoanID,
			LockOwner:                   lock.LockOwner.String(),
			LockPlacedOn:                lock.LockPlacedOn.UTC().Format(time.RFC3339),
			LockPlacedOnCOBBusinessDate: entity.FormatBusinessDate(lock.LockDate),
			Version:                     lock.Version,
		})
	}
	return resp
}
