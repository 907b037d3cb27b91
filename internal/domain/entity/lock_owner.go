package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
)

// LockOwner names the pipeline stage that holds a lock on a loan account
type LockOwner string

// Lock owners
const (
	LockOwnerCOBChunkProcessing  LockOwner = "LOAN_COB_CHUNK_PROCESSING"
	LockOwnerCOBPartitioning     LockOwner = "LOAN_COB_PARTITIONING"
	LockOwnerInlineCOBProcessing LockOwner = "LOAN_INLINE_COB_PROCESSING"
)

// LockOwners lists every known lock owner
func LockOwners() []LockOwner {
	return []LockOwner{
		LockOwnerCOBChunkProcessing,
		LockOwnerCOBPartitioning,
		LockOwnerInlineCOBProcessing,
	}
}

// ParseLockOwner converts a string into a LockOwner, ignoring case and surrounding spaces
func ParseLockOwner(s string) (LockOwner, error) {
	owner := LockOwner(strings.ToUpper(strings.TrimSpace(s)))
	if !owner.IsValid() {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidLockOwner, s)
	}
	return owner, nil
}

// IsValid reports whether the owner is one of the known stages
func (o LockOwner) IsValid() bool {
	switch o {
	case LockOwnerCOBChunkProcessing, LockOwnerCOBPartitioning, LockOwnerInlineCOBProcessing:
		return true
	default:
		return false
	}
}

// IsBatch reports whether the owner is a stage of the batch COB job,
// as opposed to inline COB triggered outside the batch
func (o LockOwner) IsBatch() bool {
	switch o {
	case LockOwnerCOBChunkProcessing, LockOwnerCOBPartitioning:
		return true
	case LockOwnerInlineCOBProcessing:
		return false
	default:
		return false
	}
}

// String returns the owner identifier
func (o LockOwner) String() string {
	return string(o)
}
