package persistence

import (
	"context"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
)

// LoanAccountLockRepository defines the bounded read and write operations on loan account locks.
// Implementations partition their input themselves, so callers never have to respect the
// platform parameter-count limit.
type LoanAccountLockRepository interface {
	// FindAllByLoanIDIn returns every lock, of any owner, held on the given loans.
	// Rows found by several read chunks are returned once.
	//
	// Possible errors:
	// - ErrStoreRead: If any read chunk fails; no partial result is returned
	FindAllByLoanIDIn(ctx context.Context, loanIDs []int64) ([]entity.LoanAccountLock, error)

	// BatchInsert appends the given locks in order, grouping at most chunkSize rows
	// into a single write. Each chunk commits on its own.
	//
	// Possible errors:
	// - ErrInvalidChunkSize: If chunkSize is not positive; nothing is written
	// - ErrStoreWrite: If a chunk fails; earlier chunks stay committed
	BatchInsert(ctx context.Context, locks []entity.LoanAccountLock, chunkSize int) error

	// FindByLoanID returns the locks currently held on a single loan
	//
	// Possible errors:
	// - ErrStoreRead: If the read fails
	FindByLoanID(ctx context.Context, loanID int64) ([]entity.LoanAccountLock, error)
}
