package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/batch"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/model"
)

const insertLoanAccountLockSQL = `INSERT INTO m_loan_account_locks
	(loan_id, version, lock_owner, lock_placed_on, lock_placed_on_cob_business_date)
	VALUES (?, ?, ?, ?, ?)`

// LoanAccountLockRepository implements the loan account lock store using GORM
type LoanAccountLockRepository struct {
	db            *gorm.DB
	inClauseLimit int
	logger        coreport.Logger
	metrics       coreport.Metrics
}

var _ persistence.LoanAccountLockRepository = (*LoanAccountLockRepository)(nil)

// NewLoanAccountLockRepository creates a new LoanAccountLockRepository instance.
// inClauseLimit bounds the number of loan IDs bound into a single read.
func NewLoanAccountLockRepository(
	db *gorm.DB,
	inClauseLimit int,
	logger coreport.Logger,
	metrics coreport.Metrics,
) (*LoanAccountLockRepository, error) {
	if inClauseLimit <= 0 {
		return nil, fmt.Errorf("%w: in-clause parameter size limit is %d", errs.ErrInvalidChunkSize, inClauseLimit)
	}

	return &LoanAccountLockRepository{
		db:            db,
		inClauseLimit: inClauseLimit,
		logger:        logger,
		metrics:       metrics,
	}, nil
}

// FindAllByLoanIDIn returns the locks of every owner held on the given loans.
// The IDs are queried in chunks of at most inClauseLimit; rows are merged without
// duplicates in the order they were first read.
func (r *LoanAccountLockRepository) FindAllByLoanIDIn(ctx context.Context, loanIDs []int64) ([]entity.LoanAccountLock, error) {
	chunks, err := batch.Partition(loanIDs, r.inClauseLimit)
	if err != nil {
		return nil, err
	}

	seen := make(map[entity.LockKey]struct{})
	var locks []entity.LoanAccountLock
	for i, chunk := range chunks {
		var rows []model.LoanAccountLock
		if err := r.db.WithContext(ctx).Where("loan_id IN ?", chunk).Order("id").Find(&rows).Error; err != nil {
			return nil, r.readFailed(i, len(chunks), err)
		}
		r.metrics.ObserveStoreChunk(errs.OpRead, len(chunk))

		for _, row := range rows {
			lock := row.ToEntity()
			if _, ok := seen[lock.Key()]; ok {
				continue
			}
			seen[lock.Key()] = struct{}{}
			locks = append(locks, lock)
		}
	}

	r.logger.Debug("Loan account locks read", map[string]any{
		"loan_ids": len(loanIDs),
		"chunks":   len(chunks),
		"locks":    len(locks),
	})
	return locks, nil
}

// BatchInsert writes the locks in chunks of at most chunkSize rows. Each chunk is one
// transaction executing the insert statement once per row, so chunks that committed
// before a failing one stay committed.
func (r *LoanAccountLockRepository) BatchInsert(ctx context.Context, locks []entity.LoanAccountLock, chunkSize int) error {
	chunks, err := batch.Partition(locks, chunkSize)
	if err != nil {
		return err
	}

	committed := 0
	for i, chunk := range chunks {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, lock := range chunk {
				row := model.NewLoanAccountLock(lock)
				if err := tx.Exec(insertLoanAccountLockSQL, row.InsertParams()...).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return r.writeFailed(i, len(chunks), committed, err)
		}
		r.metrics.ObserveStoreChunk(errs.OpWrite, len(chunk))
		committed += len(chunk)
	}

	r.logger.Debug("Loan account locks written", map[string]any{
		"rows":   committed,
		"chunks": len(chunks),
	})
	return nil
}

// FindByLoanID returns the locks held on a single loan
func (r *LoanAccountLockRepository) FindByLoanID(ctx context.Context, loanID int64) ([]entity.LoanAccountLock, error) {
	var rows []model.LoanAccountLock
	if err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Order("id").Find(&rows).Error; err != nil {
		return nil, r.readFailed(0, 1, err)
	}

	locks := make([]entity.LoanAccountLock, 0, len(rows))
	for _, row := range rows {
		locks = append(locks, row.ToEntity())
	}
	return locks, nil
}

func (r *LoanAccountLockRepository) readFailed(chunk, chunkCount int, err error) error {
	storeErr := &errs.StoreError{Op: errs.OpRead, Chunk: chunk, ChunkCount: chunkCount, Err: err}
	fields := storeErr.LogFields()
	fields["db_error_class"] = string(classifyError(err))
	r.logger.Error("Failed to read loan account locks", fields)
	return storeErr
}

func (r *LoanAccountLockRepository) writeFailed(chunk, chunkCount, committed int, err error) error {
	cause := err
	if isDuplicateKey(err) {
		cause = fmt.Errorf("%w: %s", errs.ErrDuplicateLock, err.Error())
	}

	storeErr := &errs.StoreError{Op: errs.OpWrite, Chunk: chunk, ChunkCount: chunkCount, Committed: committed, Err: cause}
	fields := storeErr.LogFields()
	fields["db_error_class"] = string(classifyError(err))
	r.logger.Error("Failed to write loan account locks", fields)
	return storeErr
}
