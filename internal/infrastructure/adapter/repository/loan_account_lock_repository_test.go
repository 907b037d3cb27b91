package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/model"
	mockcore "github.com/amirhossein-jamali/loan-cob-lock/mocks/port/core"
)

var (
	placedOn = time.Date(2023, 1, 2, 1, 30, 0, 0, time.UTC)
	cobDate  = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
)

func newLock(loanID int64, owner entity.LockOwner) entity.LoanAccountLock {
	return entity.LoanAccountLock{
		LoanID:       loanID,
		LockOwner:    owner,
		LockDate:     cobDate,
		LockPlacedOn: placedOn,
		Version:      entity.InitialLockVersion,
	}
}

func setupRepository(t *testing.T, inClauseLimit int) (*LoanAccountLockRepository, *gorm.DB, *mockcore.MockMetrics) {
	t.Helper()
	log := logger.NewNoopLogger()
	db := database.NewTestDB(t, log)
	metrics := mockcore.NewMockMetrics(t)

	repo, err := NewLoanAccountLockRepository(db, inClauseLimit, log, metrics)
	require.NoError(t, err)
	return repo, db, metrics
}

// failOnCall returns a callback that fails the nth statement it sees with "fail"
func failOnCall(n int) func(*gorm.DB) {
	calls := 0
	return func(tx *gorm.DB) {
		calls++
		if calls == n {
			_ = tx.AddError(errors.New("fail"))
		}
	}
}

func countRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.LoanAccountLock{}).Count(&count).Error)
	return count
}

func TestNewLoanAccountLockRepository_RejectsNonPositiveLimit(t *testing.T) {
	repo, err := NewLoanAccountLockRepository(nil, 0, logger.NewNoopLogger(), nil)

	assert.Nil(t, repo)
	assert.ErrorIs(t, err, errs.ErrInvalidChunkSize)
}

func TestLoanAccountLockRepository_BatchInsertAndFind(t *testing.T) {
	repo, _, metrics := setupRepository(t, 2)
	ctx := context.Background()

	metrics.EXPECT().ObserveStoreChunk(errs.OpWrite, 2).Times(2)
	metrics.EXPECT().ObserveStoreChunk(errs.OpWrite, 1).Once()
	metrics.EXPECT().ObserveStoreChunk(errs.OpRead, mock.Anything).Maybe()

	locks := []entity.LoanAccountLock{
		newLock(1, entity.LockOwnerCOBChunkProcessing),
		newLock(2, entity.LockOwnerCOBPartitioning),
		newLock(3, entity.LockOwnerInlineCOBProcessing),
		newLock(2, entity.LockOwnerCOBChunkProcessing),
		newLock(9, entity.LockOwnerCOBChunkProcessing),
	}
	require.NoError(t, repo.BatchInsert(ctx, locks, 2))

	found, err := repo.FindAllByLoanIDIn(ctx, []int64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Len(t, found, 4)

	assert.Equal(t, int64(1), found[0].LoanID)
	assert.Equal(t, entity.LockOwnerCOBChunkProcessing, found[0].LockOwner)
	assert.True(t, cobDate.Equal(found[0].LockDate))
	assert.True(t, placedOn.Equal(found[0].LockPlacedOn))
	assert.Equal(t, entity.InitialLockVersion, found[0].Version)

	byLoan, err := repo.FindByLoanID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byLoan, 2)
	assert.Equal(t, entity.LockOwnerCOBPartitioning, byLoan[0].LockOwner)
	assert.Equal(t, entity.LockOwnerCOBChunkProcessing, byLoan[1].LockOwner)
}

func TestLoanAccountLockRepository_FindAllByLoanIDIn_ChunksAndMerges(t *testing.T) {
	repo, db, metrics := setupRepository(t, 2)
	ctx := context.Background()

	for _, row := range []model.LoanAccountLock{
		model.NewLoanAccountLock(newLock(1, entity.LockOwnerCOBChunkProcessing)),
		model.NewLoanAccountLock(newLock(3, entity.LockOwnerCOBPartitioning)),
		model.NewLoanAccountLock(newLock(5, entity.LockOwnerCOBPartitioning)),
	} {
		require.NoError(t, db.Create(&row).Error)
	}

	// five IDs with a repeat spanning chunks: [1 3] [5 1] [7]
	metrics.EXPECT().ObserveStoreChunk(errs.OpRead, 2).Times(2)
	metrics.EXPECT().ObserveStoreChunk(errs.OpRead, 1).Once()

	found, err := repo.FindAllByLoanIDIn(ctx, []int64{1, 3, 5, 1, 7})

	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, []int64{1, 3, 5}, []int64{found[0].LoanID, found[1].LoanID, found[2].LoanID})
}

func TestLoanAccountLockRepository_FindAllByLoanIDIn_Empty(t *testing.T) {
	repo, _, _ := setupRepository(t, 10)

	found, err := repo.FindAllByLoanIDIn(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestLoanAccountLockRepository_FindAllByLoanIDIn_ReadFault(t *testing.T) {
	repo, db, metrics := setupRepository(t, 2)
	metrics.EXPECT().ObserveStoreChunk(errs.OpRead, 2).Once()
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:fail_query", failOnCall(2)))

	found, err := repo.FindAllByLoanIDIn(context.Background(), []int64{1, 2, 3, 4, 5})

	assert.Nil(t, found)
	assert.ErrorIs(t, err, errs.ErrStoreRead)
	assert.EqualError(t, errors.Unwrap(err), "fail")

	var storeErr *errs.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, 1, storeErr.Chunk)
	assert.Equal(t, 3, storeErr.ChunkCount)
}

func TestLoanAccountLockRepository_BatchInsert_EarlierChunksStayCommitted(t *testing.T) {
	repo, db, metrics := setupRepository(t, 100)
	metrics.EXPECT().ObserveStoreChunk(errs.OpWrite, 2).Once()

	// rows 3 and 4 form the second chunk; the fourth insert fails
	require.NoError(t, db.Callback().Raw().Before("gorm:raw").Register("test:fail_exec", failOnCall(4)))

	locks := []entity.LoanAccountLock{
		newLock(1, entity.LockOwnerCOBChunkProcessing),
		newLock(2, entity.LockOwnerCOBChunkProcessing),
		newLock(3, entity.LockOwnerCOBChunkProcessing),
		newLock(4, entity.LockOwnerCOBChunkProcessing),
		newLock(5, entity.LockOwnerCOBChunkProcessing),
	}
	err := repo.BatchInsert(context.Background(), locks, 2)

	assert.ErrorIs(t, err, errs.ErrStoreWrite)
	assert.Equal(t, 2, errs.CommittedRows(err))
	assert.Equal(t, int64(2), countRows(t, db))
}

func TestLoanAccountLockRepository_BatchInsert_DuplicateLock(t *testing.T) {
	repo, db, metrics := setupRepository(t, 100)
	ctx := context.Background()
	metrics.EXPECT().ObserveStoreChunk(errs.OpWrite, 1).Once()

	require.NoError(t, repo.BatchInsert(ctx, []entity.LoanAccountLock{newLock(1, entity.LockOwnerCOBChunkProcessing)}, 10))

	err := repo.BatchInsert(ctx, []entity.LoanAccountLock{
		newLock(2, entity.LockOwnerCOBChunkProcessing),
		newLock(1, entity.LockOwnerCOBChunkProcessing),
	}, 10)

	assert.ErrorIs(t, err, errs.ErrStoreWrite)
	assert.ErrorIs(t, err, errs.ErrDuplicateLock)
	assert.Zero(t, errs.CommittedRows(err))
	// the whole chunk rolled back, including loan 2
	assert.Equal(t, int64(1), countRows(t, db))
}

func TestLoanAccountLockRepository_BatchInsert_InvalidChunkSize(t *testing.T) {
	repo, db, _ := setupRepository(t, 100)

	err := repo.BatchInsert(context.Background(), []entity.LoanAccountLock{newLock(1, entity.LockOwnerCOBChunkProcessing)}, 0)

	assert.ErrorIs(t, err, errs.ErrInvalidChunkSize)
	assert.Zero(t, countRows(t, db))
}
