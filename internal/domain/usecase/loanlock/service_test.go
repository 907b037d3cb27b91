package loanlock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/batch"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/usecase"
	mockcore "github.com/amirhossein-jamali/loan-cob-lock/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/loan-cob-lock/mocks/port/persistence"
)

const testChunkSize = 65000

var (
	fixedTime    = time.Date(2023, 1, 2, 1, 30, 0, 0, time.UTC)
	businessDate = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
)

type serviceMocks struct {
	repo    *mockpersistence.MockLoanAccountLockRepository
	time    *mockcore.MockTimeProvider
	logger  *mockcore.MockLogger
	metrics *mockcore.MockMetrics
}

func newServiceMocks(t *testing.T) *serviceMocks {
	m := &serviceMocks{
		repo:    mockpersistence.NewMockLoanAccountLockRepository(t),
		time:    mockcore.NewMockTimeProvider(t),
		logger:  mockcore.NewMockLogger(t),
		metrics: mockcore.NewMockMetrics(t),
	}
	m.time.EXPECT().Now().Return(fixedTime).Maybe()
	m.time.EXPECT().Since(mock.Anything).Return(5 * time.Millisecond).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *serviceMocks) service(t *testing.T, chunkSize int) *Service {
	svc, err := NewService(m.repo, chunkSize, m.time, m.logger, m.metrics)
	require.NoError(t, err)
	return svc
}

func lock(loanID int64, owner entity.LockOwner) entity.LoanAccountLock {
	return entity.LoanAccountLock{
		LoanID:       loanID,
		LockOwner:    owner,
		LockDate:     businessDate,
		LockPlacedOn: fixedTime,
		Version:      entity.InitialLockVersion,
	}
}

func loanIDsOf(locks []entity.LoanAccountLock) []int64 {
	ids := make([]int64, 0, len(locks))
	for _, l := range locks {
		ids = append(ids, l.LoanID)
	}
	return ids
}

func TestNewService_RejectsNonPositiveChunkSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		svc, err := NewService(nil, size, nil, nil, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidChunkSize)
		assert.Nil(t, svc)
		assert.True(t, errs.IsConfigurationError(err))
	}
}

func TestService_ApplyLocks_SkipsLoansAlreadyLockedByOwner(t *testing.T) {
	m := newServiceMocks(t)
	ctx := context.Background()
	loanIDs := []int64{1, 2, 3, 4}

	m.repo.EXPECT().FindAllByLoanIDIn(ctx, loanIDs).Return([]entity.LoanAccountLock{
		lock(1, entity.LockOwnerCOBChunkProcessing),
		lock(2, entity.LockOwnerCOBPartitioning),
		lock(3, entity.LockOwnerInlineCOBProcessing),
	}, nil).Once()

	var written []entity.LoanAccountLock
	m.repo.EXPECT().BatchInsert(ctx, mock.Anything, testChunkSize).
		Run(func(_ context.Context, locks []entity.LoanAccountLock, _ int) {
			written = locks
		}).
		Return(nil).Once()
	m.metrics.EXPECT().AddLocksApplied(string(entity.LockOwnerCOBChunkProcessing), 3).Once()
	m.metrics.EXPECT().ObserveStep(StepName, coreport.OutcomeFinished, 5*time.Millisecond).Once()

	result, err := m.service(t, testChunkSize).ApplyLocks(ctx, usecase.ApplyLocksRequest{
		LoanIDs:      loanIDs,
		Owner:        entity.LockOwnerCOBChunkProcessing,
		BusinessDate: businessDate,
		ExecutionID:  "exec-1",
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4}, loanIDsOf(written))
	assert.Equal(t, int64(2), written[0].LoanID)
	for _, row := range written {
		assert.Equal(t, entity.LockOwnerCOBChunkProcessing, row.LockOwner)
		assert.Equal(t, businessDate, row.LockDate)
		assert.Equal(t, fixedTime, row.LockPlacedOn)
		assert.Equal(t, entity.InitialLockVersion, row.Version)
	}

	assert.Equal(t, &usecase.ApplyLocksResult{
		Assigned:       4,
		AlreadyLocked:  1,
		Applied:        3,
		AppliedLoanIDs: []int64{2, 3, 4},
	}, result)
}

func TestService_ApplyLocks_ReadFailure(t *testing.T) {
	m := newServiceMocks(t)
	ctx := context.Background()
	failure := errors.New("fail")

	m.repo.EXPECT().FindAllByLoanIDIn(ctx, []int64{1, 2, 3, 4}).Return(nil, failure).Once()
	m.metrics.EXPECT().ObserveStep(StepName, coreport.OutcomeFailed, mock.Anything).Once()

	result, err := m.service(t, testChunkSize).ApplyLocks(ctx, usecase.ApplyLocksRequest{
		LoanIDs:      []int64{1, 2, 3, 4},
		Owner:        entity.LockOwnerCOBChunkProcessing,
		BusinessDate: businessDate,
	})

	assert.Same(t, failure, err)
	assert.Nil(t, result)
	m.repo.AssertNotCalled(t, "BatchInsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ApplyLocks_WriteFailurePropagates(t *testing.T) {
	m := newServiceMocks(t)
	ctx := context.Background()
	cause := errors.New("duplicate key value violates unique constraint")
	storeErr := errs.NewStoreWriteError(1, 2, 2, cause)

	m.repo.EXPECT().FindAllByLoanIDIn(ctx, mock.Anything).Return(nil, nil).Once()
	m.repo.EXPECT().BatchInsert(ctx, mock.Anything, 2).Return(storeErr).Once()
	m.metrics.EXPECT().ObserveStep(StepName, coreport.OutcomeFailed, mock.Anything).Once()

	result, err := m.service(t, 2).ApplyLocks(ctx, usecase.ApplyLocksRequest{
		LoanIDs:      []int64{10, 11, 12},
		Owner:        entity.LockOwnerCOBPartitioning,
		BusinessDate: businessDate,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrStoreWrite)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 2, errs.CommittedRows(err))
}

func TestService_ApplyLocks_EmptyAssignment(t *testing.T) {
	m := newServiceMocks(t)
	m.metrics.EXPECT().ObserveStep(StepName, coreport.OutcomeFinished, mock.Anything).Once()

	result, err := m.service(t, testChunkSize).ApplyLocks(context.Background(), usecase.ApplyLocksRequest{
		LoanIDs: []int64{},
		Owner:   entity.LockOwnerCOBChunkProcessing,
	})

	require.NoError(t, err)
	assert.Equal(t, &usecase.ApplyLocksResult{}, result)
	m.repo.AssertNotCalled(t, "FindAllByLoanIDIn", mock.Anything, mock.Anything)
	m.repo.AssertNotCalled(t, "BatchInsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ApplyLocks_AllAlreadyLocked(t *testing.T) {
	m := newServiceMocks(t)
	ctx := context.Background()

	m.repo.EXPECT().FindAllByLoanIDIn(ctx, []int64{5, 6}).Return([]entity.LoanAccountLock{
		lock(5, entity.LockOwnerCOBChunkProcessing),
		lock(6, entity.LockOwnerCOBChunkProcessing),
		lock(6, entity.LockOwnerCOBPartitioning),
	}, nil).Once()
	m.metrics.EXPECT().ObserveStep(StepName, coreport.OutcomeFinished, mock.Anything).Once()

	result, err := m.service(t, testChunkSize).ApplyLocks(ctx, usecase.ApplyLocksRequest{
		LoanIDs:      []int64{5, 6},
		Owner:        entity.LockOwnerCOBChunkProcessing,
		BusinessDate: businessDate,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.AlreadyLocked)
	assert.Zero(t, result.Applied)
	assert.Empty(t, result.AppliedLoanIDs)
	m.repo.AssertNotCalled(t, "BatchInsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ApplyLocks_DuplicateAssignedIDs(t *testing.T) {
	m := newServiceMocks(t)
	ctx := context.Background()
	loanIDs := []int64{7, 8, 7, 9, 8}

	m.repo.EXPECT().FindAllByLoanIDIn(ctx, loanIDs).Return(nil, nil).Once()

	var written []entity.LoanAccountLock
	m.repo.EXPECT().BatchInsert(ctx, mock.Anything, testChunkSize).
		Run(func(_ context.Context, locks []entity.LoanAccountLock, _ int) {
			written = locks
		}).
		Return(nil).Once()
	m.metrics.EXPECT().AddLocksApplied(mock.Anything, 3).Once()
	m.metrics.EXPECT().ObserveStep(StepName, coreport.OutcomeFinished, mock.Anything).Once()

	result, err := m.service(t, testChunkSize).ApplyLocks(ctx, usecase.ApplyLocksRequest{
		LoanIDs:      loanIDs,
		Owner:        entity.LockOwnerCOBChunkProcessing,
		BusinessDate: businessDate,
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{7, 8, 9}, loanIDsOf(written))
	assert.Equal(t, 2, result.Duplicates)
	assert.Equal(t, 5, result.Assigned)
	assert.Equal(t, 3, result.Applied)
}

func TestService_ApplyLocks_InvalidRequests(t *testing.T) {
	testCases := []struct {
		name          string
		request       usecase.ApplyLocksRequest
		expectedError error
	}{
		{
			name: "unknown owner",
			request: usecase.ApplyLocksRequest{
				LoanIDs:      []int64{1},
				Owner:        entity.LockOwner("LOAN_DELINQUENCY"),
				BusinessDate: businessDate,
			},
			expectedError: errs.ErrInvalidLockOwner,
		},
		{
			name: "non-positive loan id",
			request: usecase.ApplyLocksRequest{
				LoanIDs:      []int64{1, 0},
				Owner:        entity.LockOwnerCOBChunkProcessing,
				BusinessDate: businessDate,
			},
			expectedError: errs.ErrInvalidLoanID,
		},
		{
			name: "missing business date",
			request: usecase.ApplyLocksRequest{
				LoanIDs: []int64{1},
				Owner:   entity.LockOwnerCOBChunkProcessing,
			},
			expectedError: errs.ErrInvalidBusinessDate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			m.metrics.EXPECT().ObserveStep(StepName, coreport.OutcomeFailed, mock.Anything).Once()

			result, err := m.service(t, testChunkSize).ApplyLocks(context.Background(), tc.request)

			assert.ErrorIs(t, err, tc.expectedError)
			assert.Nil(t, result)
			m.repo.AssertNotCalled(t, "FindAllByLoanIDIn", mock.Anything, mock.Anything)
		})
	}
}

// memoryLockStore keeps locks keyed by (loan, owner) and chunks writes like the database store
type memoryLockStore struct {
	mu    sync.Mutex
	rows  []entity.LoanAccountLock
	keys  map[entity.LockKey]struct{}
	reads int
}

func newMemoryLockStore(rows ...entity.LoanAccountLock) *memoryLockStore {
	s := &memoryLockStore{keys: make(map[entity.LockKey]struct{})}
	for _, r := range rows {
		s.rows = append(s.rows, r)
		s.keys[r.Key()] = struct{}{}
	}
	return s
}

func (s *memoryLockStore) FindAllByLoanIDIn(_ context.Context, loanIDs []int64) ([]entity.LoanAccountLock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++

	wanted := make(map[int64]struct{}, len(loanIDs))
	for _, id := range loanIDs {
		wanted[id] = struct{}{}
	}
	var out []entity.LoanAccountLock
	for _, r := range s.rows {
		if _, ok := wanted[r.LoanID]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memoryLockStore) BatchInsert(_ context.Context, locks []entity.LoanAccountLock, chunkSize int) error {
	chunks, err := batch.Partition(locks, chunkSize)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	committed := 0
	for i, chunk := range chunks {
		for _, l := range chunk {
			if _, ok := s.keys[l.Key()]; ok {
				return errs.NewStoreWriteError(i, len(chunks), committed, errs.ErrDuplicateLock)
			}
		}
		for _, l := range chunk {
			s.keys[l.Key()] = struct{}{}
			s.rows = append(s.rows, l)
		}
		committed += len(chunk)
	}
	return nil
}

func (s *memoryLockStore) FindByLoanID(ctx context.Context, loanID int64) ([]entity.LoanAccountLock, error) {
	return s.FindAllByLoanIDIn(ctx, []int64{loanID})
}

func TestService_ApplyLocks_SecondRunWritesNothing(t *testing.T) {
	m := newServiceMocks(t)
	m.metrics.EXPECT().AddLocksApplied(mock.Anything, mock.Anything).Once()
	m.metrics.EXPECT().ObserveStep(StepName, coreport.OutcomeFinished, mock.Anything).Twice()

	store := newMemoryLockStore(lock(2, entity.LockOwnerCOBPartitioning))
	svc, err := NewService(store, 2, m.time, m.logger, m.metrics)
	require.NoError(t, err)

	req := usecase.ApplyLocksRequest{
		LoanIDs:      []int64{1, 2, 3, 4, 5},
		Owner:        entity.LockOwnerCOBChunkProcessing,
		BusinessDate: businessDate,
	}

	first, err := svc.ApplyLocks(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 5, first.Applied)

	second, err := svc.ApplyLocks(context.Background(), req)
	require.NoError(t, err)
	assert.Zero(t, second.Applied)
	assert.Equal(t, 5, second.AlreadyLocked)
	assert.Len(t, store.rows, 6)
	assert.Equal(t, 2, store.reads)
}

func TestService_LocksForLoan(t *testing.T) {
	ctx := context.Background()

	t.Run("returns locks", func(t *testing.T) {
		m := newServiceMocks(t)
		expected := []entity.LoanAccountLock{lock(3, entity.LockOwnerCOBPartitioning)}
		m.repo.EXPECT().FindByLoanID(ctx, int64(3)).Return(expected, nil).Once()

		locks, err := m.service(t, testChunkSize).LocksForLoan(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, expected, locks)
	})

	t.Run("rejects invalid loan id", func(t *testing.T) {
		m := newServiceMocks(t)

		locks, err := m.service(t, testChunkSize).LocksForLoan(ctx, -4)

		assert.ErrorIs(t, err, errs.ErrInvalidLoanID)
		assert.Nil(t, locks)
	})

	t.Run("propagates store error", func(t *testing.T) {
		m := newServiceMocks(t)
		failure := errs.NewStoreReadError(0, 1, errors.New("connection reset"))
		m.repo.EXPECT().FindByLoanID(ctx, int64(3)).Return(nil, failure).Once()

		locks, err := m.service(t, testChunkSize).LocksForLoan(ctx, 3)

		assert.ErrorIs(t, err, errs.ErrStoreRead)
		assert.Nil(t, locks)
	})
}

func TestService_IsLockedBy(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(t)
	m.repo.EXPECT().FindByLoanID(ctx, int64(9)).Return([]entity.LoanAccountLock{
		lock(9, entity.LockOwnerInlineCOBProcessing),
	}, nil)
	svc := m.service(t, testChunkSize)

	locked, err := svc.IsLockedBy(ctx, 9, entity.LockOwnerInlineCOBProcessing)
	require.NoError(t, err)
	assert.True(t, locked)

	locked, err = svc.IsLockedBy(ctx, 9, entity.LockOwnerCOBChunkProcessing)
	require.NoError(t, err)
	assert.False(t, locked)

	_, err = svc.IsLockedBy(ctx, 9, entity.LockOwner(""))
	assert.ErrorIs(t, err, errs.ErrInvalidLockOwner)
}
