package loanlock

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/usecase"
)

// StepName identifies the lock application step in logs and metrics
const StepName = "apply_loan_lock"

// Service implements the loan account lock use cases
type Service struct {
	lockRepo     persistence.LoanAccountLockRepository
	chunkSize    int
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
}

var _ usecase.LoanLockUseCase = (*Service)(nil)

// NewService creates a new lock service. chunkSize is the platform parameter-count limit
// applied to every bounded write.
func NewService(
	lockRepo persistence.LoanAccountLockRepository,
	chunkSize int,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
) (*Service, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: in-clause parameter size limit is %d", errs.ErrInvalidChunkSize, chunkSize)
	}

	return &Service{
		lockRepo:     lockRepo,
		chunkSize:    chunkSize,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}, nil
}

// ApplyLocks reads the locks held on the assigned loans and writes a lock for req.Owner on
// every loan that lacks one, keeping the assigned order. It makes a single pass: the read
// always precedes the write, and neither is retried.
func (s *Service) ApplyLocks(ctx context.Context, req usecase.ApplyLocksRequest) (*usecase.ApplyLocksResult, error) {
	start := s.timeProvider.Now()

	result, err := s.applyLocks(ctx, req)

	outcome := coreport.OutcomeFinished
	if err != nil {
		outcome = coreport.OutcomeFailed
	}
	s.metrics.ObserveStep(StepName, outcome, s.timeProvider.Since(start))

	return result, err
}

func (s *Service) applyLocks(ctx context.Context, req usecase.ApplyLocksRequest) (*usecase.ApplyLocksResult, error) {
	fields := map[string]any{
		"execution_id": req.ExecutionID,
		"lock_owner":   req.Owner.String(),
		"assigned":     len(req.LoanIDs),
	}

	if !req.Owner.IsValid() {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidLockOwner, req.Owner)
	}

	if len(req.LoanIDs) == 0 {
		s.logger.Debug("No loan accounts assigned, skipping lock application", fields)
		return &usecase.ApplyLocksResult{}, nil
	}

	if err := validateLoanIDs(req.LoanIDs); err != nil {
		return nil, err
	}
	if req.BusinessDate.IsZero() {
		return nil, errs.ErrInvalidBusinessDate
	}

	existing, err := s.lockRepo.FindAllByLoanIDIn(ctx, req.LoanIDs)
	if err != nil {
		fields["error"] = err.Error()
		s.logger.Error("Failed to read existing loan account locks", fields)
		return nil, err
	}

	assigned, duplicates := distinctLoanIDs(req.LoanIDs)
	excluded := lockedBy(existing, req.Owner)
	targets := pendingLoanIDs(assigned, excluded)

	result := &usecase.ApplyLocksResult{
		Assigned:       len(req.LoanIDs),
		Duplicates:     duplicates,
		AlreadyLocked:  len(assigned) - len(targets),
		Applied:        len(targets),
		AppliedLoanIDs: targets,
	}
	fields["already_locked"] = result.AlreadyLocked
	fields["duplicates"] = duplicates
	fields["to_lock"] = len(targets)

	if len(targets) == 0 {
		s.logger.Info("All assigned loan accounts already locked", fields)
		return result, nil
	}

	locks, err := s.newLocks(targets, req.Owner, req.BusinessDate)
	if err != nil {
		return nil, err
	}

	if err := s.lockRepo.BatchInsert(ctx, locks, s.chunkSize); err != nil {
		fields["error"] = err.Error()
		fields["committed"] = errs.CommittedRows(err)
		s.logger.Error("Failed to write loan account locks", fields)
		return nil, err
	}

	s.metrics.AddLocksApplied(req.Owner.String(), len(locks))
	fields["business_date"] = entity.FormatBusinessDate(req.BusinessDate)
	s.logger.Info("Loan account locks applied", fields)

	return result, nil
}

// LocksForLoan returns every lock held on the loan
func (s *Service) LocksForLoan(ctx context.Context, loanID int64) ([]entity.LoanAccountLock, error) {
	if loanID <= 0 {
		return nil, errs.ErrInvalidLoanID
	}

	locks, err := s.lockRepo.FindByLoanID(ctx, loanID)
	if err != nil {
		s.logger.Error("Failed to get loan account locks", map[string]any{
			"loan_id": loanID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return locks, nil
}

// IsLockedBy reports whether the loan currently holds a lock of the given owner
func (s *Service) IsLockedBy(ctx context.Context, loanID int64, owner entity.LockOwner) (bool, error) {
	if !owner.IsValid() {
		return false, fmt.Errorf("%w: %q", errs.ErrInvalidLockOwner, owner)
	}

	locks, err := s.LocksForLoan(ctx, loanID)
	if err != nil {
		return false, err
	}
	for _, lock := range locks {
		if lock.IsOwnedBy(owner) {
			return true, nil
		}
	}
	return false, nil
}

// newLocks builds one row per target loan, in target order
func (s *Service) newLocks(loanIDs []int64, owner entity.LockOwner, businessDate time.Time) ([]entity.LoanAccountLock, error) {
	locks := make([]entity.LoanAccountLock, 0, len(loanIDs))
	for _, loanID := range loanIDs {
		lock, err := entity.NewLoanAccountLock(loanID, owner, businessDate, s.timeProvider)
		if err != nil {
			return nil, err
		}
		locks = append(locks, *lock)
	}
	return locks, nil
}
