package cob

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/usecase"
)

// ApplyLoanLockStepName is the scheduler-facing name of the step
const ApplyLoanLockStepName = "APPLY_LOAN_LOCK"

// businessContextKeyName names the business context in execution context errors
const businessContextKeyName = "businessContext"

// ApplyLoanLockTasklet places the chunk-processing lock on the loans assigned to a step execution
type ApplyLoanLockTasklet struct {
	lockUseCase usecase.LoanLockUseCase
	logger      coreport.Logger
}

// NewApplyLoanLockTasklet creates a new tasklet
func NewApplyLoanLockTasklet(lockUseCase usecase.LoanLockUseCase, logger coreport.Logger) *ApplyLoanLockTasklet {
	return &ApplyLoanLockTasklet{
		lockUseCase: lockUseCase,
		logger:      logger,
	}
}

// Execute reads the assigned loans and the COB date, applies the locks and reports FINISHED.
// Any fault from the lock use case is returned as is.
func (t *ApplyLoanLockTasklet) Execute(ctx context.Context, contribution *StepContribution) (RepeatStatus, error) {
	if contribution == nil || contribution.StepExecution == nil {
		return "", errs.NewExecutionContextError("stepExecution", "missing")
	}
	execution := contribution.StepExecution
	if execution.ID == "" {
		execution.ID = uuid.NewString()
	}

	loanIDs, err := execution.ExecutionContext.LoanIDs()
	if err != nil {
		return "", err
	}

	bc, ok := BusinessContextFrom(ctx)
	if !ok {
		return "", errs.NewExecutionContextError(businessContextKeyName, "missing")
	}
	cobDate, ok := bc.BusinessDate(entity.COBDate)
	if !ok {
		return "", errs.NewExecutionContextError(string(entity.COBDate), "missing")
	}

	t.logger.Debug("Applying loan account locks", map[string]any{
		"execution_id": execution.ID,
		"tenant":       bc.Tenant.Identifier,
		"cob_date":     entity.FormatBusinessDate(cobDate),
		"assigned":     len(loanIDs),
	})

	result, err := t.lockUseCase.ApplyLocks(ctx, usecase.ApplyLocksRequest{
		LoanIDs:      loanIDs,
		Owner:        entity.LockOwnerCOBChunkProcessing,
		BusinessDate: cobDate,
		ExecutionID:  execution.ID,
	})
	if err != nil {
		return "", err
	}

	contribution.IncrementWriteCount(result.Applied)
	return RepeatStatusFinished, nil
}
