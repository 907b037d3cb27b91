package cob

import (
	"fmt"

	errs "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
)

// LoanIDsKey is the execution context key holding the loan IDs assigned to a step execution
const LoanIDsKey = "loanIds"

// RepeatStatus is the completion signal a step reports to the scheduler
type RepeatStatus string

// Repeat statuses
const (
	RepeatStatusContinuable RepeatStatus = "CONTINUABLE"
	RepeatStatusFinished    RepeatStatus = "FINISHED"
)

// String returns the string representation of the status
func (s RepeatStatus) String() string {
	return string(s)
}

// ExecutionContext holds the per-invocation values the scheduler hands to a step
type ExecutionContext map[string]any

// StepExecution is one invocation of a step over one partition of loans
type StepExecution struct {
	ID               string
	StepName         string
	ExecutionContext ExecutionContext
}

// StepContribution collects what a step execution did for the scheduler's bookkeeping
type StepContribution struct {
	StepExecution *StepExecution
	WriteCount    int
}

// IncrementWriteCount adds n written items to the contribution
func (c *StepContribution) IncrementWriteCount(n int) {
	c.WriteCount += n
}

// LoanIDs returns the ordered loan IDs stored under LoanIDsKey.
// A present but empty list is valid; a missing key is not.
func (c ExecutionContext) LoanIDs() ([]int64, error) {
	raw, ok := c[LoanIDsKey]
	if !ok || raw == nil {
		return nil, errs.NewExecutionContextError(LoanIDsKey, "missing")
	}

	switch v := raw.(type) {
	case []int64:
		return v, nil
	case []int:
		ids := make([]int64, len(v))
		for i, id := range v {
			ids[i] = int64(id)
		}
		return ids, nil
	case []any:
		ids := make([]int64, len(v))
		for i, item := range v {
			id, err := toLoanID(item)
			if err != nil {
				return nil, errs.NewExecutionContextError(LoanIDsKey, fmt.Sprintf("element %d: %v", i, err))
			}
			ids[i] = id
		}
		return ids, nil
	default:
		return nil, errs.NewExecutionContextError(LoanIDsKey, fmt.Sprintf("unsupported type %T", raw))
	}
}

func toLoanID(item any) (int64, error) {
	switch n := item.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case float64:
		if n != float64(int64(n)) {
			return 0, fmt.Errorf("non-integral value %v", n)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("unsupported type %T", item)
	}
}
