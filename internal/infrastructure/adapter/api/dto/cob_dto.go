package dto

// ApplyLoanLockRequest triggers the apply-loan-lock step for one chunk of loans
type ApplyLoanLockRequest struct {
	ExecutionID      string  `json:"executionId"`
	LoanIDs          []int64 `json:"loanIds"`
	BusinessDate     string  `json:"businessDate"` // COB date being closed, YYYY-MM-DD; defaults to yesterday in the tenant zone
	TenantIdentifier string  `json:"tenantIdentifier"`
}

// ApplyLoanLockResponse reports the outcome of one step execution
type ApplyLoanLockResponse struct {
	ExecutionID  string `json:"executionId"`
	StepName     string `json:"stepName"`
	Status       string `json:"status"`
	BusinessDate string `json:"businessDate"`
	Assigned     int    `json:"assigned"`
	WriteCount   int    `json:"writeCount"`
}
