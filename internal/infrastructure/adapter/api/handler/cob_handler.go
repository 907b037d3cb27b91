package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/usecase/cob"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/api/dto"
)

// StepTasklet executes one COB step invocation
type StepTasklet interface {
	Execute(ctx context.Context, contribution *cob.StepContribution) (cob.RepeatStatus, error)
}

// COBHandler lets an external scheduler trigger COB steps over HTTP
type COBHandler struct {
	applyLoanLock StepTasklet
	tenant        entity.Tenant
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewCOBHandler creates a new COB handler instance. tenant is used when a request names none.
func NewCOBHandler(
	applyLoanLock StepTasklet,
	tenant entity.Tenant,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *COBHandler {
	return &COBHandler{
		applyLoanLock: applyLoanLock,
		tenant:        tenant,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// ApplyLoanLock handles the POST /v1/cob/steps/apply-loan-lock endpoint
func (h *COBHandler) ApplyLoanLock(c *gin.Context) {
	var req dto.ApplyLoanLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid apply loan lock request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(domainerr.ErrInvalidExecutionContext,
			"Invalid request format: "+err.Error()))
		return
	}

	tenant := h.tenant
	if req.TenantIdentifier != "" {
		tenant.Identifier = req.TenantIdentifier
	}

	cobDate, err := h.cobDate(req.BusinessDate, tenant)
	if err != nil {
		writeError(c, err)
		return
	}

	execution := &cob.StepExecution{
		ID:               req.ExecutionID,
		StepName:         cob.ApplyLoanLockStepName,
		ExecutionContext: cob.ExecutionContext{},
	}
	if execution.ID == "" {
		execution.ID = uuid.NewString()
	}
	// an absent list stays absent so the step reports it
	if req.LoanIDs != nil {
		execution.ExecutionContext[cob.LoanIDsKey] = req.LoanIDs
	}
	contribution := &cob.StepContribution{StepExecution: execution}

	ctx := cob.WithBusinessContext(c.Request.Context(), cob.NewBusinessContext(tenant, cobDate))
	status, err := h.applyLoanLock.Execute(ctx, contribution)
	if err != nil {
		h.logger.Error("Apply loan lock step failed", map[string]any{
			"execution_id": execution.ID,
			"tenant":       tenant.Identifier,
			"error":        err.Error(),
			"error_code":   domainerr.ErrorCode(err),
			"committed":    domainerr.CommittedRows(err),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApplyLoanLockResponse{
		ExecutionID:  execution.ID,
		StepName:     execution.StepName,
		Status:       status.String(),
		BusinessDate: entity.FormatBusinessDate(cobDate),
		Assigned:     len(req.LoanIDs),
		WriteCount:   contribution.WriteCount,
	})
}

// cobDate parses the requested COB date, defaulting to the day before today in the tenant zone
func (h *COBHandler) cobDate(requested string, tenant entity.Tenant) (time.Time, error) {
	if requested == "" {
		return entity.BusinessDay(h.timeProvider.Now().In(tenant.Location())).AddDate(0, 0, -1), nil
	}

	date, err := entity.ParseBusinessDate(requested)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", domainerr.ErrInvalidBusinessDate, requested)
	}
	return date, nil
}
