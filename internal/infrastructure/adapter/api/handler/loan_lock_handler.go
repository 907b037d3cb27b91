package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/api/dto"
)

// LoanLockHandler serves the locks held on loan accounts
type LoanLockHandler struct {
	lockUseCase usecase.LoanLockUseCase
	logger      coreport.Logger
}

// NewLoanLockHandler creates a new loan lock handler instance
func NewLoanLockHandler(lockUseCase usecase.LoanLockUseCase, logger coreport.Logger) *LoanLockHandler {
	return &LoanLockHandler{
		lockUseCase: lockUseCase,
		logger:      logger,
	}
}

// GetLocks handles the GET /v1/loans/{loanId}/locks endpoint
func (h *LoanLockHandler) GetLocks(c *gin.Context) {
	loanID, ok := parseLoanID(c)
	if !ok {
		return
	}

	locks, err := h.lockUseCase.LocksForLoan(c.Request.Context(), loanID)
	if err != nil {
		h.logger.Error("Error getting loan account locks", map[string]any{
			"loanId": loanID,
			"error":  err.Error(),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLoanLocksResponse(loanID, locks))
}

// GetLockStatus handles the GET /v1/loans/{loanId}/locks/{owner} endpoint
func (h *LoanLockHandler) GetLockStatus(c *gin.Context) {
	loanID, ok := parseLoanID(c)
	if !ok {
		return
	}

	owner, err := entity.ParseLockOwner(c.Param("owner"))
	if err != nil {
		writeError(c, err)
		return
	}

	locked, err := h.lockUseCase.IsLockedBy(c.Request.Context(), loanID, owner)
	if err != nil {
		h.logger.Error("Error checking loan account lock", map[string]any{
			"loanId":    loanID,
			"lockOwner": owner.String(),
			"error":     err.Error(),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoanLockStatusResponse{
		LoanID:    loanID,
		LockOwner: owner.String(),
		Locked:    locked,
	})
}

func parseLoanID(c *gin.Context) (int64, bool) {
	loanID, err := strconv.ParseInt(c.Param("loanId"), 10, 64)
	if err != nil || loanID <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(domainerr.ErrInvalidLoanID, "Invalid loan ID format"))
		return 0, false
	}
	return loanID, true
}
