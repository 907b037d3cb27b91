package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/api/dto"
)

// statusCode maps domain errors to HTTP status codes
func statusCode(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInvalidLoanID),
		errors.Is(err, domainerr.ErrInvalidLockOwner),
		errors.Is(err, domainerr.ErrInvalidBusinessDate),
		errors.Is(err, domainerr.ErrInvalidExecutionContext):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrDuplicateLock):
		return http.StatusConflict
	case domainerr.IsStoreError(err),
		errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an ErrorResponse. Server-side faults keep their detail out of the body.
func writeError(c *gin.Context, err error) {
	status := statusCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	_ = c.Error(err)
	c.JSON(status, dto.NewErrorResponse(err, message))
}
