package dto

import (
	domainerr "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse builds an error response carrying the code of err
func NewErrorResponse(err error, message string) ErrorResponse {
	return ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	}
}
