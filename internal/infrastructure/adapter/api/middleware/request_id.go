package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
)

// RequestIDHeader carries the request correlation id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID puts the caller's X-Request-ID, or a fresh UUID, on the request context and echoes it back
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(coreport.WithCorrelationID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
