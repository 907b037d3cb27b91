package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler turns a panic in a later handler into a 500 with the standard error body
func ErrorHandler(log coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}

			log.Error("Recovered from panic while serving request", map[string]any{
				"panic":      p,
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"request_id": coreport.CorrelationIDFromContext(c.Request.Context()),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(domainerr.ErrInternalServer, "Internal server error"))
		}()

		c.Next()
	}
}
