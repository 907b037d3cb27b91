package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
)

// Logger writes one access log entry per request; 5xx responses are logged at warn
func Logger(log coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := map[string]any{
			"method":       c.Request.Method,
			"path":         c.Request.URL.Path,
			"route":        c.FullPath(),
			"status":       status,
			"status_class": fmt.Sprintf("%dxx", status/100),
			"latency_ms":   time.Since(start).Milliseconds(),
			"ip":           c.ClientIP(),
			"request_id":   coreport.CorrelationIDFromContext(c.Request.Context()),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		if status >= 500 {
			log.Warn("Request failed", fields)
			return
		}
		log.Info("Request served", fields)
	}
}
