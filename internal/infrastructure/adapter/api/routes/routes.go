package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers the API serves
type Handlers struct {
	COB      *handler.COBHandler
	LoanLock *handler.LoanLockHandler
	Health   *handler.HealthHandler
	// Metrics is mounted at MetricsPath when set
	Metrics     http.Handler
	MetricsPath string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers) {
	router.GET("/health", handlers.Health.Health)

	if handlers.Metrics != nil {
		router.GET(handlers.MetricsPath, gin.WrapH(handlers.Metrics))
	}

	v1 := router.Group("/v1")
	{
		// POST /v1/cob/steps/apply-loan-lock
		v1.POST("/cob/steps/apply-loan-lock", handlers.COB.ApplyLoanLock)

		// GET /v1/loans/:loanId/locks
		v1.GET("/loans/:loanId/locks", handlers.LoanLock.GetLocks)

		// GET /v1/loans/:loanId/locks/:owner
		v1.GET("/loans/:loanId/locks/:owner", handlers.LoanLock.GetLockStatus)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
