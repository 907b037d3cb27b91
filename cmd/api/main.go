package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/usecase/cob"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/usecase/loanlock"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/clock"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		log.Fatal(err)
	}
	_ = appLogger.Flush()
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	if warnings := productionWarnings(cfg); len(warnings) > 0 {
		appLogger.Warn("Potential issues in production configuration", map[string]any{"warnings": warnings})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := clock.NewSystem()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewPrometheusMetrics(registry)

	dbManager := database.NewManager(database.CreateConfigFromAppConfig(cfg), appLogger, tp, appMetrics)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	if cfg.Database.AutoMigrate {
		if err := dbManager.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	limit := cfg.COB.InClauseParameterSizeLimit
	lockRepo, err := repository.NewLoanAccountLockRepository(dbManager.DB(), limit, appLogger, appMetrics)
	if err != nil {
		return fmt.Errorf("create lock store: %w", err)
	}
	lockService, err := loanlock.NewService(lockRepo, limit, tp, appLogger, appMetrics)
	if err != nil {
		return fmt.Errorf("create loan lock service: %w", err)
	}

	tenant := tenantFromConfig(cfg.COB)
	handlers := routes.Handlers{
		COB:      handler.NewCOBHandler(cob.NewApplyLoanLockTasklet(lockService, appLogger), tenant, tp, appLogger),
		LoanLock: handler.NewLoanLockHandler(lockService, appLogger),
		Health:   handler.NewHealthHandler(dbManager, appLogger),
	}
	if cfg.Metrics.Enabled {
		handlers.Metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
		handlers.MetricsPath = cfg.Metrics.Path
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, handlers)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	appLogger.Info("Starting server", map[string]any{
		"addr":                           server.Addr,
		"env":                            cfg.Environment,
		"tenant":                         tenant.Identifier,
		"in_clause_parameter_size_limit": limit,
	})
	return serve(ctx, server, cfg.Server.ShutdownTimeout, appLogger)
}

// serve runs server until ctx is done, then shuts it down within timeout
func serve(ctx context.Context, server *http.Server, timeout time.Duration, appLogger coreport.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shut down: %w", err)
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

func tenantFromConfig(c config.COBConfig) entity.Tenant {
	tenant := entity.NewDefaultTenant()
	tenant.Identifier = c.TenantIdentifier
	if c.TenantTimezone != "" {
		tenant.TimezoneID = c.TenantTimezone
	}
	return tenant
}

// productionWarnings lists settings that are legal but risky in production
func productionWarnings(cfg *config.Config) []string {
	if cfg.Environment != config.Production {
		return nil
	}

	var warnings []string
	switch cfg.Database.Driver {
	case database.DriverPostgres:
		switch strings.ToLower(cfg.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca' or 'verify-full' in production")
		}
	case database.DriverSQLite:
		warnings = append(warnings, "database.driver sqlite is meant for development and tests")
	}

	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if cfg.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}
	return warnings
}
