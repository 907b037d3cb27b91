package database

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/database/migration"
)

// Manager owns the lock store connection pool and its schema
type Manager struct {
	config       *Config
	log          coreport.Logger
	clock        coreport.TimeProvider
	poolObserver PoolStatsObserver

	db       *gorm.DB
	migrator *migration.Migrator
	pool     *poolWatcher
}

// NewManager creates an unconnected manager. poolObserver may be nil.
func NewManager(config *Config, log coreport.Logger, clock coreport.TimeProvider, poolObserver PoolStatsObserver) *Manager {
	return &Manager{
		config:       config,
		log:          log,
		clock:        clock,
		poolObserver: poolObserver,
	}
}

// Connect opens and pings the pool, retrying transient failures, then starts pool sampling
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	target := map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	}
	m.log.Info("Connecting to database", target)

	dialector, err := m.dialector()
	if err != nil {
		return nil, err
	}

	policy := defaultConnectRetry()
	policy.Attempts = m.config.RetryAttempts
	if m.config.RetryDelay > 0 {
		policy.Initial = m.config.RetryDelay
	}

	var db *gorm.DB
	err = policy.do(ctx, m.log, func() error {
		var openErr error
		db, openErr = m.open(ctx, dialector)
		return openErr
	})
	if err != nil {
		m.log.Error("Failed to connect to database", map[string]any{
			"error":    err.Error(),
			"attempts": max(policy.Attempts, 1),
		})
		return nil, fmt.Errorf("%w: %s", toDomainError(err, "connect"), err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	target["max_open_conns"] = m.config.MaxOpenConns
	target["max_idle_conns"] = m.config.MaxIdleConns
	target["query_timeout_s"] = m.config.QueryTimeout.Seconds()
	m.log.Info("Connected to database", target)

	m.db = db
	m.migrator = migration.NewMigrator(db, m.log, m.clock)
	m.pool = newPoolWatcher(sqlDB, m.log, m.poolObserver)
	m.pool.start(poolSampleInterval)

	return db, nil
}

// open makes one connection attempt; the pool is closed again if the ping fails
func (m *Manager) open(ctx context.Context, dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      NewSQLLogger(m.log, m.clock, m.config.LogLevel),
		NowFunc:     m.clock.Now,
		PrepareStmt: m.config.Driver == DriverPostgres,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func (m *Manager) dialector() (gorm.Dialector, error) {
	switch m.config.Driver {
	case DriverPostgres:
		return postgres.Open(m.config.DSN()), nil
	case DriverSQLite:
		return sqlite.Open(m.config.DSN()), nil
	}
	return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
}

// DB returns the pool, nil before Connect
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	if m.migrator == nil {
		return ErrNotConnected
	}
	return m.migrator.Run(ctx)
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return ErrNotConnected
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Close stops pool sampling and closes the pool. Closing an unconnected manager is a no-op.
func (m *Manager) Close() error {
	if m.pool != nil {
		m.pool.stop()
	}
	if m.db == nil {
		return nil
	}

	m.log.Info("Closing database connection", nil)
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// PoolStats returns the latest connection pool sample, zero before Connect
func (m *Manager) PoolStats() sql.DBStats {
	if m.pool == nil {
		return sql.DBStats{}
	}
	return m.pool.stats()
}

// Migrator returns the schema migrator, nil before Connect
func (m *Manager) Migrator() *migration.Migrator {
	return m.migrator
}
