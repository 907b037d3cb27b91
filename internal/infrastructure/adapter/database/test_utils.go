package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/clock"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/database/migration"
)

// NewTestSQLiteConfig returns a configuration for a private in-memory SQLite database
func NewTestSQLiteConfig() *Config {
	return &Config{
		Driver:          DriverSQLite,
		Database:        fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Hour,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
	}
}

// NewTestDB opens a private in-memory SQLite database migrated to the current schema.
// The database is closed when the test ends.
func NewTestDB(t testing.TB, logger coreport.Logger) *gorm.DB {
	t.Helper()

	config := NewTestSQLiteConfig()
	db, err := gorm.Open(sqlite.Open(config.DSN()), &gorm.Config{
		Logger: NewSQLLogger(logger, nil, config.LogLevel),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get test database connection: %v", err)
	}
	// A single connection keeps the in-memory database alive and serialises transactions
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	migrator := migration.NewMigrator(db, logger, clock.NewSystem())
	if err := migrator.Run(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}
