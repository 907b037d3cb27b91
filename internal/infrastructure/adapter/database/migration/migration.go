package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/model"
)

// CurrentSchemaVersion is the schema version this build migrates to
const CurrentSchemaVersion = "1.1.0"

// upgrade moves a schema recorded at one version towards CurrentSchemaVersion.
// It runs before auto-migration so it sees the old layout.
type upgrade func(ctx context.Context, db *gorm.DB, log coreport.Logger) error

// upgrades are keyed by the version they start from
var upgrades = map[string]upgrade{
	"1.0.0": addCOBBusinessDateToLocks,
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

// Migrator brings the lock schema to CurrentSchemaVersion
type Migrator struct {
	db    *gorm.DB
	log   coreport.Logger
	clock coreport.TimeProvider
}

// NewMigrator creates a migrator for db
func NewMigrator(db *gorm.DB, log coreport.Logger, clock coreport.TimeProvider) *Migrator {
	return &Migrator{db: db, log: log, clock: clock}
}

// Run applies every pending step and records the new version. Running it on an
// up-to-date schema is a no-op.
func (m *Migrator) Run(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(&model.SchemaVersion{}); err != nil {
		return fmt.Errorf("create %s: %w", model.SchemaVersionTable, err)
	}

	from, err := m.Version(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if from == CurrentSchemaVersion {
		m.log.Info("Schema is up to date", map[string]any{"version": from})
		return nil
	}

	m.log.Info("Migrating schema", map[string]any{"from": from, "to": CurrentSchemaVersion})

	steps := []step{
		{"upgrade", func(ctx context.Context) error { return m.upgrade(ctx, from) }},
		{"auto-migrate", m.autoMigrate},
		{"indexes", m.createIndexes},
		{"record version", m.recordVersion},
	}
	for _, s := range steps {
		if err := s.run(ctx); err != nil {
			m.log.Error("Schema migration step failed", map[string]any{
				"step":  s.name,
				"from":  from,
				"error": err.Error(),
			})
			return fmt.Errorf("migration step %q: %w", s.name, err)
		}
	}

	m.log.Info("Schema migrated", map[string]any{"version": CurrentSchemaVersion})
	return nil
}

// Version returns the most recently recorded schema version, or "" for a fresh database
func (m *Migrator) Version(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var latest model.SchemaVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&latest).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", nil
	case err != nil:
		return "", err
	}
	return latest.Version, nil
}

func (m *Migrator) upgrade(ctx context.Context, from string) error {
	if from == "" {
		return nil
	}
	up, ok := upgrades[from]
	if !ok {
		m.log.Warn("No upgrade registered for schema version", map[string]any{"from": from})
		return nil
	}
	return up(ctx, m.db.WithContext(ctx), m.log)
}

func (m *Migrator) autoMigrate(ctx context.Context) error {
	return m.db.WithContext(ctx).AutoMigrate(&model.LoanAccountLock{})
}

func (m *Migrator) recordVersion(ctx context.Context) error {
	return m.db.WithContext(ctx).Create(&model.SchemaVersion{
		Version:   CurrentSchemaVersion,
		AppliedAt: m.clock.Now(),
		Details:   "loan account lock schema",
	}).Error
}
