package migration

import (
	"context"
	"fmt"
)

const dialectPostgres = "postgres"

// ddl is one schema statement run after auto-migration
type ddl struct {
	name string
	sql  string
	// dialect limits the statement to one GORM dialect; empty means all
	dialect string
	// optional statements only log on failure
	optional bool
}

var lockTableDDL = []ddl{
	{
		name: "uk_loan_account_locks_loan_owner",
		sql:  "CREATE UNIQUE INDEX IF NOT EXISTS uk_loan_account_locks_loan_owner ON m_loan_account_locks (loan_id, lock_owner)",
	},
	{
		name: "idx_loan_account_locks_owner",
		sql:  "CREATE INDEX IF NOT EXISTS idx_loan_account_locks_owner ON m_loan_account_locks (lock_owner)",
	},
	{
		name:    "idx_loan_account_locks_chunk_processing",
		sql:     "CREATE INDEX IF NOT EXISTS idx_loan_account_locks_chunk_processing ON m_loan_account_locks (loan_id) WHERE lock_owner = 'LOAN_COB_CHUNK_PROCESSING'",
		dialect: dialectPostgres,
	},
	{
		// rows arrive in business date order
		name:    "idx_loan_account_locks_cob_date_brin",
		sql:     "CREATE INDEX IF NOT EXISTS idx_loan_account_locks_cob_date_brin ON m_loan_account_locks USING BRIN (lock_placed_on_cob_business_date) WITH (pages_per_range = 32)",
		dialect: dialectPostgres,
	},
	{
		name:     "fillfactor",
		sql:      "ALTER TABLE m_loan_account_locks SET (fillfactor = 100)",
		dialect:  dialectPostgres,
		optional: true,
	},
	{
		name:     "loan_id statistics",
		sql:      "ALTER TABLE m_loan_account_locks ALTER COLUMN loan_id SET STATISTICS 1000",
		dialect:  dialectPostgres,
		optional: true,
	},
}

// applicableDDL filters lockTableDDL down to the statements dialect supports
func applicableDDL(dialect string) []ddl {
	var out []ddl
	for _, d := range lockTableDDL {
		if d.dialect == "" || d.dialect == dialect {
			out = append(out, d)
		}
	}
	return out
}

func (m *Migrator) createIndexes(ctx context.Context) error {
	db := m.db.WithContext(ctx)
	dialect := db.Dialector.Name()

	for _, d := range applicableDDL(dialect) {
		err := db.Exec(d.sql).Error
		if err == nil {
			continue
		}
		if d.optional {
			m.log.Warn("Optional schema statement failed", map[string]any{
				"statement": d.name,
				"dialect":   dialect,
				"error":     err.Error(),
			})
			continue
		}
		return fmt.Errorf("%s: %w", d.name, err)
	}
	return nil
}
