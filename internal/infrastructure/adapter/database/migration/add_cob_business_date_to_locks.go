package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/model"
)

const cobBusinessDateColumn = "lock_placed_on_cob_business_date"

// addCOBBusinessDateToLocks adds the business date column to lock tables from 1.0.0.
// Existing rows take the date part of lock_placed_on.
func addCOBBusinessDateToLocks(_ context.Context, db *gorm.DB, log coreport.Logger) error {
	schema := db.Migrator()
	if !schema.HasTable(&model.LoanAccountLock{}) || schema.HasColumn(&model.LoanAccountLock{}, cobBusinessDateColumn) {
		return nil
	}

	log.Info("Adding business date column to loan account locks", map[string]any{
		"table":  model.LoanAccountLockTable,
		"column": cobBusinessDateColumn,
	})

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("ALTER TABLE m_loan_account_locks ADD COLUMN " + cobBusinessDateColumn + " DATE").Error; err != nil {
			return err
		}
		return tx.Exec("UPDATE m_loan_account_locks SET " + cobBusinessDateColumn + " = DATE(lock_placed_on) WHERE " + cobBusinessDateColumn + " IS NULL").Error
	})
}
