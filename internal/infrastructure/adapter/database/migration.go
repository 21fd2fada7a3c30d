package database

import (
	coreport "wallet/internal/domain/port/core"
	"wallet/internal/infrastructure/adapter/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all ledger tables
func Migrate(db *gorm.DB, logger coreport.Logger) error {
	logger.Info("Running database migrations", nil)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.Product{},
		&model.Purchase{},
	); err != nil {
		logger.Error("Database migration failed", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Database migrations completed", nil)
	return nil
}
