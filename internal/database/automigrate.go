package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"scopelock-api/internal/domain"
)

// modelInfo holds information about a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

// AutoMigrate runs GORM auto-migration for all domain models
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Project{},
		&domain.Feature{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}

// SafeAutoMigrate runs GORM auto-migration safely by checking table existence first.
// Existing tables only get schema updates; missing tables are created from scratch.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	models := []modelInfo{
		{&domain.Project{}, "projects"},
		{&domain.Feature{}, "features"},
	}

	logger.Info("Starting safe auto-migration",
		zap.Int("total_models", len(models)),
	)

	for _, m := range models {
		tableExists := migrator.HasTable(m.model)

		if tableExists {
			logger.Info("Table exists, updating schema only",
				zap.String("table", m.tableName),
			)
		} else {
			logger.Info("Table does not exist, creating new table",
				zap.String("table", m.tableName),
			)
		}

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}
	}

	logger.Info("Safe auto-migration completed successfully",
		zap.Int("tables_migrated", len(models)),
	)

	return nil
}

// SafeAutoMigrateWithRetry runs SafeAutoMigrate with retry logic and linear backoff
func SafeAutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = SafeAutoMigrate(db, logger)
		if err == nil {
			return nil
		}

		if attempt < maxRetries {
			backoffDuration := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying...",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", backoffDuration),
				zap.Error(err),
			)
			time.Sleep(backoffDuration)
		}
	}

	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
