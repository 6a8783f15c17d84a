package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/vaultsvc/internal/infrastructure/repositories"
)

// Open creates a new database connection
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for all required tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}, &repositories.DBAccount{}, &repositories.DBItem{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
