// Package db opens the application database and runs schema migration.
package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "pantry_backend/internal/feature/auth/domain/entity"
	inventity "pantry_backend/internal/feature/inventory/domain/entity"
	taxentity "pantry_backend/internal/feature/taxonomy/domain/entity"
	"pantry_backend/internal/platform/config"
)

// Open connects to PostgreSQL and migrates the schema.
// TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey regardless of driver; the signup and provisioning
// paths depend on that.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates every table the application owns.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&authentity.User{},
		&taxentity.Category{},
		&taxentity.Subcategory{},
		&taxentity.Tag{},
		&inventity.StorageArea{},
		&inventity.Location{},
		&inventity.Item{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
