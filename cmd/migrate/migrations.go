package main

import (
	"gorm.io/gorm"

	"github.com/client-portal/engine/internal/models"
)

// registerModels returns all models that need migration
func registerModels() []interface{} {
	return []interface{}{
		&models.Tenant{},
	}
}

// runMigrations executes all database migrations
func runMigrations(db *gorm.DB) error {
	// gen_random_uuid() must exist before the table default references it.
	if err := enableUUIDExtension(db); err != nil {
		return err
	}

	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}

	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addRunTimeIndex,
	}

	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}

	return nil
}

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

// addRunTimeIndex speeds up the scheduler's scan for tenants with a daily run.
func addRunTimeIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_projects_run_time
		ON projects(run_time)
		WHERE run_time IS NOT NULL AND run_time <> ''
	`).Error
}
