package infra

import (
	"fmt"

	"shopstock/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables. TranslateError turns driver-level unique
// violations into gorm.ErrDuplicatedKey so services can classify them.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations applies the schema. Also used by integration tests against
// throwaway containers.
func RunMigrations(db *gorm.DB) error {
	// gen_random_uuid() needs pgcrypto on Postgres < 13; harmless elsewhere.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.Product{},
		&model.Sale{},
		&model.Category{},
		&model.User{},
	)
}
