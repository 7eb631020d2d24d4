package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate,
// and applies the DDL GORM cannot express itself.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
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

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.AddOn{},
		&model.AcaiAddOn{},
		&model.Cart{},
		&model.Sale{},
		&model.CashRegister{},
		&model.CashMovement{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	// Partial unique index backing the at-most-one-open-register invariant.
	// The service checks first; this closes the door on any writer that
	// bypasses it.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uni_cash_registers_open
		     ON cash_registers (is_open) WHERE is_open`,
	).Error; err != nil {
		return nil, fmt.Errorf("open-register index: %w", err)
	}

	return db, nil
}
