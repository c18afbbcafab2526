package database

import (
	"warga-registry-svc/internal/config"
	"warga-registry-svc/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database wraps the GORM connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a PostgreSQL connection from the given configuration.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return &Database{DB: db}, nil
}

// AutoMigrate runs schema migrations for all registered models
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		&models.Warga{},
	)
}

// Close closes the underlying database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
