package main

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/maag070208/AXZY-PARK-API/entity"
)

func setupDatabase(cfg config, logger *zap.Logger) *gorm.DB {
	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the repositories map to apperr.ErrConflict.
	db, err := gorm.Open(postgres.Open(cfg.dsn()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	// Ensure required extensions for UUID are present
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		logger.Warn("failed to ensure uuid-ossp extension", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Location{},
		&entity.VehicleType{},
		&entity.ParkingSettings{},
		&entity.VehicleEntry{},
		&entity.KeyAssignment{},
		&entity.VehicleMovement{},
		&entity.VehicleExit{},
	); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// At most one active assignment per entry. The index, not application
	// code, decides concurrent open attempts; AutoMigrate cannot express a
	// partial index.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_key_assignments_one_active
		 ON key_assignments (entry_id) WHERE status = 'active' AND deleted_at IS NULL`,
	).Error; err != nil {
		logger.Fatal("failed to create active-assignment index", zap.Error(err))
	}

	return db
}
