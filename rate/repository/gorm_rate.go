package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	"github.com/maag070208/AXZY-PARK-API/entity"
	ratepkg "github.com/maag070208/AXZY-PARK-API/rate"
)

type GormRateRepo struct{ db *gorm.DB }

func NewGormRateRepo(db *gorm.DB) ratepkg.Repository { return &GormRateRepo{db: db} }

func (r *GormRateRepo) GetVehicleTypeByID(ctx context.Context, id uuid.UUID) (*entity.VehicleType, error) {
	var t entity.VehicleType
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle type %s: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &t, nil
}

func (r *GormRateRepo) ListVehicleTypes(ctx context.Context) ([]entity.VehicleType, error) {
	var types []entity.VehicleType
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("daily_rate_cents ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *GormRateRepo) StoreVehicleType(ctx context.Context, t *entity.VehicleType) (*entity.VehicleType, error) {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("vehicle type %q: %w", t.Name, apperr.ErrConflict)
		}
		return nil, err
	}
	return t, nil
}

func (r *GormRateRepo) UpdateVehicleType(ctx context.Context, t *entity.VehicleType) (*entity.VehicleType, error) {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *GormRateRepo) DeleteVehicleType(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&entity.VehicleType{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vehicle type %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormRateRepo) GetSettings(ctx context.Context) (*entity.ParkingSettings, error) {
	var s entity.ParkingSettings
	err := r.db.WithContext(ctx).First(&s, "id = ?", entity.SettingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = entity.ParkingSettings{ID: entity.SettingsRowID, MaxCapacity: 100, DayCostCents: 6000}
		if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormRateRepo) SaveSettings(ctx context.Context, s *entity.ParkingSettings) (*entity.ParkingSettings, error) {
	s.ID = entity.SettingsRowID
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}
