package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	"github.com/maag070208/AXZY-PARK-API/entity"
	ratepkg "github.com/maag070208/AXZY-PARK-API/rate"
)

// rateService implements rate.Service.
type rateService struct {
	repo ratepkg.Repository
}

// NewRateService constructs a Service backed by the provided repository.
func NewRateService(repo ratepkg.Repository) ratepkg.Service {
	return &rateService{repo: repo}
}

func (s *rateService) DailyRate(ctx context.Context, typeID *uuid.UUID) (int64, error) {
	if typeID != nil {
		t, err := s.repo.GetVehicleTypeByID(ctx, *typeID)
		switch {
		case err == nil && t.Active:
			return t.DailyRateCents, nil
		case err == nil:
			// deactivated types stop rating new exits, same as deleted ones
		case !errors.Is(err, apperr.ErrNotFound):
			return 0, err
		}
		// A deleted or deactivated type falls back to the facility rate
		// instead of blocking the exit.
	}
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return 0, err
	}
	return settings.DayCostCents, nil
}

func (s *rateService) ListVehicleTypes(ctx context.Context) ([]entity.VehicleType, error) {
	return s.repo.ListVehicleTypes(ctx)
}

func (s *rateService) CreateVehicleType(ctx context.Context, req ratepkg.CreateVehicleTypeRequest) (*entity.VehicleType, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("vehicle type name required: %w", apperr.ErrInvalidArgument)
	}
	if req.DailyRateCents <= 0 {
		return nil, fmt.Errorf("daily rate must be positive: %w", apperr.ErrInvalidArgument)
	}
	t := &entity.VehicleType{
		Name:           name,
		DailyRateCents: req.DailyRateCents,
		Active:         true,
	}
	return s.repo.StoreVehicleType(ctx, t)
}

func (s *rateService) UpdateVehicleType(ctx context.Context, id uuid.UUID, req ratepkg.UpdateVehicleTypeRequest) (*entity.VehicleType, error) {
	t, err := s.repo.GetVehicleTypeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("vehicle type name required: %w", apperr.ErrInvalidArgument)
		}
		t.Name = name
	}
	if req.DailyRateCents != nil {
		if *req.DailyRateCents <= 0 {
			return nil, fmt.Errorf("daily rate must be positive: %w", apperr.ErrInvalidArgument)
		}
		t.DailyRateCents = *req.DailyRateCents
	}
	if req.Active != nil {
		t.Active = *req.Active
	}
	return s.repo.UpdateVehicleType(ctx, t)
}

func (s *rateService) DeleteVehicleType(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteVehicleType(ctx, id)
}

func (s *rateService) GetSettings(ctx context.Context) (*entity.ParkingSettings, error) {
	return s.repo.GetSettings(ctx)
}

// UpdateSettings merges the patch over the current row: a new value wins only
// when present. Changed rates affect subsequent computations only.
func (s *rateService) UpdateSettings(ctx context.Context, patch entity.SettingsPatch) (*entity.ParkingSettings, error) {
	if patch.MaxCapacity != nil && *patch.MaxCapacity <= 0 {
		return nil, fmt.Errorf("max capacity must be positive: %w", apperr.ErrInvalidArgument)
	}
	if patch.DayCostCents != nil && *patch.DayCostCents <= 0 {
		return nil, fmt.Errorf("day cost must be positive: %w", apperr.ErrInvalidArgument)
	}
	current, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	merged := patch.Merge(*current)
	return s.repo.SaveSettings(ctx, &merged)
}
