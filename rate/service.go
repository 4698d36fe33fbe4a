package rate

import (
	"context"

	"github.com/google/uuid"
	"github.com/maag070208/AXZY-PARK-API/entity"
)

// CreateVehicleTypeRequest carries the data for a new rated vehicle type.
type CreateVehicleTypeRequest struct {
	Name           string
	DailyRateCents int64
}

// UpdateVehicleTypeRequest is a partial vehicle type update; nil fields are
// left untouched.
type UpdateVehicleTypeRequest struct {
	Name           *string
	DailyRateCents *int64
	Active         *bool
}

// Service resolves daily parking rates and manages rate configuration.
// Resolution is a pure read of current configuration; a closed exit keeps the
// cost it was charged no matter how configuration changes afterwards.
type Service interface {
	// DailyRate returns the type-specific daily rate when typeID is set and
	// the type exists and is active, else the facility-wide fallback from
	// settings. Deactivated and deleted types rate like no type at all.
	DailyRate(ctx context.Context, typeID *uuid.UUID) (int64, error)

	ListVehicleTypes(ctx context.Context) ([]entity.VehicleType, error)
	CreateVehicleType(ctx context.Context, req CreateVehicleTypeRequest) (*entity.VehicleType, error)
	UpdateVehicleType(ctx context.Context, id uuid.UUID, req UpdateVehicleTypeRequest) (*entity.VehicleType, error)
	DeleteVehicleType(ctx context.Context, id uuid.UUID) error

	GetSettings(ctx context.Context) (*entity.ParkingSettings, error)
	UpdateSettings(ctx context.Context, patch entity.SettingsPatch) (*entity.ParkingSettings, error)
}
