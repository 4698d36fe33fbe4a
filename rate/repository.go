package rate

import (
	"context"

	"github.com/google/uuid"
	"github.com/maag070208/AXZY-PARK-API/entity"
)

// Repository specifies rate configuration database operations.
type Repository interface {
	GetVehicleTypeByID(ctx context.Context, id uuid.UUID) (*entity.VehicleType, error)
	ListVehicleTypes(ctx context.Context) ([]entity.VehicleType, error)
	StoreVehicleType(ctx context.Context, t *entity.VehicleType) (*entity.VehicleType, error)
	UpdateVehicleType(ctx context.Context, t *entity.VehicleType) (*entity.VehicleType, error)
	DeleteVehicleType(ctx context.Context, id uuid.UUID) error

	// GetSettings returns the singleton settings row, creating it with
	// defaults when absent.
	GetSettings(ctx context.Context) (*entity.ParkingSettings, error)
	SaveSettings(ctx context.Context, s *entity.ParkingSettings) (*entity.ParkingSettings, error)
}
