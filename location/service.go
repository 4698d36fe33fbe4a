package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/maag070208/AXZY-PARK-API/entity"
)

// CreateLocationRequest carries the data required to register a parking spot.
type CreateLocationRequest struct {
	Name  string
	Aisle string
	Spot  string
}

// Service exposes location registry operations.
//
// Exclusivity rule: automatic assignment (AcquireAvailable) is exclusive and
// maintains the occupancy flag; administrative manual assignment (an explicit
// location on admission) treats the spot as a shared zone and performs no
// occupancy check.
type Service interface {
	CreateLocation(ctx context.Context, req CreateLocationRequest) (*entity.Location, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	ListLocations(ctx context.Context) ([]entity.Location, error)
	AcquireAvailable(ctx context.Context) (*entity.Location, error)
	Release(ctx context.Context, id uuid.UUID) error
	Occupy(ctx context.Context, id uuid.UUID) error
}
