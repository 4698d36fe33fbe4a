package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/maag070208/AXZY-PARK-API/entity"
)

// Repository specifies location registry database operations.
type Repository interface {
	StoreLocation(ctx context.Context, l *entity.Location) (*entity.Location, error)
	GetLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	ListLocations(ctx context.Context) ([]entity.Location, error)
	CountOccupied(ctx context.Context) (int64, error)

	// AcquireAvailable atomically claims any free location (row-lock claim,
	// never read-then-write): two concurrent callers can never receive the
	// same spot. Returns apperr.ErrNoCapacity when no location is free.
	AcquireAvailable(ctx context.Context) (*entity.Location, error)

	// Release frees a location. Idempotent: releasing an already-free
	// location is a no-op, not an error.
	Release(ctx context.Context, id uuid.UUID) error

	// Occupy marks a location occupied. Returns apperr.ErrConflict when it
	// is already occupied. Defensive: the custody ledger's transitions are
	// expected to keep this from ever firing.
	Occupy(ctx context.Context, id uuid.UUID) error
}
