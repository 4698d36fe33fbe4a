package entry

import (
	"context"

	"github.com/google/uuid"
	"github.com/maag070208/AXZY-PARK-API/entity"
)

// AdmitRequest carries the data required to admit a vehicle.
// LocationID, when set, is an administrative manual assignment: the location
// only has to exist (zones may be shared by design, so no occupancy check).
// When nil, a free location is claimed automatically and exclusively.
type AdmitRequest struct {
	UserID     uuid.UUID
	OperatorID uuid.UUID
	Brand      string
	Model      string
	Color      string
	Plates     string
	Series     string
	Mileage    *int
	Notes      string
	TypeID     *uuid.UUID
	LocationID *uuid.UUID
}

// Service exposes entry lifecycle operations.
type Service interface {
	Admit(ctx context.Context, req AdmitRequest) (*entity.VehicleEntry, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*entity.VehicleEntry, error)
	ListActiveEntries(ctx context.Context) ([]entity.VehicleEntry, error)
	ListEntriesForUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.VehicleEntry, error)
	LastEntryForUser(ctx context.Context, userID uuid.UUID) (*entity.VehicleEntry, error)
	Cancel(ctx context.Context, id uuid.UUID) (*entity.VehicleEntry, error)
	Remove(ctx context.Context, id uuid.UUID) error
}
