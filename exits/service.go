package exits

import (
	"context"

	"github.com/google/uuid"
	"github.com/maag070208/AXZY-PARK-API/entity"
)

// CloseRequest carries the data to close a vehicle lifecycle.
// CompleteAssignmentID is set when the close is the terminal step of a
// delivery custody completion, so the assignment flip joins the same
// transaction; the direct exit action leaves it nil.
type CloseRequest struct {
	EntryID              uuid.UUID
	OperatorID           uuid.UUID
	Notes                string
	CompleteAssignmentID *uuid.UUID
}

// Service is the exit/billing engine. The final cost is resolved from the
// entry's vehicle type (facility fallback otherwise) at close time and is
// immutable once stored.
type Service interface {
	Close(ctx context.Context, req CloseRequest) (*entity.VehicleExit, error)
	ExitForEntry(ctx context.Context, entryID uuid.UUID) (*entity.VehicleExit, error)
	ListExits(ctx context.Context) ([]entity.VehicleExit, error)
}
