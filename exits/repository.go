package exits

import (
	"context"

	"github.com/google/uuid"
	"github.com/maag070208/AXZY-PARK-API/entity"
)

// Repository defines DB operations for vehicle exits.
type Repository interface {
	// CloseLifecycle commits the terminal transition as one transaction:
	// exit row created with its immutable cost, entry marked exited, current
	// location released, and — when the close was triggered by a delivery
	// completion — that assignment marked completed. A non-closable entry
	// state rolls the whole thing back.
	CloseLifecycle(ctx context.Context, x *entity.VehicleExit, completeAssignmentID *uuid.UUID) (*entity.VehicleExit, error)

	GetExitForEntry(ctx context.Context, entryID uuid.UUID) (*entity.VehicleExit, error)
	ListExits(ctx context.Context) ([]entity.VehicleExit, error)
}
