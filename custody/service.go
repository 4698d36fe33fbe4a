package custody

import (
	"context"

	"github.com/google/uuid"
	"github.com/maag070208/AXZY-PARK-API/entity"
)

// OpenAssignmentRequest carries the data to open key custody on an entry.
// TargetLocationID is required for movement assignments and must be absent
// for delivery assignments.
type OpenAssignmentRequest struct {
	EntryID          uuid.UUID
	OperatorID       uuid.UUID
	Kind             entity.AssignmentKind
	TargetLocationID *uuid.UUID
}

// Service is the custody ledger: it mediates every key assignment and is the
// sole writer of location transfers. Per entry the state machine is
// no-active-assignment <-> assignment-active(kind); completing a movement
// transfers the vehicle, completing a delivery closes the lifecycle through
// the exits engine.
type Service interface {
	OpenAssignment(ctx context.Context, req OpenAssignmentRequest) (*entity.KeyAssignment, error)
	CompleteAssignment(ctx context.Context, id uuid.UUID) (*entity.KeyAssignment, error)

	GetAssignment(ctx context.Context, id uuid.UUID) (*entity.KeyAssignment, error)
	ActiveAssignmentForEntry(ctx context.Context, entryID uuid.UUID) (*entity.KeyAssignment, error)
	ListAssignments(ctx context.Context) ([]entity.KeyAssignment, error)
	MovementsForEntry(ctx context.Context, entryID uuid.UUID) ([]entity.VehicleMovement, error)
}
