package custody

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maag070208/AXZY-PARK-API/entity"
)

// Repository defines DB operations for key assignments and movement history.
type Repository interface {
	// OpenAssignment inserts an active assignment. The at-most-one-active
	// invariant is enforced by the partial unique index on
	// (entry_id) WHERE status = 'active': under a race only one insert
	// commits, the loser gets apperr.ErrConflict.
	OpenAssignment(ctx context.Context, a *entity.KeyAssignment) (*entity.KeyAssignment, error)

	GetAssignmentByID(ctx context.Context, id uuid.UUID) (*entity.KeyAssignment, error)

	// ActiveAssignmentForEntry returns the entry's active assignment, or
	// nil when it has none.
	ActiveAssignmentForEntry(ctx context.Context, entryID uuid.UUID) (*entity.KeyAssignment, error)

	// CompleteMovement applies the whole movement transition as one
	// transaction: assignment completed, entry repointed and marked moved,
	// old location released, target occupied, one movement record appended.
	// Either all of it commits or none of it does.
	CompleteMovement(ctx context.Context, assignmentID uuid.UUID) (*entity.KeyAssignment, error)

	ListAssignments(ctx context.Context) ([]entity.KeyAssignment, error)
	ListMovementsForEntry(ctx context.Context, entryID uuid.UUID) ([]entity.VehicleMovement, error)

	// ListStaleActive returns assignments still active since before cutoff,
	// for the monitor sweep.
	ListStaleActive(ctx context.Context, cutoff time.Time) ([]entity.KeyAssignment, error)
}
