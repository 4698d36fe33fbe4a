package entry

import (
	"context"

	"github.com/google/uuid"
	"github.com/maag070208/AXZY-PARK-API/entity"
)

// Repository defines DB operations for vehicle entries.
type Repository interface {
	// AdmitEntry performs the whole admission as one transaction: claim a
	// free location when claimLocation is set (otherwise validate the
	// pre-filled LocationID exists), insert the entry with a provisional
	// ticket code, rewrite the code from the location name and the now-known
	// id, and append the opening completed movement assignment.
	AdmitEntry(ctx context.Context, e *entity.VehicleEntry, claimLocation bool) (*entity.VehicleEntry, error)

	GetEntryByID(ctx context.Context, id uuid.UUID) (*entity.VehicleEntry, error)

	// ListActiveEntries returns entries still in the facility (not exited,
	// not cancelled, not soft-deleted), newest first.
	ListActiveEntries(ctx context.Context) ([]entity.VehicleEntry, error)
	ListEntriesForUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.VehicleEntry, error)
	LastEntryForUser(ctx context.Context, userID uuid.UUID) (*entity.VehicleEntry, error)
	CountActiveEntries(ctx context.Context) (int64, error)

	// CancelEntry closes an active or moved entry without billing and frees
	// its location, atomically.
	CancelEntry(ctx context.Context, id uuid.UUID) (*entity.VehicleEntry, error)

	// SoftDeleteEntry hides the entry from listings; the row survives for
	// audit history. Only terminal (exited/cancelled) entries may be
	// deleted — anything still parked returns apperr.ErrInvalidState.
	SoftDeleteEntry(ctx context.Context, id uuid.UUID) error
}
