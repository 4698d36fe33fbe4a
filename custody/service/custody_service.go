package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	custodypkg "github.com/maag070208/AXZY-PARK-API/custody"
	"github.com/maag070208/AXZY-PARK-API/entity"
	entrypkg "github.com/maag070208/AXZY-PARK-API/entry"
	exitspkg "github.com/maag070208/AXZY-PARK-API/exits"
	"github.com/maag070208/AXZY-PARK-API/realtime"
)

// custodyService implements custody.Service.
type custodyService struct {
	repo    custodypkg.Repository
	entries entrypkg.Repository
	exits   exitspkg.Service
	hub     *realtime.Hub
}

// NewCustodyService constructs the custody ledger. The exits service handles
// the terminal step of delivery completions.
func NewCustodyService(repo custodypkg.Repository, entries entrypkg.Repository, exits exitspkg.Service, hub *realtime.Hub) custodypkg.Service {
	return &custodyService{repo: repo, entries: entries, exits: exits, hub: hub}
}

func (s *custodyService) OpenAssignment(ctx context.Context, req custodypkg.OpenAssignmentRequest) (*entity.KeyAssignment, error) {
	if req.OperatorID == uuid.Nil {
		return nil, fmt.Errorf("operator required: %w", apperr.ErrInvalidArgument)
	}
	switch req.Kind {
	case entity.AssignmentMovement:
		if req.TargetLocationID == nil {
			return nil, fmt.Errorf("target location required for movement: %w", apperr.ErrInvalidArgument)
		}
	case entity.AssignmentDelivery:
		if req.TargetLocationID != nil {
			return nil, fmt.Errorf("delivery takes no target location: %w", apperr.ErrInvalidArgument)
		}
	default:
		return nil, fmt.Errorf("unknown assignment kind %q: %w", req.Kind, apperr.ErrInvalidArgument)
	}

	e, err := s.entries.GetEntryByID(ctx, req.EntryID)
	if err != nil {
		return nil, err
	}
	if e.Status.Terminal() {
		return nil, fmt.Errorf("entry %s is %s: %w", e.ID, e.Status, apperr.ErrInvalidState)
	}

	a := &entity.KeyAssignment{
		EntryID:          req.EntryID,
		OperatorID:       req.OperatorID,
		Kind:             req.Kind,
		Status:           entity.AssignmentActive,
		TargetLocationID: req.TargetLocationID,
		StartedAt:        time.Now(),
	}
	// The insert, not a prior read, decides races: the partial unique index
	// lets only one active assignment per entry commit.
	created, err := s.repo.OpenAssignment(ctx, a)
	if err != nil {
		return nil, err
	}
	if s.hub != nil {
		s.hub.Broadcast("assignment.opened", realtime.AssignmentPayload{
			AssignmentID: created.ID.String(),
			EntryID:      created.EntryID.String(),
			Kind:         string(created.Kind),
		})
	}
	return created, nil
}

func (s *custodyService) CompleteAssignment(ctx context.Context, id uuid.UUID) (*entity.KeyAssignment, error) {
	a, err := s.repo.GetAssignmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != entity.AssignmentActive {
		return nil, fmt.Errorf("assignment %s is %s: %w", a.ID, a.Status, apperr.ErrInvalidState)
	}

	switch a.Kind {
	case entity.AssignmentDelivery:
		// Delegate the terminal step; the exits engine completes this
		// assignment inside its own closing transaction.
		_, err := s.exits.Close(ctx, exitspkg.CloseRequest{
			EntryID:              a.EntryID,
			OperatorID:           a.OperatorID,
			Notes:                "automatic exit on key delivery",
			CompleteAssignmentID: &a.ID,
		})
		if err != nil {
			return nil, err
		}
		return s.repo.GetAssignmentByID(ctx, a.ID)

	case entity.AssignmentMovement:
		// Entry is nil when the row vanished (soft delete) between open and
		// completion; the assignment is an orphan, not a panic.
		if a.Entry == nil {
			return nil, fmt.Errorf("entry %s for assignment %s: %w", a.EntryID, a.ID, apperr.ErrNotFound)
		}
		from := a.Entry.LocationID
		completed, err := s.repo.CompleteMovement(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		if s.hub != nil && completed.TargetLocationID != nil {
			s.hub.Broadcast("vehicle.moved", realtime.MovementPayload{
				EntryID:        completed.EntryID.String(),
				FromLocationID: from.String(),
				ToLocationID:   completed.TargetLocationID.String(),
			})
		}
		return completed, nil

	default:
		return nil, fmt.Errorf("unknown assignment kind %q: %w", a.Kind, apperr.ErrInvalidState)
	}
}

func (s *custodyService) GetAssignment(ctx context.Context, id uuid.UUID) (*entity.KeyAssignment, error) {
	return s.repo.GetAssignmentByID(ctx, id)
}

func (s *custodyService) ActiveAssignmentForEntry(ctx context.Context, entryID uuid.UUID) (*entity.KeyAssignment, error) {
	return s.repo.ActiveAssignmentForEntry(ctx, entryID)
}

func (s *custodyService) ListAssignments(ctx context.Context) ([]entity.KeyAssignment, error) {
	return s.repo.ListAssignments(ctx)
}

func (s *custodyService) MovementsForEntry(ctx context.Context, entryID uuid.UUID) ([]entity.VehicleMovement, error) {
	return s.repo.ListMovementsForEntry(ctx, entryID)
}
