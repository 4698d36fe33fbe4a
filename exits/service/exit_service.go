package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	"github.com/maag070208/AXZY-PARK-API/entity"
	entrypkg "github.com/maag070208/AXZY-PARK-API/entry"
	exitspkg "github.com/maag070208/AXZY-PARK-API/exits"
	ratepkg "github.com/maag070208/AXZY-PARK-API/rate"
	"github.com/maag070208/AXZY-PARK-API/realtime"
)

// exitService implements exits.Service.
type exitService struct {
	repo    exitspkg.Repository
	entries entrypkg.Repository
	rates   ratepkg.Service
	hub     *realtime.Hub
}

// NewExitService constructs the exit/billing engine.
func NewExitService(repo exitspkg.Repository, entries entrypkg.Repository, rates ratepkg.Service, hub *realtime.Hub) exitspkg.Service {
	return &exitService{repo: repo, entries: entries, rates: rates, hub: hub}
}

// Close resolves the rate, computes the cost and commits the terminal
// transition. The rate read happens here, at close time: stored exits keep
// the cost they were charged no matter how configuration changes later.
func (s *exitService) Close(ctx context.Context, req exitspkg.CloseRequest) (*entity.VehicleExit, error) {
	if req.OperatorID == uuid.Nil {
		return nil, fmt.Errorf("operator required: %w", apperr.ErrInvalidArgument)
	}
	e, err := s.entries.GetEntryByID(ctx, req.EntryID)
	if err != nil {
		return nil, err
	}
	if e.Status.Terminal() {
		return nil, fmt.Errorf("entry %s is %s: %w", e.ID, e.Status, apperr.ErrInvalidState)
	}

	dailyRate, err := s.rates.DailyRate(ctx, e.TypeID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	x := &entity.VehicleExit{
		EntryID:        e.ID,
		OperatorID:     req.OperatorID,
		FinalCostCents: ratepkg.ComputeCostCents(e.EnteredAt, now, dailyRate),
		Notes:          strings.TrimSpace(req.Notes),
		ExitedAt:       now,
	}

	created, err := s.repo.CloseLifecycle(ctx, x, req.CompleteAssignmentID)
	if err != nil {
		return nil, err
	}
	if s.hub != nil {
		s.hub.Broadcast("vehicle.exited", realtime.ExitPayload{
			EntryID:        created.EntryID.String(),
			FinalCostCents: created.FinalCostCents,
		})
	}
	return created, nil
}

func (s *exitService) ExitForEntry(ctx context.Context, entryID uuid.UUID) (*entity.VehicleExit, error) {
	return s.repo.GetExitForEntry(ctx, entryID)
}

func (s *exitService) ListExits(ctx context.Context) ([]entity.VehicleExit, error) {
	return s.repo.ListExits(ctx)
}
