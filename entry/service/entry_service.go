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
)

// entryService implements entry.Service.
type entryService struct {
	repo entrypkg.Repository
}

// NewEntryService constructs a Service backed by the provided repository.
func NewEntryService(repo entrypkg.Repository) entrypkg.Service {
	return &entryService{repo: repo}
}

func (s *entryService) Admit(ctx context.Context, req entrypkg.AdmitRequest) (*entity.VehicleEntry, error) {
	if req.UserID == uuid.Nil || req.OperatorID == uuid.Nil {
		return nil, fmt.Errorf("user and operator required: %w", apperr.ErrInvalidArgument)
	}
	brand := strings.TrimSpace(req.Brand)
	model := strings.TrimSpace(req.Model)
	if brand == "" || model == "" {
		return nil, fmt.Errorf("brand and model required: %w", apperr.ErrInvalidArgument)
	}

	e := &entity.VehicleEntry{
		UserID:     req.UserID,
		OperatorID: req.OperatorID,
		TypeID:     req.TypeID,
		Brand:      brand,
		Model:      model,
		Color:      strings.TrimSpace(req.Color),
		Plates:     strings.ToUpper(strings.TrimSpace(req.Plates)),
		Series:     strings.TrimSpace(req.Series),
		Mileage:    req.Mileage,
		Notes:      strings.TrimSpace(req.Notes),
		EnteredAt:  time.Now(),
	}

	claim := req.LocationID == nil
	if !claim {
		e.LocationID = *req.LocationID
	}
	return s.repo.AdmitEntry(ctx, e, claim)
}

func (s *entryService) GetEntry(ctx context.Context, id uuid.UUID) (*entity.VehicleEntry, error) {
	return s.repo.GetEntryByID(ctx, id)
}

func (s *entryService) ListActiveEntries(ctx context.Context) ([]entity.VehicleEntry, error) {
	return s.repo.ListActiveEntries(ctx)
}

func (s *entryService) ListEntriesForUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.VehicleEntry, error) {
	return s.repo.ListEntriesForUser(ctx, userID, limit)
}

func (s *entryService) LastEntryForUser(ctx context.Context, userID uuid.UUID) (*entity.VehicleEntry, error) {
	return s.repo.LastEntryForUser(ctx, userID)
}

func (s *entryService) Cancel(ctx context.Context, id uuid.UUID) (*entity.VehicleEntry, error) {
	return s.repo.CancelEntry(ctx, id)
}

func (s *entryService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDeleteEntry(ctx, id)
}
