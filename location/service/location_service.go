package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	"github.com/maag070208/AXZY-PARK-API/entity"
	locationpkg "github.com/maag070208/AXZY-PARK-API/location"
)

// locationService implements location.Service.
type locationService struct {
	repo locationpkg.Repository
}

// NewLocationService constructs a Service backed by the provided repository.
func NewLocationService(repo locationpkg.Repository) locationpkg.Service {
	return &locationService{repo: repo}
}

func (s *locationService) CreateLocation(ctx context.Context, req locationpkg.CreateLocationRequest) (*entity.Location, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("location name required: %w", apperr.ErrInvalidArgument)
	}
	l := &entity.Location{
		Name:  strings.ToUpper(name),
		Aisle: strings.TrimSpace(req.Aisle),
		Spot:  strings.TrimSpace(req.Spot),
	}
	return s.repo.StoreLocation(ctx, l)
}

func (s *locationService) GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	return s.repo.GetLocationByID(ctx, id)
}

func (s *locationService) ListLocations(ctx context.Context) ([]entity.Location, error) {
	return s.repo.ListLocations(ctx)
}

func (s *locationService) AcquireAvailable(ctx context.Context) (*entity.Location, error) {
	return s.repo.AcquireAvailable(ctx)
}

func (s *locationService) Release(ctx context.Context, id uuid.UUID) error {
	return s.repo.Release(ctx, id)
}

func (s *locationService) Occupy(ctx context.Context, id uuid.UUID) error {
	return s.repo.Occupy(ctx, id)
}
