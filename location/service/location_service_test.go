package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	"github.com/maag070208/AXZY-PARK-API/entity"
	locationpkg "github.com/maag070208/AXZY-PARK-API/location"
)

// fakeLocationRepo honors the same contracts the gorm repository gets from
// the database: an atomic claim, an idempotent release and a guarded occupy.
type fakeLocationRepo struct {
	mu        sync.Mutex
	order     []uuid.UUID
	locations map[uuid.UUID]*entity.Location
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: make(map[uuid.UUID]*entity.Location)}
}

func (r *fakeLocationRepo) StoreLocation(ctx context.Context, l *entity.Location) (*entity.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.locations {
		if existing.Name == l.Name {
			return nil, fmt.Errorf("location %q exists: %w", l.Name, apperr.ErrConflict)
		}
	}
	l.ID = uuid.New()
	r.locations[l.ID] = l
	r.order = append(r.order, l.ID)
	return l, nil
}

func (r *fakeLocationRepo) GetLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locations[id]
	if !ok {
		return nil, fmt.Errorf("location %s: %w", id, apperr.ErrNotFound)
	}
	return l, nil
}

func (r *fakeLocationRepo) ListLocations(ctx context.Context) ([]entity.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Location, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.locations[id])
	}
	return out, nil
}

func (r *fakeLocationRepo) CountOccupied(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, l := range r.locations {
		if l.IsOccupied {
			n++
		}
	}
	return n, nil
}

func (r *fakeLocationRepo) AcquireAvailable(ctx context.Context) (*entity.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if l := r.locations[id]; !l.IsOccupied {
			l.IsOccupied = true
			return l, nil
		}
	}
	return nil, fmt.Errorf("no free location: %w", apperr.ErrNoCapacity)
}

func (r *fakeLocationRepo) Release(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.locations[id]; ok {
		l.IsOccupied = false
	}
	return nil
}

func (r *fakeLocationRepo) Occupy(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locations[id]
	if !ok {
		return fmt.Errorf("location %s: %w", id, apperr.ErrNotFound)
	}
	if l.IsOccupied {
		return fmt.Errorf("location %s occupied: %w", id, apperr.ErrConflict)
	}
	l.IsOccupied = true
	return nil
}

func TestCreateLocationNormalizesName(t *testing.T) {
	svc := NewLocationService(newFakeLocationRepo())

	l, err := svc.CreateLocation(context.Background(), locationpkg.CreateLocationRequest{Name: " zone-a "})
	if err != nil {
		t.Fatalf("CreateLocation: %v", err)
	}
	if l.Name != "ZONE-A" {
		t.Fatalf("name not normalized: %q", l.Name)
	}

	if _, err := svc.CreateLocation(context.Background(), locationpkg.CreateLocationRequest{Name: "  "}); !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for blank name, got %v", err)
	}
}

func TestAcquireAvailableIsExclusive(t *testing.T) {
	repo := newFakeLocationRepo()
	svc := NewLocationService(repo)

	if _, err := svc.CreateLocation(context.Background(), locationpkg.CreateLocationRequest{Name: "A"}); err != nil {
		t.Fatalf("CreateLocation: %v", err)
	}

	// many admissions racing for a single free spot: exactly one wins
	const racers = 16
	var wg sync.WaitGroup
	wins := make(chan uuid.UUID, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l, err := svc.AcquireAvailable(context.Background()); err == nil {
				wins <- l.ID
			}
		}()
	}
	wg.Wait()
	close(wins)

	var count int
	for range wins {
		count++
	}
	if count != 1 {
		t.Fatalf("expected exactly one winner, got %d", count)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	repo := newFakeLocationRepo()
	svc := NewLocationService(repo)

	l, err := svc.CreateLocation(context.Background(), locationpkg.CreateLocationRequest{Name: "A"})
	if err != nil {
		t.Fatalf("CreateLocation: %v", err)
	}
	if err := svc.Release(context.Background(), l.ID); err != nil {
		t.Fatalf("Release of a free spot must be a no-op: %v", err)
	}
	if err := svc.Release(context.Background(), l.ID); err != nil {
		t.Fatalf("second Release: %v", err)
	}
}

func TestOccupyConflicts(t *testing.T) {
	repo := newFakeLocationRepo()
	svc := NewLocationService(repo)

	l, err := svc.CreateLocation(context.Background(), locationpkg.CreateLocationRequest{Name: "A"})
	if err != nil {
		t.Fatalf("CreateLocation: %v", err)
	}
	if err := svc.Occupy(context.Background(), l.ID); err != nil {
		t.Fatalf("Occupy: %v", err)
	}
	if err := svc.Occupy(context.Background(), l.ID); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected ErrConflict on occupied spot, got %v", err)
	}
}
