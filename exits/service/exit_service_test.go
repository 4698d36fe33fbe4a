package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	"github.com/maag070208/AXZY-PARK-API/entity"
	exitspkg "github.com/maag070208/AXZY-PARK-API/exits"
	ratepkg "github.com/maag070208/AXZY-PARK-API/rate"
)

// entryStore is a minimal in-memory entry repository; only the reads the
// exit engine performs are meaningful.
type entryStore struct {
	entries map[uuid.UUID]*entity.VehicleEntry
}

func (r *entryStore) AdmitEntry(ctx context.Context, e *entity.VehicleEntry, claim bool) (*entity.VehicleEntry, error) {
	return nil, errors.New("not used")
}

func (r *entryStore) GetEntryByID(ctx context.Context, id uuid.UUID) (*entity.VehicleEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", id, apperr.ErrNotFound)
	}
	return e, nil
}

func (r *entryStore) ListActiveEntries(ctx context.Context) ([]entity.VehicleEntry, error) {
	return nil, nil
}

func (r *entryStore) ListEntriesForUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.VehicleEntry, error) {
	return nil, nil
}

func (r *entryStore) LastEntryForUser(ctx context.Context, userID uuid.UUID) (*entity.VehicleEntry, error) {
	return nil, apperr.ErrNotFound
}

func (r *entryStore) CountActiveEntries(ctx context.Context) (int64, error) { return 0, nil }

func (r *entryStore) CancelEntry(ctx context.Context, id uuid.UUID) (*entity.VehicleEntry, error) {
	return nil, errors.New("not used")
}

func (r *entryStore) SoftDeleteEntry(ctx context.Context, id uuid.UUID) error { return nil }

// fixedRates resolves every rate lookup to a configurable amount, standing in
// for the whole rate service.
type fixedRates struct {
	perDay int64
}

func (r *fixedRates) DailyRate(ctx context.Context, typeID *uuid.UUID) (int64, error) {
	return r.perDay, nil
}

func (r *fixedRates) ListVehicleTypes(ctx context.Context) ([]entity.VehicleType, error) {
	return nil, nil
}

func (r *fixedRates) CreateVehicleType(ctx context.Context, req ratepkg.CreateVehicleTypeRequest) (*entity.VehicleType, error) {
	return nil, errors.New("not used")
}

func (r *fixedRates) UpdateVehicleType(ctx context.Context, id uuid.UUID, req ratepkg.UpdateVehicleTypeRequest) (*entity.VehicleType, error) {
	return nil, errors.New("not used")
}

func (r *fixedRates) DeleteVehicleType(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fixedRates) GetSettings(ctx context.Context) (*entity.ParkingSettings, error) {
	return &entity.ParkingSettings{ID: entity.SettingsRowID, MaxCapacity: 100, DayCostCents: r.perDay}, nil
}

func (r *fixedRates) UpdateSettings(ctx context.Context, patch entity.SettingsPatch) (*entity.ParkingSettings, error) {
	return nil, errors.New("not used")
}

// fakeExitRepo applies the terminal transition against the shared entry
// store, the way the real transaction does.
type fakeExitRepo struct {
	entries              *entryStore
	exits                map[uuid.UUID]*entity.VehicleExit // by entry id
	completedAssignments []uuid.UUID
}

func (r *fakeExitRepo) CloseLifecycle(ctx context.Context, x *entity.VehicleExit, completeAssignmentID *uuid.UUID) (*entity.VehicleExit, error) {
	e, ok := r.entries.entries[x.EntryID]
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", x.EntryID, apperr.ErrNotFound)
	}
	if e.Status.Terminal() {
		return nil, fmt.Errorf("entry %s is %s: %w", e.ID, e.Status, apperr.ErrInvalidState)
	}
	if _, dup := r.exits[x.EntryID]; dup {
		return nil, fmt.Errorf("entry %s already exited: %w", x.EntryID, apperr.ErrConflict)
	}
	e.Status = entity.EntryExited
	x.ID = uuid.New()
	r.exits[x.EntryID] = x
	if completeAssignmentID != nil {
		r.completedAssignments = append(r.completedAssignments, *completeAssignmentID)
	}
	return x, nil
}

func (r *fakeExitRepo) GetExitForEntry(ctx context.Context, entryID uuid.UUID) (*entity.VehicleExit, error) {
	x, ok := r.exits[entryID]
	if !ok {
		return nil, fmt.Errorf("exit for entry %s: %w", entryID, apperr.ErrNotFound)
	}
	return x, nil
}

func (r *fakeExitRepo) ListExits(ctx context.Context) ([]entity.VehicleExit, error) {
	var out []entity.VehicleExit
	for _, x := range r.exits {
		out = append(out, *x)
	}
	return out, nil
}

func newExitFixture(perDay int64, entries ...*entity.VehicleEntry) (exitspkg.Service, *fakeExitRepo, *fixedRates) {
	store := &entryStore{entries: make(map[uuid.UUID]*entity.VehicleEntry)}
	for _, e := range entries {
		store.entries[e.ID] = e
	}
	repo := &fakeExitRepo{entries: store, exits: make(map[uuid.UUID]*entity.VehicleExit)}
	rates := &fixedRates{perDay: perDay}
	return NewExitService(repo, store, rates, nil), repo, rates
}

func parkedEntry(enteredAgo time.Duration) *entity.VehicleEntry {
	return &entity.VehicleEntry{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		OperatorID: uuid.New(),
		LocationID: uuid.New(),
		Brand:      "Mazda",
		Model:      "3",
		Status:     entity.EntryActive,
		EnteredAt:  time.Now().Add(-enteredAgo),
	}
}

func TestCloseChargesPerStartedDay(t *testing.T) {
	e := parkedEntry(30 * time.Hour)
	svc, _, _ := newExitFixture(5000, e)

	x, err := svc.Close(context.Background(), exitspkg.CloseRequest{EntryID: e.ID, OperatorID: uuid.New()})
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if x.FinalCostCents != 10000 {
		t.Fatalf("30h stay at 5000/day: expected 10000, got %d", x.FinalCostCents)
	}
	if e.Status != entity.EntryExited {
		t.Fatalf("entry not marked exited: %s", e.Status)
	}
}

func TestCloseMinimumOneDay(t *testing.T) {
	e := parkedEntry(10 * time.Minute)
	svc, _, _ := newExitFixture(5000, e)

	x, err := svc.Close(context.Background(), exitspkg.CloseRequest{EntryID: e.ID, OperatorID: uuid.New()})
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if x.FinalCostCents != 5000 {
		t.Fatalf("short stay: expected one day (5000), got %d", x.FinalCostCents)
	}
}

func TestCloseRequiresOperator(t *testing.T) {
	e := parkedEntry(time.Hour)
	svc, _, _ := newExitFixture(5000, e)

	_, err := svc.Close(context.Background(), exitspkg.CloseRequest{EntryID: e.ID})
	if !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCloseTerminalEntry(t *testing.T) {
	e := parkedEntry(time.Hour)
	e.Status = entity.EntryCancelled
	svc, _, _ := newExitFixture(5000, e)

	_, err := svc.Close(context.Background(), exitspkg.CloseRequest{EntryID: e.ID, OperatorID: uuid.New()})
	if !errors.Is(err, apperr.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestCloseTwice(t *testing.T) {
	e := parkedEntry(time.Hour)
	svc, _, _ := newExitFixture(5000, e)

	if _, err := svc.Close(context.Background(), exitspkg.CloseRequest{EntryID: e.ID, OperatorID: uuid.New()}); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	_, err := svc.Close(context.Background(), exitspkg.CloseRequest{EntryID: e.ID, OperatorID: uuid.New()})
	if !errors.Is(err, apperr.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState on second close, got %v", err)
	}
}

func TestStoredCostSurvivesRateChange(t *testing.T) {
	e := parkedEntry(time.Hour)
	svc, _, rates := newExitFixture(5000, e)

	x, err := svc.Close(context.Background(), exitspkg.CloseRequest{EntryID: e.ID, OperatorID: uuid.New()})
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	rates.perDay = 99999

	stored, err := svc.ExitForEntry(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("ExitForEntry: %v", err)
	}
	if stored.FinalCostCents != x.FinalCostCents {
		t.Fatalf("stored cost changed after rate update: %d != %d", stored.FinalCostCents, x.FinalCostCents)
	}
}
