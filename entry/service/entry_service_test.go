package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	"github.com/maag070208/AXZY-PARK-API/entity"
	entrypkg "github.com/maag070208/AXZY-PARK-API/entry"
)

// fakeEntryRepo keeps entries in memory and mimics the admission
// transaction's location handling.
type fakeEntryRepo struct {
	free      []entity.Location
	locations map[uuid.UUID]entity.Location
	entries   map[uuid.UUID]*entity.VehicleEntry
}

func newFakeEntryRepo(free ...entity.Location) *fakeEntryRepo {
	r := &fakeEntryRepo{
		locations: make(map[uuid.UUID]entity.Location),
		entries:   make(map[uuid.UUID]*entity.VehicleEntry),
	}
	for _, l := range free {
		r.free = append(r.free, l)
		r.locations[l.ID] = l
	}
	return r
}

func (r *fakeEntryRepo) addSharedZone(l entity.Location) { r.locations[l.ID] = l }

func (r *fakeEntryRepo) AdmitEntry(ctx context.Context, e *entity.VehicleEntry, claimLocation bool) (*entity.VehicleEntry, error) {
	var loc entity.Location
	if claimLocation {
		if len(r.free) == 0 {
			return nil, fmt.Errorf("no free location: %w", apperr.ErrNoCapacity)
		}
		loc, r.free = r.free[0], r.free[1:]
		e.LocationID = loc.ID
	} else {
		var ok bool
		if loc, ok = r.locations[e.LocationID]; !ok {
			return nil, fmt.Errorf("location %s: %w", e.LocationID, apperr.ErrNotFound)
		}
	}
	e.ID = uuid.New()
	e.TicketCode = entrypkg.TicketCode(loc.Name, e.ID)
	e.Status = entity.EntryActive
	r.entries[e.ID] = e
	return e, nil
}

func (r *fakeEntryRepo) GetEntryByID(ctx context.Context, id uuid.UUID) (*entity.VehicleEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", id, apperr.ErrNotFound)
	}
	return e, nil
}

func (r *fakeEntryRepo) ListActiveEntries(ctx context.Context) ([]entity.VehicleEntry, error) {
	var out []entity.VehicleEntry
	for _, e := range r.entries {
		if !e.Status.Terminal() {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) ListEntriesForUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.VehicleEntry, error) {
	var out []entity.VehicleEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) LastEntryForUser(ctx context.Context, userID uuid.UUID) (*entity.VehicleEntry, error) {
	for _, e := range r.entries {
		if e.UserID == userID {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no entries for %s: %w", userID, apperr.ErrNotFound)
}

func (r *fakeEntryRepo) CountActiveEntries(ctx context.Context) (int64, error) {
	list, _ := r.ListActiveEntries(ctx)
	return int64(len(list)), nil
}

func (r *fakeEntryRepo) CancelEntry(ctx context.Context, id uuid.UUID) (*entity.VehicleEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", id, apperr.ErrNotFound)
	}
	if e.Status.Terminal() {
		return nil, fmt.Errorf("entry %s is %s: %w", id, e.Status, apperr.ErrInvalidState)
	}
	e.Status = entity.EntryCancelled
	return e, nil
}

func (r *fakeEntryRepo) SoftDeleteEntry(ctx context.Context, id uuid.UUID) error {
	e, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("entry %s: %w", id, apperr.ErrNotFound)
	}
	if !e.Status.Terminal() {
		return fmt.Errorf("entry %s is still parked: %w", id, apperr.ErrInvalidState)
	}
	delete(r.entries, id)
	return nil
}

func admitRequest() entrypkg.AdmitRequest {
	return entrypkg.AdmitRequest{
		UserID:     uuid.New(),
		OperatorID: uuid.New(),
		Brand:      "Toyota",
		Model:      "Corolla",
		Plates:     " abc-123 ",
	}
}

func TestAdmitClaimsFreeLocation(t *testing.T) {
	spot := entity.Location{ID: uuid.New(), Name: "A"}
	repo := newFakeEntryRepo(spot)
	svc := NewEntryService(repo)

	e, err := svc.Admit(context.Background(), admitRequest())
	if err != nil {
		t.Fatalf("Admit: %v", err)
	}
	if e.LocationID != spot.ID {
		t.Fatalf("expected claimed location %s, got %s", spot.ID, e.LocationID)
	}
	if !strings.HasPrefix(e.TicketCode, "A-") {
		t.Fatalf("ticket %q not derived from location name", e.TicketCode)
	}
	if e.Plates != "ABC-123" {
		t.Fatalf("plates not normalized: %q", e.Plates)
	}
}

func TestAdmitNoCapacity(t *testing.T) {
	svc := NewEntryService(newFakeEntryRepo())

	_, err := svc.Admit(context.Background(), admitRequest())
	if !errors.Is(err, apperr.ErrNoCapacity) {
		t.Fatalf("expected ErrNoCapacity, got %v", err)
	}
}

func TestAdmitRequestedLocation(t *testing.T) {
	zone := entity.Location{ID: uuid.New(), Name: "ZONE-B"}
	repo := newFakeEntryRepo()
	repo.addSharedZone(zone)
	svc := NewEntryService(repo)

	req := admitRequest()
	req.LocationID = &zone.ID
	e, err := svc.Admit(context.Background(), req)
	if err != nil {
		t.Fatalf("Admit: %v", err)
	}
	if e.LocationID != zone.ID {
		t.Fatalf("expected requested location %s, got %s", zone.ID, e.LocationID)
	}
}

func TestAdmitRequestedLocationMissing(t *testing.T) {
	svc := NewEntryService(newFakeEntryRepo())

	req := admitRequest()
	missing := uuid.New()
	req.LocationID = &missing
	_, err := svc.Admit(context.Background(), req)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdmitValidation(t *testing.T) {
	svc := NewEntryService(newFakeEntryRepo(entity.Location{ID: uuid.New(), Name: "A"}))

	cases := []struct {
		name   string
		mutate func(*entrypkg.AdmitRequest)
	}{
		{"missing user", func(r *entrypkg.AdmitRequest) { r.UserID = uuid.Nil }},
		{"missing operator", func(r *entrypkg.AdmitRequest) { r.OperatorID = uuid.Nil }},
		{"missing brand", func(r *entrypkg.AdmitRequest) { r.Brand = "  " }},
		{"missing model", func(r *entrypkg.AdmitRequest) { r.Model = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := admitRequest()
			tc.mutate(&req)
			if _, err := svc.Admit(context.Background(), req); !errors.Is(err, apperr.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestRemoveRequiresClosedEntry(t *testing.T) {
	repo := newFakeEntryRepo(entity.Location{ID: uuid.New(), Name: "A"})
	svc := NewEntryService(repo)

	e, err := svc.Admit(context.Background(), admitRequest())
	if err != nil {
		t.Fatalf("Admit: %v", err)
	}

	// a parked vehicle cannot be deleted out from under its location
	if err := svc.Remove(context.Background(), e.ID); !errors.Is(err, apperr.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for parked entry, got %v", err)
	}

	if _, err := svc.Cancel(context.Background(), e.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if err := svc.Remove(context.Background(), e.ID); err != nil {
		t.Fatalf("Remove after cancel: %v", err)
	}
}

func TestCancelTwice(t *testing.T) {
	repo := newFakeEntryRepo(entity.Location{ID: uuid.New(), Name: "A"})
	svc := NewEntryService(repo)

	e, err := svc.Admit(context.Background(), admitRequest())
	if err != nil {
		t.Fatalf("Admit: %v", err)
	}
	if _, err := svc.Cancel(context.Background(), e.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if _, err := svc.Cancel(context.Background(), e.ID); !errors.Is(err, apperr.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState on second cancel, got %v", err)
	}
}
