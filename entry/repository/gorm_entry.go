package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	"github.com/maag070208/AXZY-PARK-API/entity"
	entrypkg "github.com/maag070208/AXZY-PARK-API/entry"
	locationrepo "github.com/maag070208/AXZY-PARK-API/location/repository"
)

type GormEntryRepo struct{ db *gorm.DB }

func NewGormEntryRepo(db *gorm.DB) entrypkg.Repository { return &GormEntryRepo{db: db} }

// AdmitEntry runs the full admission inside one transaction so the location
// claim, both ticket writes and the opening assignment commit or roll back
// together.
func (r *GormEntryRepo) AdmitEntry(ctx context.Context, e *entity.VehicleEntry, claimLocation bool) (*entity.VehicleEntry, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var loc *entity.Location
		if claimLocation {
			claimed, err := locationrepo.ClaimAvailable(tx)
			if err != nil {
				return err
			}
			loc = claimed
			e.LocationID = loc.ID
		} else {
			var l entity.Location
			if err := tx.First(&l, "id = ?", e.LocationID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("location %s: %w", e.LocationID, apperr.ErrNotFound)
				}
				return err
			}
			loc = &l
		}

		// First write: provisional ticket, because the real code needs the
		// generated id.
		e.Status = entity.EntryActive
		e.TicketCode = entrypkg.ProvisionalTicket(time.Now())
		if err := tx.Create(e).Error; err != nil {
			return err
		}

		code := entrypkg.TicketCode(loc.Name, e.ID)
		if err := tx.Model(&entity.VehicleEntry{}).Where("id = ?", e.ID).Update("ticket_code", code).Error; err != nil {
			return err
		}
		e.TicketCode = code
		e.Location = loc

		// Opening history entry: a completed movement into the admission
		// location.
		now := time.Now()
		opening := &entity.KeyAssignment{
			EntryID:          e.ID,
			OperatorID:       e.OperatorID,
			Kind:             entity.AssignmentMovement,
			Status:           entity.AssignmentCompleted,
			TargetLocationID: &loc.ID,
			StartedAt:        now,
			EndedAt:          &now,
		}
		return tx.Create(opening).Error
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *GormEntryRepo) GetEntryByID(ctx context.Context, id uuid.UUID) (*entity.VehicleEntry, error) {
	var e entity.VehicleEntry
	err := r.db.WithContext(ctx).Preload("Location").First(&e, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("entry %s: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &e, nil
}

func (r *GormEntryRepo) ListActiveEntries(ctx context.Context) ([]entity.VehicleEntry, error) {
	var list []entity.VehicleEntry
	err := r.db.WithContext(ctx).
		Preload("Location").
		Where("status NOT IN (?, ?)", entity.EntryExited, entity.EntryCancelled).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormEntryRepo) ListEntriesForUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.VehicleEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	var list []entity.VehicleEntry
	err := r.db.WithContext(ctx).
		Preload("Location").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormEntryRepo) LastEntryForUser(ctx context.Context, userID uuid.UUID) (*entity.VehicleEntry, error) {
	var e entity.VehicleEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no entry for user %s: %w", userID, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &e, nil
}

func (r *GormEntryRepo) CountActiveEntries(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.VehicleEntry{}).
		Where("status NOT IN (?, ?)", entity.EntryExited, entity.EntryCancelled).
		Count(&count).Error
	return count, err
}

// CancelEntry flips the status and frees the location in one transaction.
// The conditional update doubles as the state check: zero rows means the
// entry is missing or already terminal.
func (r *GormEntryRepo) CancelEntry(ctx context.Context, id uuid.UUID) (*entity.VehicleEntry, error) {
	var e entity.VehicleEntry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&e, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("entry %s: %w", id, apperr.ErrNotFound)
			}
			return err
		}
		res := tx.Model(&entity.VehicleEntry{}).
			Where("id = ? AND status IN (?, ?)", id, entity.EntryActive, entity.EntryMoved).
			Update("status", entity.EntryCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("entry %s is %s: %w", id, e.Status, apperr.ErrInvalidState)
		}
		e.Status = entity.EntryCancelled
		return locationrepo.ReleaseTx(tx, e.LocationID)
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// SoftDeleteEntry hides a closed entry from listings. Only terminal entries
// may go: deleting a parked vehicle would strand its occupied location with
// no entry referencing it.
func (r *GormEntryRepo) SoftDeleteEntry(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status IN (?, ?)", id, entity.EntryExited, entity.EntryCancelled).
		Delete(&entity.VehicleEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&entity.VehicleEntry{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("entry %s: %w", id, apperr.ErrNotFound)
		}
		return fmt.Errorf("entry %s is still parked: %w", id, apperr.ErrInvalidState)
	}
	return nil
}
