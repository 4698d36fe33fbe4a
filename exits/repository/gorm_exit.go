package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	"github.com/maag070208/AXZY-PARK-API/entity"
	exitspkg "github.com/maag070208/AXZY-PARK-API/exits"
	locationrepo "github.com/maag070208/AXZY-PARK-API/location/repository"
)

type GormExitRepo struct{ db *gorm.DB }

func NewGormExitRepo(db *gorm.DB) exitspkg.Repository { return &GormExitRepo{db: db} }

func (r *GormExitRepo) CloseLifecycle(ctx context.Context, x *entity.VehicleExit, completeAssignmentID *uuid.UUID) (*entity.VehicleExit, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e entity.VehicleEntry
		if err := tx.First(&e, "id = ?", x.EntryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("entry %s: %w", x.EntryID, apperr.ErrNotFound)
			}
			return err
		}

		// Conditional update doubles as the state guard: a concurrent close
		// already flipped the status and this one rolls back.
		res := tx.Model(&entity.VehicleEntry{}).
			Where("id = ? AND status IN (?, ?)", e.ID, entity.EntryActive, entity.EntryMoved).
			Update("status", entity.EntryExited)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("entry %s is %s: %w", e.ID, e.Status, apperr.ErrInvalidState)
		}

		if err := tx.Create(x).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("entry %s already exited: %w", e.ID, apperr.ErrConflict)
			}
			return err
		}

		if err := locationrepo.ReleaseTx(tx, e.LocationID); err != nil {
			return err
		}

		if completeAssignmentID != nil {
			res := tx.Model(&entity.KeyAssignment{}).
				Where("id = ? AND status = ?", *completeAssignmentID, entity.AssignmentActive).
				Updates(map[string]interface{}{"status": entity.AssignmentCompleted, "ended_at": x.ExitedAt})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("assignment %s is not active: %w", *completeAssignmentID, apperr.ErrInvalidState)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return x, nil
}

func (r *GormExitRepo) GetExitForEntry(ctx context.Context, entryID uuid.UUID) (*entity.VehicleExit, error) {
	var x entity.VehicleExit
	err := r.db.WithContext(ctx).Preload("Entry").First(&x, "entry_id = ?", entryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no exit for entry %s: %w", entryID, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &x, nil
}

func (r *GormExitRepo) ListExits(ctx context.Context) ([]entity.VehicleExit, error) {
	var list []entity.VehicleExit
	err := r.db.WithContext(ctx).
		Preload("Entry").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
