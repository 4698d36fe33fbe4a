package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	custodypkg "github.com/maag070208/AXZY-PARK-API/custody"
	"github.com/maag070208/AXZY-PARK-API/entity"
	locationrepo "github.com/maag070208/AXZY-PARK-API/location/repository"
)

type GormCustodyRepo struct{ db *gorm.DB }

func NewGormCustodyRepo(db *gorm.DB) custodypkg.Repository { return &GormCustodyRepo{db: db} }

func (r *GormCustodyRepo) OpenAssignment(ctx context.Context, a *entity.KeyAssignment) (*entity.KeyAssignment, error) {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("entry %s already has an active assignment: %w", a.EntryID, apperr.ErrConflict)
		}
		return nil, err
	}
	return a, nil
}

func (r *GormCustodyRepo) GetAssignmentByID(ctx context.Context, id uuid.UUID) (*entity.KeyAssignment, error) {
	var a entity.KeyAssignment
	err := r.db.WithContext(ctx).
		Preload("Entry").
		Preload("TargetLocation").
		First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assignment %s: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &a, nil
}

func (r *GormCustodyRepo) ActiveAssignmentForEntry(ctx context.Context, entryID uuid.UUID) (*entity.KeyAssignment, error) {
	var a entity.KeyAssignment
	err := r.db.WithContext(ctx).
		Where("entry_id = ? AND status = ?", entryID, entity.AssignmentActive).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// CompleteMovement applies the five writes of a movement transition in one
// transaction. The assignment flip is a conditional update so a concurrent
// completion of the same assignment loses with InvalidState instead of
// double-applying the transfer.
func (r *GormCustodyRepo) CompleteMovement(ctx context.Context, assignmentID uuid.UUID) (*entity.KeyAssignment, error) {
	var a entity.KeyAssignment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, "id = ?", assignmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("assignment %s: %w", assignmentID, apperr.ErrNotFound)
			}
			return err
		}
		if a.Kind != entity.AssignmentMovement {
			return fmt.Errorf("assignment %s is not a movement: %w", assignmentID, apperr.ErrInvalidState)
		}
		if a.TargetLocationID == nil {
			return fmt.Errorf("assignment %s has no target location: %w", assignmentID, apperr.ErrInvalidArgument)
		}

		now := time.Now()
		res := tx.Model(&entity.KeyAssignment{}).
			Where("id = ? AND status = ?", assignmentID, entity.AssignmentActive).
			Updates(map[string]interface{}{"status": entity.AssignmentCompleted, "ended_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("assignment %s is not active: %w", assignmentID, apperr.ErrInvalidState)
		}
		a.Status = entity.AssignmentCompleted
		a.EndedAt = &now

		var e entity.VehicleEntry
		if err := tx.First(&e, "id = ?", a.EntryID).Error; err != nil {
			return err
		}
		from := e.LocationID
		target := *a.TargetLocationID

		if err := tx.Model(&entity.VehicleEntry{}).Where("id = ?", e.ID).
			Updates(map[string]interface{}{"location_id": target, "status": entity.EntryMoved}).Error; err != nil {
			return err
		}
		if err := locationrepo.ReleaseTx(tx, from); err != nil {
			return err
		}
		if err := locationrepo.OccupyTx(tx, target); err != nil {
			return err
		}

		movement := &entity.VehicleMovement{
			EntryID:        e.ID,
			FromLocationID: from,
			ToLocationID:   target,
			OperatorID:     a.OperatorID,
			CompletedAt:    now,
		}
		return tx.Create(movement).Error
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormCustodyRepo) ListAssignments(ctx context.Context) ([]entity.KeyAssignment, error) {
	var list []entity.KeyAssignment
	err := r.db.WithContext(ctx).
		Preload("Entry").
		Preload("TargetLocation").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormCustodyRepo) ListMovementsForEntry(ctx context.Context, entryID uuid.UUID) ([]entity.VehicleMovement, error) {
	var list []entity.VehicleMovement
	err := r.db.WithContext(ctx).
		Preload("FromLocation").
		Preload("ToLocation").
		Where("entry_id = ?", entryID).
		Order("completed_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormCustodyRepo) ListStaleActive(ctx context.Context, cutoff time.Time) ([]entity.KeyAssignment, error) {
	var list []entity.KeyAssignment
	err := r.db.WithContext(ctx).
		Where("status = ? AND started_at < ?", entity.AssignmentActive, cutoff).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
