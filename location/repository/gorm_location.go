package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/maag070208/AXZY-PARK-API/apperr"
	"github.com/maag070208/AXZY-PARK-API/entity"
	locationpkg "github.com/maag070208/AXZY-PARK-API/location"
)

type GormLocationRepo struct{ db *gorm.DB }

func NewGormLocationRepo(db *gorm.DB) locationpkg.Repository { return &GormLocationRepo{db: db} }

func (r *GormLocationRepo) StoreLocation(ctx context.Context, l *entity.Location) (*entity.Location, error) {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("location %q: %w", l.Name, apperr.ErrConflict)
		}
		return nil, err
	}
	return l, nil
}

func (r *GormLocationRepo) GetLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var l entity.Location
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("location %s: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &l, nil
}

func (r *GormLocationRepo) ListLocations(ctx context.Context) ([]entity.Location, error) {
	var list []entity.Location
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormLocationRepo) CountOccupied(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Location{}).Where("is_occupied = ?", true).Count(&count).Error
	return count, err
}

// AcquireAvailable claims a free location under a row lock so concurrent
// admissions can never be handed the same spot. SKIP LOCKED makes competing
// claimers move on to the next free row instead of queueing on the same one.
func (r *GormLocationRepo) AcquireAvailable(ctx context.Context) (*entity.Location, error) {
	var claimed *entity.Location
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		claimed, err = ClaimAvailable(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

// ClaimAvailable performs the atomic free-row claim inside an existing
// transaction. Callers that need the claim to commit or roll back together
// with their own writes (entry admission) use this directly.
func ClaimAvailable(tx *gorm.DB) (*entity.Location, error) {
	var l entity.Location
	err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("is_occupied = ?", false).
		Order("name ASC").
		First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no free location: %w", apperr.ErrNoCapacity)
		}
		return nil, err
	}
	if err := tx.Model(&entity.Location{}).Where("id = ?", l.ID).Update("is_occupied", true).Error; err != nil {
		return nil, err
	}
	l.IsOccupied = true
	return &l, nil
}

func (r *GormLocationRepo) Release(ctx context.Context, id uuid.UUID) error {
	return ReleaseTx(r.db.WithContext(ctx), id)
}

// ReleaseTx frees a location inside an existing transaction. Already-free
// (or missing) locations are left alone, which keeps release idempotent.
func ReleaseTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&entity.Location{}).Where("id = ?", id).Update("is_occupied", false).Error
}

func (r *GormLocationRepo) Occupy(ctx context.Context, id uuid.UUID) error {
	return OccupyTx(r.db.WithContext(ctx), id)
}

// OccupyTx marks a location occupied inside an existing transaction, failing
// with Conflict when another active vehicle already claimed it. The flag flip
// is a conditional update so the check and the write are one statement.
func OccupyTx(tx *gorm.DB, id uuid.UUID) error {
	res := tx.Model(&entity.Location{}).
		Where("id = ? AND is_occupied = ?", id, false).
		Update("is_occupied", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&entity.Location{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("location %s: %w", id, apperr.ErrNotFound)
		}
		return fmt.Errorf("location %s already occupied: %w", id, apperr.ErrConflict)
	}
	return nil
}
