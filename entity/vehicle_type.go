package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleType defines the per-type daily parking rate (minor currency units).
// Entries without a type fall back to ParkingSettings.DayCostCents.
type VehicleType struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name           string         `json:"name" gorm:"type:text;uniqueIndex;not null"` // e.g. "Sedan", "SUV"
	DailyRateCents int64          `json:"daily_rate_cents" gorm:"type:bigint;not null"`
	Active         bool           `json:"active" gorm:"default:true;index"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

func (VehicleType) TableName() string { return "vehicle_types" }
