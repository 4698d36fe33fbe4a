package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleExit closes a vehicle lifecycle with its final computed cost.
// One row per entry, created at the moment the entry turns exited.
// FinalCostCents is immutable once stored: later rate or settings changes
// never touch a closed exit.
type VehicleExit struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EntryID        uuid.UUID      `json:"entry_id" gorm:"type:uuid;uniqueIndex;not null"`
	Entry          *VehicleEntry  `json:"entry,omitempty" gorm:"foreignKey:EntryID"`
	OperatorID     uuid.UUID      `json:"operator_id" gorm:"type:uuid;index;not null"`
	FinalCostCents int64          `json:"final_cost_cents" gorm:"type:bigint;not null"`
	Notes          string         `json:"notes,omitempty" gorm:"type:text"`
	ExitedAt       time.Time      `json:"exited_at" gorm:"not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}
