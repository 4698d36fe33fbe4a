package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentKind says why an operator holds the vehicle's keys.
type AssignmentKind string

const (
	AssignmentMovement AssignmentKind = "movement" // relocating the vehicle
	AssignmentDelivery AssignmentKind = "delivery" // returning it to the owner
)

// AssignmentStatus enumerates the key-custody state.
type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "active"
	AssignmentCompleted AssignmentStatus = "completed"
)

// KeyAssignment records custody of a vehicle's keys by an operator.
// At most one row per entry may be active at any time; that invariant is
// enforced by a partial unique index on (entry_id) WHERE status = 'active'
// (created in db.go), not by an application-level check.
type KeyAssignment struct {
	ID         uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EntryID    uuid.UUID        `json:"entry_id" gorm:"type:uuid;index;not null"`
	Entry      *VehicleEntry    `json:"entry,omitempty" gorm:"foreignKey:EntryID"`
	OperatorID uuid.UUID        `json:"operator_id" gorm:"type:uuid;index;not null"`
	Kind       AssignmentKind   `json:"kind" gorm:"type:text;not null"`
	Status     AssignmentStatus `json:"status" gorm:"type:text;index;not null;default:'active'"`
	// TargetLocationID is required for movement assignments and nil for
	// delivery assignments.
	TargetLocationID *uuid.UUID     `json:"target_location_id,omitempty" gorm:"type:uuid;index;default:null"`
	TargetLocation   *Location      `json:"target_location,omitempty" gorm:"foreignKey:TargetLocationID"`
	StartedAt        time.Time      `json:"started_at" gorm:"not null"`
	EndedAt          *time.Time     `json:"ended_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}
