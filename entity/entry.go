package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryStatus enumerates the coarse lifecycle of a parked vehicle.
type EntryStatus string

const (
	EntryActive    EntryStatus = "active"    // parked at its admission location
	EntryMoved     EntryStatus = "moved"     // relocated at least once, still parked
	EntryExited    EntryStatus = "exited"    // lifecycle closed, cost charged
	EntryCancelled EntryStatus = "cancelled" // closed without billing
)

// Terminal reports whether the status admits no further transitions.
func (s EntryStatus) Terminal() bool {
	return s == EntryExited || s == EntryCancelled
}

// VehicleEntry is the lifecycle record opened when a vehicle is admitted.
// Created only by the entry service; its location pointer and status are
// mutated by the custody service (movement) and the exits service (close).
// Rows are removed only via soft delete so audit history survives.
type VehicleEntry struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	// TicketCode is the human-facing identifier, derived from the admission
	// location name and the record id. Written in a second step of the
	// admission transaction because the id is only known after insert.
	TicketCode string     `json:"ticket_code" gorm:"type:text;uniqueIndex;not null"`
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;index;not null"` // vehicle owner
	OperatorID uuid.UUID  `json:"operator_id" gorm:"type:uuid;index;not null"`
	LocationID uuid.UUID  `json:"location_id" gorm:"type:uuid;index;not null"` // current location
	Location   *Location  `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	TypeID     *uuid.UUID `json:"vehicle_type_id,omitempty" gorm:"type:uuid;index;default:null"`

	// Vehicle descriptor
	Brand   string `json:"brand" gorm:"type:text;not null"`
	Model   string `json:"model" gorm:"type:text;not null"`
	Color   string `json:"color" gorm:"type:text"`
	Plates  string `json:"plates" gorm:"type:text;index"`
	Series  string `json:"series,omitempty" gorm:"type:text"`
	Mileage *int   `json:"mileage,omitempty" gorm:"type:integer"`

	Status    EntryStatus    `json:"status" gorm:"type:text;index;not null;default:'active'"`
	Notes     string         `json:"notes,omitempty" gorm:"type:text"`
	EnteredAt time.Time      `json:"entered_at" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
