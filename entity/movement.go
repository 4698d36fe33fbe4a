package entity

import (
	"time"

	"github.com/google/uuid"
)

// VehicleMovement is the append-only audit trail of location changes.
// Exactly one row is written per completed movement assignment, inside the
// same transaction that repoints the entry; rows are never edited or deleted.
type VehicleMovement struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EntryID        uuid.UUID `json:"entry_id" gorm:"type:uuid;index;not null"`
	FromLocationID uuid.UUID `json:"from_location_id" gorm:"type:uuid;not null"`
	FromLocation   *Location `json:"from_location,omitempty" gorm:"foreignKey:FromLocationID"`
	ToLocationID   uuid.UUID `json:"to_location_id" gorm:"type:uuid;not null"`
	ToLocation     *Location `json:"to_location,omitempty" gorm:"foreignKey:ToLocationID"`
	OperatorID     uuid.UUID `json:"operator_id" gorm:"type:uuid;index;not null"`
	CompletedAt    time.Time `json:"completed_at" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
}
