package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is a physical parking spot (or shared zone) in the facility.
// IsOccupied is bookkeeping owned by the location registry: it is true iff
// exactly one non-exited entry claimed the spot through AcquireAvailable or
// Occupy. Manually requested zones are shared and bypass this flag.
// Location never holds a back-reference to entries; entries point at it.
type Location struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name       string         `json:"name" gorm:"type:text;uniqueIndex;not null"` // display name, e.g. "A"
	Aisle      string         `json:"aisle,omitempty" gorm:"type:text"`
	Spot       string         `json:"spot,omitempty" gorm:"type:text"`
	IsOccupied bool           `json:"is_occupied" gorm:"default:false;index"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
