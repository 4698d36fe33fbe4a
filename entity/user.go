package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a minimal profile for operators and vehicle owners. Authentication
// lives outside the engine; entries and assignments only reference user ids.
type User struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FirstName string         `json:"first_name" gorm:"type:text;not null"`
	LastName  string         `json:"last_name" gorm:"type:text;not null"`
	Phone     string         `json:"phone" gorm:"type:text;index;not null"`
	Role      string         `json:"role" gorm:"type:text;index;not null"` // "operator" or "client"
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
