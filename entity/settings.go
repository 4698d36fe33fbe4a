package entity

import "time"

// ParkingSettings is the single facility-wide configuration row.
// It replaces the loosely-typed JSON blob the facility used to carry: every
// field is an explicit typed column, and updates go through SettingsPatch so
// precedence is documented rather than implied by ad hoc JSON merging.
// Rate changes apply to subsequent cost computations only, never to stored
// exits.
type ParkingSettings struct {
	ID           int       `json:"-" gorm:"primaryKey"` // always SettingsRowID
	MaxCapacity  int       `json:"max_capacity" gorm:"not null;default:100"`
	DayCostCents int64     `json:"day_cost_cents" gorm:"type:bigint;not null;default:6000"` // facility fallback daily rate
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SettingsRowID is the fixed id of the singleton settings row.
const SettingsRowID = 1

func (ParkingSettings) TableName() string { return "parking_settings" }

// SettingsPatch carries a partial settings update. Nil fields are left
// untouched; a new value wins only when present.
type SettingsPatch struct {
	MaxCapacity  *int   `json:"max_capacity,omitempty"`
	DayCostCents *int64 `json:"day_cost_cents,omitempty"`
}

// Merge applies the patch to a copy of s and returns it.
func (p SettingsPatch) Merge(s ParkingSettings) ParkingSettings {
	if p.MaxCapacity != nil {
		s.MaxCapacity = *p.MaxCapacity
	}
	if p.DayCostCents != nil {
		s.DayCostCents = *p.DayCostCents
	}
	return s
}
