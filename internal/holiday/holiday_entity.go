package holiday

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeNational       = "National"
	TypeState          = "State"
	TypeCenterSpecific = "Center-Specific"
)

// Holiday is read-mostly reference data; no mutation path is exposed.
type Holiday struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Date        time.Time `gorm:"type:date;not null;index"`
	HolidayType string    `gorm:"type:varchar(50)"`
	IsActive    bool      `gorm:"not null;default:true"`

	// Center/state scoping for non-national holidays.
	CenterID *int
	StateID  *int
}

func (Holiday) TableName() string { return "holidays" }
