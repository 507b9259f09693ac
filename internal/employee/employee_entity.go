package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	OnboardingPending   = "Pending"
	OnboardingCompleted = "Completed"
	OnboardingInactive  = "Inactive"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	MobileNo     string    `gorm:"type:varchar(20)"`

	CenterID         int
	Department       string `gorm:"type:varchar(100)"`
	Designation      string `gorm:"type:varchar(100)"`
	OnboardingStatus string `gorm:"type:varchar(50);not null;default:'Pending'"`

	Roles []string `gorm:"serializer:json;type:jsonb;not null"`

	// Self-referential manager link. Cycles are not validated.
	ReportingOfficerID *uuid.UUID `gorm:"type:uuid;index"`

	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string { return "employees" }

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
