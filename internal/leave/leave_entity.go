package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)

const (
	SessionFirstHalf  = "FirstHalf"
	SessionSecondHalf = "SecondHalf"
)

// LeaveRequest moves one way: Pending to exactly one of Approved,
// Rejected or Cancelled. Terminal states never transition again.
type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee"`

	LeaveTypeID int
	FromDate    time.Time `gorm:"type:date;not null"`
	ToDate      time.Time `gorm:"type:date;not null"`

	// Set only on half-day requests, where FromDate == ToDate.
	LeaveSession *string `gorm:"type:varchar(20)"`

	Reason          string `gorm:"type:text"`
	Status          string `gorm:"type:varchar(20);not null;default:'Pending';index:idx_leaves_status"`
	FinancialYearID int

	ApprovedBy       *uuid.UUID `gorm:"type:uuid"`
	ApprovalComments *string    `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string { return "leaves" }

func (l LeaveRequest) IsTerminal() bool {
	return l.Status != StatusPending
}
