package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

// EmployeeCreatedEvent announces a new employee record to downstream
// consumers (directory sync, onboarding checklists).
type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	Email      string    `json:"email"`
	CenterID   int       `json:"center_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
