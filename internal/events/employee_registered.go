package events

import "time"

const EmployeeRegisteredTopic = "hrm.employee.lifecycle.v1"

type EmployeeRegisteredEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeNumber string    `json:"employee_number"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	OccurredAt     time.Time `json:"occurred_at"`
}
