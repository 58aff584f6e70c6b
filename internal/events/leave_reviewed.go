package events

import "time"

const LeaveReviewedTopic = "hrm.leave.reviewed.v1"

type LeaveReviewedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	LeaveID      string    `json:"leave_id"`
	EmployeeID   string    `json:"employee_id"`
	LeaveType    string    `json:"leave_type"`
	Status       string    `json:"status"`
	NumberOfDays int       `json:"number_of_days"`
	ReviewedBy   string    `json:"reviewed_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}
