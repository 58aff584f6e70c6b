package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypePaid   = "Paid"
	TypeSick   = "Sick"
	TypeUnpaid = "Unpaid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Leave struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	LeaveType      string         `gorm:"column:leave_type;type:varchar(10);not null"`
	StartDate      time.Time      `gorm:"column:start_date;type:date;not null"`
	EndDate        time.Time      `gorm:"column:end_date;type:date;not null"`
	NumberOfDays   int            `gorm:"column:number_of_days;not null"`
	Reason         string         `gorm:"column:reason;type:text;not null"`
	Status         string         `gorm:"column:status;type:varchar(10);not null;default:Pending;index"`
	ReviewedBy     *uuid.UUID     `gorm:"column:reviewed_by;type:uuid"`
	ReviewedAt     *time.Time     `gorm:"column:reviewed_at;type:timestamptz"`
	ReviewComments string         `gorm:"column:review_comments;type:text"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Employee       *EmployeeRef   `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Leave) TableName() string {
	return "leaves"
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FirstName      string    `gorm:"column:first_name"`
	LastName       string    `gorm:"column:last_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
