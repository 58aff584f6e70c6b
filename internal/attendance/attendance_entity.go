package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Valid attendance statuses.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusHalfDay = "HalfDay"
	StatusLeave   = "Leave"
)

type Attendance struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	Date       time.Time      `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2"`
	Status     string         `gorm:"column:status;type:varchar(20);not null;default:Present"`
	CheckIn    *time.Time     `gorm:"column:check_in;type:timestamptz"`
	CheckOut   *time.Time     `gorm:"column:check_out;type:timestamptz"`
	WorkHours  float64        `gorm:"column:work_hours;not null;default:0"`
	Remarks    string         `gorm:"column:remarks;type:text"`
	CreatedBy  *uuid.UUID     `gorm:"column:created_by;type:uuid"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Employee   *EmployeeRef   `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// EmployeeRef carries the few employee columns list endpoints join in.
type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FirstName      string    `gorm:"column:first_name"`
	LastName       string    `gorm:"column:last_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}
