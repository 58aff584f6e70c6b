package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "Pending"
	StatusProcessed = "Processed"
	StatusPaid      = "Paid"
)

type Allowances struct {
	HRA       float64 `gorm:"column:hra;not null;default:0" json:"hra" binding:"omitempty,gte=0"`
	Transport float64 `gorm:"column:transport;not null;default:0" json:"transport" binding:"omitempty,gte=0"`
	Medical   float64 `gorm:"column:medical;not null;default:0" json:"medical" binding:"omitempty,gte=0"`
	Other     float64 `gorm:"column:other;not null;default:0" json:"other" binding:"omitempty,gte=0"`
}

type Deductions struct {
	Tax           float64 `gorm:"column:tax;not null;default:0" json:"tax" binding:"omitempty,gte=0"`
	ProvidentFund float64 `gorm:"column:provident_fund;not null;default:0" json:"provident_fund" binding:"omitempty,gte=0"`
	Insurance     float64 `gorm:"column:insurance;not null;default:0" json:"insurance" binding:"omitempty,gte=0"`
	Other         float64 `gorm:"column:other;not null;default:0" json:"other" binding:"omitempty,gte=0"`
}

type Payroll struct {
	ID              uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID      uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_payroll_employee_period,priority:1"`
	Month           int            `gorm:"column:month;not null;uniqueIndex:uq_payroll_employee_period,priority:2"`
	Year            int            `gorm:"column:year;not null;uniqueIndex:uq_payroll_employee_period,priority:3"`
	BasicSalary     float64        `gorm:"column:basic_salary;not null"`
	Allowances      Allowances     `gorm:"embedded;embeddedPrefix:allowance_"`
	Deductions      Deductions     `gorm:"embedded;embeddedPrefix:deduction_"`
	Bonuses         float64        `gorm:"column:bonuses;not null;default:0"`
	TotalAllowances float64        `gorm:"column:total_allowances;not null;default:0"`
	TotalDeductions float64        `gorm:"column:total_deductions;not null;default:0"`
	GrossSalary     float64        `gorm:"column:gross_salary;not null;default:0"`
	NetSalary       float64        `gorm:"column:net_salary;not null;default:0"`
	PaymentStatus   string         `gorm:"column:payment_status;type:varchar(10);not null;default:Pending"`
	PaymentDate     *time.Time     `gorm:"column:payment_date;type:date"`
	CreatedBy       *uuid.UUID     `gorm:"column:created_by;type:uuid"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Employee        *EmployeeRef   `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FirstName      string    `gorm:"column:first_name"`
	LastName       string    `gorm:"column:last_name"`
	Email          string    `gorm:"column:email"`
	Designation    string    `gorm:"column:designation"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
