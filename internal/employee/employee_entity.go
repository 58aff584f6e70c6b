package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is embedded into the employees table as address_* columns.
type Address struct {
	Street  string `gorm:"column:street;type:varchar(255)" json:"street"`
	City    string `gorm:"column:city;type:varchar(120)" json:"city"`
	State   string `gorm:"column:state;type:varchar(120)" json:"state"`
	ZipCode string `gorm:"column:zip_code;type:varchar(20)" json:"zip_code"`
	Country string `gorm:"column:country;type:varchar(120)" json:"country"`
}

type Employee struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string    `gorm:"column:employee_number;type:varchar(30);uniqueIndex:uq_employee_number;not null"`
	Email          string    `gorm:"column:email;type:varchar(255);uniqueIndex:uq_employee_email;not null"`
	PasswordHash   string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Role           string    `gorm:"column:role;type:varchar(20);not null;default:'Employee'"`

	FirstName string  `gorm:"column:first_name;type:varchar(120);not null"`
	LastName  string  `gorm:"column:last_name;type:varchar(120);not null"`
	Phone     string  `gorm:"column:phone;type:varchar(30)"`
	Address   Address `gorm:"embedded;embeddedPrefix:address_"`

	DateOfBirth   *time.Time `gorm:"column:date_of_birth;type:date"`
	DateOfJoining time.Time  `gorm:"column:date_of_joining;type:date;not null"`
	Department    string     `gorm:"column:department;type:varchar(120)"`
	Designation   string     `gorm:"column:designation;type:varchar(120)"`

	ProfilePicture string `gorm:"column:profile_picture;type:text"`
	IsVerified     bool   `gorm:"column:is_verified;not null;default:false"`
	IsActive       bool   `gorm:"column:is_active;not null;default:true"`

	// Remaining leave day counters, decremented on leave approval.
	PaidLeaveBalance int `gorm:"column:paid_leave_balance;not null;default:20"`
	SickLeaveBalance int `gorm:"column:sick_leave_balance;not null;default:10"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
