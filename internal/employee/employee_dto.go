package employee

type UpdateEmployeeRequest struct {
	Email          *string  `json:"email" binding:"omitempty,email"`
	Role           *string  `json:"role" binding:"omitempty,oneof=Employee HR Admin"`
	FirstName      *string  `json:"first_name"`
	LastName       *string  `json:"last_name"`
	Phone          *string  `json:"phone"`
	Address        *Address `json:"address"`
	DateOfBirth    *string  `json:"date_of_birth"`
	DateOfJoining  *string  `json:"date_of_joining"`
	Department     *string  `json:"department"`
	Designation    *string  `json:"designation"`
	ProfilePicture *string  `json:"profile_picture"`
	IsVerified     *bool    `json:"is_verified"`
	IsActive       *bool    `json:"is_active"`

	PaidLeaveBalance *int `json:"paid_leave_balance" binding:"omitempty,min=0"`
	SickLeaveBalance *int `json:"sick_leave_balance" binding:"omitempty,min=0"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeNumber string  `json:"employee_number"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Phone          string  `json:"phone,omitempty"`
	Address        Address `json:"address"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	DateOfJoining  string  `json:"date_of_joining"`
	Department     string  `json:"department,omitempty"`
	Designation    string  `json:"designation,omitempty"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
	IsVerified     bool    `json:"is_verified"`
	IsActive       bool    `json:"is_active"`

	PaidLeaveBalance int `json:"paid_leave_balance"`
	SickLeaveBalance int `json:"sick_leave_balance"`
}

// EmployeeOption is the lightweight directory entry for form dropdowns.
type EmployeeOption struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Department     string `json:"department,omitempty"`
}
