package auth

import "github.com/aakash8113/DayFlow/internal/employee"

type SignupRequest struct {
	EmployeeNumber string `json:"employee_number"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Role           string `json:"role" binding:"omitempty,oneof=Employee HR Admin"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	Designation    string `json:"designation"`
	DateOfJoining  string `json:"date_of_joining"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token    string                    `json:"token"`
	Employee employee.EmployeeResponse `json:"employee"`
}
