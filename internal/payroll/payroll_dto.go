package payroll

type CreatePayrollRequest struct {
	EmployeeID    string     `json:"employee_id" binding:"required,uuid"`
	Month         int        `json:"month" binding:"required,min=1,max=12"`
	Year          int        `json:"year" binding:"required,min=2000,max=2100"`
	BasicSalary   float64    `json:"basic_salary" binding:"required,gt=0"`
	Allowances    Allowances `json:"allowances"`
	Deductions    Deductions `json:"deductions"`
	Bonuses       float64    `json:"bonuses" binding:"omitempty,gte=0"`
	PaymentStatus string     `json:"payment_status" binding:"omitempty,oneof=Pending Processed Paid"`
}

type UpdatePayrollRequest struct {
	BasicSalary   *float64    `json:"basic_salary" binding:"omitempty,gt=0"`
	Allowances    *Allowances `json:"allowances"`
	Deductions    *Deductions `json:"deductions"`
	Bonuses       *float64    `json:"bonuses" binding:"omitempty,gte=0"`
	PaymentStatus *string     `json:"payment_status" binding:"omitempty,oneof=Pending Processed Paid"`
}

type ListFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Month      int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year       int    `form:"year" binding:"omitempty,min=2000,max=2100"`
}

type PayrollResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	EmployeeName    string     `json:"employee_name,omitempty"`
	Month           int        `json:"month"`
	Year            int        `json:"year"`
	BasicSalary     float64    `json:"basic_salary"`
	Allowances      Allowances `json:"allowances"`
	Deductions      Deductions `json:"deductions"`
	Bonuses         float64    `json:"bonuses"`
	TotalAllowances float64    `json:"total_allowances"`
	TotalDeductions float64    `json:"total_deductions"`
	GrossSalary     float64    `json:"gross_salary"`
	NetSalary       float64    `json:"net_salary"`
	PaymentStatus   string     `json:"payment_status"`
	PaymentDate     *string    `json:"payment_date,omitempty"`
}
