package attendance

type CheckInRequest struct {
	Remarks string `json:"remarks"`
}

type CreateAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Status     string `json:"status" binding:"omitempty,oneof=Present Absent HalfDay Leave"`
	CheckIn    string `json:"check_in" binding:"omitempty"`
	CheckOut   string `json:"check_out" binding:"omitempty"`
	Remarks    string `json:"remarks"`
}

type UpdateAttendanceRequest struct {
	Status   *string `json:"status" binding:"omitempty,oneof=Present Absent HalfDay Leave"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Remarks  *string `json:"remarks"`
}

type ListFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	StartDate  string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	WorkHours    float64 `json:"work_hours"`
	Remarks      string  `json:"remarks,omitempty"`
}
