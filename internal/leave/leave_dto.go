package leave

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=Paid Sick Unpaid"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" binding:"required"`
}

type ReviewLeaveRequest struct {
	Status         string `json:"status" binding:"required,oneof=Approved Rejected"`
	ReviewComments string `json:"review_comments"`
}

type ListFilter struct {
	Status     string `form:"status" binding:"omitempty,oneof=Pending Approved Rejected"`
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
}

type LeaveResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	LeaveType      string  `json:"leave_type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	NumberOfDays   int     `json:"number_of_days"`
	Reason         string  `json:"reason"`
	Status         string  `json:"status"`
	ReviewedBy     *string `json:"reviewed_by,omitempty"`
	ReviewedAt     *string `json:"reviewed_at,omitempty"`
	ReviewComments string  `json:"review_comments,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
