package attendance

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	WorkDate   string  `json:"work_date" binding:"required"`
	Status     string  `json:"status"`
	DailyRate  string  `json:"daily_rate"`
	Adjustment string  `json:"adjustment"`
	Notes      *string `json:"notes"`
}

type BulkCreateAttendanceRequest struct {
	Records []CreateAttendanceRequest `json:"records" binding:"required,min=1,dive"`
}

type UpdateAttendanceRequest struct {
	Status     string  `json:"status" binding:"required"`
	DailyRate  string  `json:"daily_rate"`
	Adjustment string  `json:"adjustment"`
	Notes      *string `json:"notes"`
}

type AttendanceFilter struct {
	EmployeeID string `form:"employee_id"`
	From       string `form:"from"`
	To         string `form:"to"`
	Status     string `form:"status"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"company_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	WorkDate     string  `json:"work_date"`
	Status       string  `json:"status"`
	DailyRate    string  `json:"daily_rate"`
	Adjustment   string  `json:"adjustment"`
	Notes        *string `json:"notes,omitempty"`
}
