package employee

type CreateEmployeeRequest struct {
	EmployeeNumber   string `json:"employee_number"`
	FirstName        string `json:"first_name" binding:"required"`
	LastName         string `json:"last_name" binding:"required"`
	Position         string `json:"position"`
	Department       string `json:"department"`
	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"required,oneof=Active Probationary Resigned Terminated"`
	DailyRate        string `json:"daily_rate" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FirstName        string `json:"first_name" binding:"required"`
	LastName         string `json:"last_name" binding:"required"`
	Position         string `json:"position"`
	Department       string `json:"department"`
	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"required,oneof=Active Probationary Resigned Terminated"`
	DailyRate        string `json:"daily_rate" binding:"required"`
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	EmployeeNumber   string `json:"employee_number"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	FullName         string `json:"full_name"`
	Position         string `json:"position,omitempty"`
	Department       string `json:"department,omitempty"`
	HireDate         string `json:"hire_date"`
	EmploymentStatus string `json:"employment_status"`
	DailyRate        string `json:"daily_rate"`
	CompanyID        string `json:"company_id"`
}
