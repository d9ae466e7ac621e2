package period

type CreatePeriodRequest struct {
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	PaymentDate string `json:"payment_date" binding:"required"`
}

type UpdatePeriodRequest struct {
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	PaymentDate string `json:"payment_date" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=open processing closed"`
}

type PeriodResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PaymentDate string `json:"payment_date"`
	Status      string `json:"status"`
}
