package payroll

// Nominal uang di request berupa string desimal ("1234.50"). Parsing
// lewat paycalc.ParseAmount: kosong atau rusak dianggap 0 supaya draft
// yang belum lengkap tetap bisa disimpan.
type RateEntryInput struct {
	Date       string `json:"date" binding:"required"`
	Amount     string `json:"amount"`
	Adjustment string `json:"adjustment"`
	Status     string `json:"status"`
}

type CreatePayrollEntryRequest struct {
	EmployeeID         string           `json:"employee_id" binding:"required,uuid"`
	PeriodID           string           `json:"period_id" binding:"required,uuid"`
	RateEntries        []RateEntryInput `json:"rate_entries" binding:"dive"`
	AutoCalcDeductions *bool            `json:"auto_calc_deductions"`
	SSS                string           `json:"sss"`
	PhilHealth         string           `json:"philhealth"`
	PagIBIG            string           `json:"pagibig"`
	Tax                string           `json:"tax"`
	CashAdvance        string           `json:"cash_advance"`
	Loan               string           `json:"loan"`
	VAT                string           `json:"vat"`
	Others             string           `json:"others"`
}

type UpdatePayrollEntryRequest struct {
	RateEntries        []RateEntryInput `json:"rate_entries" binding:"dive"`
	AutoCalcDeductions *bool            `json:"auto_calc_deductions"`
	SSS                string           `json:"sss"`
	PhilHealth         string           `json:"philhealth"`
	PagIBIG            string           `json:"pagibig"`
	Tax                string           `json:"tax"`
	CashAdvance        string           `json:"cash_advance"`
	Loan               string           `json:"loan"`
	VAT                string           `json:"vat"`
	Others             string           `json:"others"`
}

type GenerateForPeriodRequest struct {
	PeriodID string `json:"period_id" binding:"required,uuid"`
}

type PayrollEntryFilter struct {
	PeriodID   string `form:"period_id"`
	EmployeeID string `form:"employee_id"`
	Status     string `form:"status"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

type RateEntryResponse struct {
	Date       string `json:"date"`
	Amount     string `json:"amount"`
	Adjustment string `json:"adjustment"`
	Status     string `json:"status,omitempty"`
}

type PayrollEntryResponse struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	PeriodID     string `json:"period_id"`

	GrossPay           string `json:"gross_pay"`
	SSS                string `json:"sss"`
	PhilHealth         string `json:"philhealth"`
	PagIBIG            string `json:"pagibig"`
	Tax                string `json:"tax"`
	CashAdvance        string `json:"cash_advance"`
	Loan               string `json:"loan"`
	VAT                string `json:"vat"`
	Others             string `json:"others"`
	TotalDeductions    string `json:"total_deductions"`
	NetPay             string `json:"net_pay"`
	AutoCalcDeductions bool   `json:"auto_calc_deductions"`
	YTDEarnings        string `json:"ytd_earnings"`
	ThirteenthMonthPay string `json:"thirteenth_month_pay"`

	Status             string              `json:"status"`
	RateEntries        []RateEntryResponse `json:"rate_entries"`
	ApprovedAt         *string             `json:"approved_at,omitempty"`
	PaidAt             *string             `json:"paid_at,omitempty"`
	PayslipURL         *string             `json:"payslip_url,omitempty"`
	PayslipGeneratedAt *string             `json:"payslip_generated_at,omitempty"`
}
