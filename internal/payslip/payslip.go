// Package payslip membangun dokumen slip gaji dari entry payroll,
// period dan catatan absensi. Assemble murni hitung; render dan
// penyimpanan jadi urusan caller.
package payslip

import (
	"fmt"
	"time"

	"go-payroll/internal/paycalc"
)

// EmployeeInfo is the slice of the employee master a payslip needs.
type EmployeeInfo struct {
	FullName       string
	EmployeeNumber string
	Department     string
	Position       string
	DailyRate      int64
}

type PeriodInfo struct {
	StartDate   time.Time
	EndDate     time.Time
	PaymentDate time.Time
}

// EntryInfo carries the stored payroll figures, all in centavos.
type EntryInfo struct {
	GrossPay        int64
	SSS             int64
	PagIBIG         int64
	PhilHealth      int64
	CashAdvance     int64
	Loan            int64
	VAT             int64
	Other           int64
	TotalDeductions int64
	NetPay          int64
	RateLines       []paycalc.RateLine
}

// AttendanceDay is one explicit attendance record inside the period.
type AttendanceDay struct {
	Date   time.Time
	Status string
}

type Header struct {
	EmployeeName   string `json:"employee_name"`
	EmployeeNumber string `json:"employee_number"`
	Department     string `json:"department,omitempty"`
	Position       string `json:"position,omitempty"`
	PeriodLabel    string `json:"period_label"`
	PaymentDate    string `json:"payment_date"`
}

// DayRow is one calendar day of the period, amounts pre-formatted.
type DayRow struct {
	Date       string `json:"date"`
	Status     string `json:"status"`
	DailyRate  string `json:"daily_rate"`
	Amount     string `json:"amount"`
	Adjustment string `json:"adjustment"`
}

type DeductionLine struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type Document struct {
	Header          Header          `json:"header"`
	Days            []DayRow        `json:"days"`
	Deductions      []DeductionLine `json:"deductions"`
	GrossPay        string          `json:"gross_pay"`
	TotalDeductions string          `json:"total_deductions"`
	NetPay          string          `json:"net_pay"`
	GeneratedAt     time.Time       `json:"generated_at"`

	// GrossDrift adalah selisih gross hasil rakit ulang dengan gross
	// tersimpan. Nol berarti konsisten; selain itu caller wajib log.
	GrossDrift int64 `json:"-"`
}

// Assemble walks every day of the period and resolves each day's status
// with this priority: explicit attendance status, then the rate line's
// own label, then numeric inference against the daily rate, then
// No Record.
func Assemble(emp EmployeeInfo, period PeriodInfo, entry EntryInfo, attendance []AttendanceDay) Document {
	attnByDate := make(map[string]string, len(attendance))
	for _, a := range attendance {
		s := paycalc.NormalizeStatus(a.Status)
		if s != paycalc.StatusNoRecord {
			attnByDate[a.Date.Format("2006-01-02")] = s
		}
	}

	lineByDate := make(map[string]paycalc.RateLine, len(entry.RateLines))
	for _, l := range entry.RateLines {
		lineByDate[l.Date.Format("2006-01-02")] = l
	}

	days := paycalc.PeriodDays(period.StartDate, period.EndDate)
	rows := make([]DayRow, 0, len(days))
	for _, d := range days {
		key := d.Format("2006-01-02")
		line, hasLine := lineByDate[key]

		status := attnByDate[key]
		if status == "" && hasLine {
			status = paycalc.NormalizeStatus(line.Status)
			if status == paycalc.StatusNoRecord {
				status = paycalc.InferStatus(line.Amount+line.Adjustment, emp.DailyRate)
			}
		}
		if status == "" {
			status = paycalc.StatusNoRecord
		}

		rows = append(rows, DayRow{
			Date:       key,
			Status:     status,
			DailyRate:  paycalc.FormatAmount(emp.DailyRate),
			Amount:     paycalc.FormatAmount(line.Amount),
			Adjustment: paycalc.FormatAmount(line.Adjustment),
		})
	}

	return Document{
		Header: Header{
			EmployeeName:   emp.FullName,
			EmployeeNumber: emp.EmployeeNumber,
			Department:     emp.Department,
			Position:       emp.Position,
			PeriodLabel:    periodLabel(period.StartDate, period.EndDate),
			PaymentDate:    period.PaymentDate.Format("2006-01-02"),
		},
		Days:            rows,
		Deductions:      deductionLines(entry),
		GrossPay:        paycalc.FormatAmount(entry.GrossPay),
		TotalDeductions: paycalc.FormatAmount(entry.TotalDeductions),
		NetPay:          paycalc.FormatAmount(entry.NetPay),
		GeneratedAt:     time.Now().UTC(),
		GrossDrift:      paycalc.AggregateGross(entry.RateLines) - entry.GrossPay,
	}
}

// deductionLines renders the deduction block. Urutan baris ini baku,
// jangan diubah tanpa menyesuaikan template slip cetak.
func deductionLines(e EntryInfo) []DeductionLine {
	return []DeductionLine{
		{Label: "SSS", Amount: paycalc.FormatAmount(e.SSS)},
		{Label: "Pag-IBIG", Amount: paycalc.FormatAmount(e.PagIBIG)},
		{Label: "PhilHealth", Amount: paycalc.FormatAmount(e.PhilHealth)},
		{Label: "Cash Advance", Amount: paycalc.FormatAmount(e.CashAdvance)},
		{Label: "Loan", Amount: paycalc.FormatAmount(e.Loan)},
		{Label: "VAT", Amount: paycalc.FormatAmount(e.VAT)},
		{Label: "Others", Amount: paycalc.FormatAmount(e.Other)},
	}
}

func periodLabel(start, end time.Time) string {
	return fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
}
