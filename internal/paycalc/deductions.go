package paycalc

import "github.com/shopspring/decimal"

// Simplified contribution formulas, not statutory tables. Amounts in centavos.
const (
	sssTier1Ceiling = 3250_00
	sssTier1Amount  = 135_00
	sssTier2Ceiling = 24750_00
	sssCap          = 1125_00

	philhealthCap = 1800_00
	pagibigCap    = 100_00
)

var (
	sssRate        = decimal.NewFromFloat(0.045)
	philhealthRate = decimal.NewFromFloat(0.02)
	pagibigRate    = decimal.NewFromFloat(0.02)
)

// Deductions holds the three mandated-contribution estimates.
type Deductions struct {
	SSS        int64
	PhilHealth int64
	PagIBIG    int64
}

// ManualDeductions are pass-through fields entered by the operator,
// each defaulting to 0.
type ManualDeductions struct {
	Tax         int64
	CashAdvance int64
	Loan        int64
	VAT         int64
	Other       int64
}

// SSS is tiered: a flat floor, a 4.5% band, then a flat cap.
func SSS(gross int64) int64 {
	switch {
	case gross <= sssTier1Ceiling:
		return sssTier1Amount
	case gross <= sssTier2Ceiling:
		return toCentavos(fromCentavos(gross).Mul(sssRate))
	default:
		return sssCap
	}
}

// PhilHealth is 2% of gross, capped.
func PhilHealth(gross int64) int64 {
	v := toCentavos(fromCentavos(gross).Mul(philhealthRate))
	if v > philhealthCap {
		return philhealthCap
	}
	return v
}

// PagIBIG is 2% of gross, capped.
func PagIBIG(gross int64) int64 {
	v := toCentavos(fromCentavos(gross).Mul(pagibigRate))
	if v > pagibigCap {
		return pagibigCap
	}
	return v
}

// MandatedDeductions derives all three estimates from gross pay.
// Pure; the auto-calculate toggle is the caller's concern.
func MandatedDeductions(gross int64) Deductions {
	return Deductions{
		SSS:        SSS(gross),
		PhilHealth: PhilHealth(gross),
		PagIBIG:    PagIBIG(gross),
	}
}

// TotalDeductions sums the eight named deduction components.
func TotalDeductions(d Deductions, m ManualDeductions) int64 {
	return d.SSS + d.PhilHealth + d.PagIBIG +
		m.Tax + m.CashAdvance + m.Loan + m.VAT + m.Other
}

// Net is gross minus total deductions. Negative net pay is a valid
// state (e.g. a large cash advance); clamping is a policy decision
// made by the caller, never here.
func Net(gross, totalDeductions int64) int64 {
	return gross - totalDeductions
}
