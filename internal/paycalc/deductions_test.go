package paycalc_test

import (
	"testing"

	"go-payroll/internal/paycalc"

	"github.com/stretchr/testify/assert"
)

func TestSSS_Tiers(t *testing.T) {
	// flat floor up to 3,250.00
	assert.Equal(t, int64(135_00), paycalc.SSS(3250_00))
	assert.Equal(t, int64(135_00), paycalc.SSS(0))

	// 4.5% band: 3,251.00 * 0.045 = 146.295 -> 146.30 half-up
	assert.Equal(t, int64(146_30), paycalc.SSS(3251_00))

	// band ceiling: 24,750.00 * 0.045 = 1,113.75
	assert.Equal(t, int64(1113_75), paycalc.SSS(24750_00))

	// flat cap above the band
	assert.Equal(t, int64(1125_00), paycalc.SSS(24751_00))
	assert.Equal(t, int64(1125_00), paycalc.SSS(100000_00))
}

func TestPhilHealth_Cap(t *testing.T) {
	assert.Equal(t, int64(60_00), paycalc.PhilHealth(3000_00))
	assert.Equal(t, int64(1800_00), paycalc.PhilHealth(100000_00))
}

func TestPagIBIG_Cap(t *testing.T) {
	assert.Equal(t, int64(60_00), paycalc.PagIBIG(3000_00))
	assert.Equal(t, int64(100_00), paycalc.PagIBIG(100000_00))
}

func TestMandatedDeductions_WeeklyScenario(t *testing.T) {
	// daily rate 600.00, 5 Present days + 2 Day Off, no adjustments
	gross := int64(3000_00)

	d := paycalc.MandatedDeductions(gross)

	assert.Equal(t, int64(135_00), d.SSS) // 3000 <= 3250 -> flat 135
	assert.Equal(t, int64(60_00), d.PhilHealth)
	assert.Equal(t, int64(60_00), d.PagIBIG)

	total := paycalc.TotalDeductions(d, paycalc.ManualDeductions{})
	assert.Equal(t, int64(255_00), total)
	assert.Equal(t, int64(2745_00), paycalc.Net(gross, total))
}

func TestTotalDeductions_SumsAllEightComponents(t *testing.T) {
	d := paycalc.Deductions{SSS: 135_00, PhilHealth: 60_00, PagIBIG: 60_00}
	m := paycalc.ManualDeductions{
		Tax:         100_00,
		CashAdvance: 500_00,
		Loan:        250_00,
		VAT:         12_00,
		Other:       1_50,
	}

	assert.Equal(t, int64(1118_50), paycalc.TotalDeductions(d, m))
}

func TestNet_NegativeAllowed(t *testing.T) {
	// a cash advance larger than gross is a valid, if unusual, state
	assert.Equal(t, int64(-500_00), paycalc.Net(1000_00, 1500_00))
}
