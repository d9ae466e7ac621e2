package paycalc_test

import (
	"testing"
	"time"

	"go-payroll/internal/paycalc"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregateGross_Deterministic(t *testing.T) {
	lines := []paycalc.RateLine{
		{Date: day("2025-03-18"), Amount: 600_00},
		{Date: day("2025-03-19"), Amount: 600_00, Adjustment: 50_00},
		{Date: day("2025-03-20"), Amount: 600_00, Adjustment: -25_00},
		{Date: day("2025-03-21"), Amount: 0},
	}

	first := paycalc.AggregateGross(lines)
	assert.Equal(t, int64(1825_00), first)

	// same multiset, different order
	reversed := []paycalc.RateLine{lines[3], lines[2], lines[1], lines[0]}
	assert.Equal(t, first, paycalc.AggregateGross(reversed))

	// repeated evaluation never drifts
	assert.Equal(t, first, paycalc.AggregateGross(lines))
}

func TestAggregateGross_Empty(t *testing.T) {
	assert.Equal(t, int64(0), paycalc.AggregateGross(nil))
}

func TestAggregateGross_NegativeAdjustments(t *testing.T) {
	lines := []paycalc.RateLine{
		{Amount: 600_00, Adjustment: -600_00},
		{Amount: 600_00, Adjustment: -700_00},
	}
	assert.Equal(t, int64(-100_00), paycalc.AggregateGross(lines))
}
