package paycalc

import "time"

// RateLine is one day's earnings inside a payroll period: a base
// amount plus a signed adjustment, both in centavos. Status carries
// the optional explicit attendance label for that date.
type RateLine struct {
	Date       time.Time
	Amount     int64
	Adjustment int64
	Status     string
}

// AggregateGross computes gross pay as Σ(amount + adjustment) over all
// lines. Integer addition keeps the result order-independent and
// deterministic for a fixed multiset of lines.
func AggregateGross(lines []RateLine) int64 {
	var gross int64
	for _, l := range lines {
		gross += l.Amount + l.Adjustment
	}
	return gross
}
