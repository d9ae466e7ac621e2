// Package paycalc is the single source of truth for payroll arithmetic:
// amount parsing, mandated contribution estimates, gross/net aggregation
// and attendance status reconciliation. Semua nilai uang disimpan dalam
// satuan terkecil (sen) untuk hindari floating error.
package paycalc

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a user-entered amount string to centavos.
// Empty or malformed input coerces to 0 so a partially-filled period
// stays usable. Negative values are preserved (tardiness adjustments).
func ParseAmount(v string) int64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return 0
	}

	return toCentavos(d)
}

// FormatAmount renders centavos with exactly 2 decimal places.
func FormatAmount(centavos int64) string {
	return decimal.NewFromInt(centavos).Shift(-2).StringFixed(2)
}

// toCentavos rounds to 2 decimal places (half-up) before shifting,
// so sub-centavo noise never reaches storage.
func toCentavos(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}

func fromCentavos(centavos int64) decimal.Decimal {
	return decimal.NewFromInt(centavos).Shift(-2)
}
