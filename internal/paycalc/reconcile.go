package paycalc

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical day statuses used across attendance and payslip assembly.
const (
	StatusPresent  = "Present"
	StatusAbsent   = "Absent"
	StatusHalfDay  = "Half Day"
	StatusDayOff   = "Day Off"
	StatusHoliday  = "Holiday"
	StatusLeave    = "Leave"
	StatusNoRecord = "No Record"
)

// statusAliases maps folded input to canonical statuses. Single-letter
// forms mirror the shorthand accepted by the bulk entry sheets.
var statusAliases = map[string]string{
	"p":         StatusPresent,
	"present":   StatusPresent,
	"a":         StatusAbsent,
	"absent":    StatusAbsent,
	"h":         StatusHalfDay,
	"half day":  StatusHalfDay,
	"halfday":   StatusHalfDay,
	"l":         StatusLeave,
	"leave":     StatusLeave,
	"ho":        StatusHoliday,
	"holiday":   StatusHoliday,
	"do":        StatusDayOff,
	"off":       StatusDayOff,
	"day off":   StatusDayOff,
	"dayoff":    StatusDayOff,
	"no record": StatusNoRecord,
}

var titleCaser = cases.Title(language.English)

// NormalizeStatus folds case and whitespace, expands abbreviations and
// title-cases unrecognized non-empty labels as a passthrough. Empty
// input means the day has no record.
func NormalizeStatus(raw string) string {
	folded := strings.ToLower(strings.TrimSpace(raw))
	if folded == "" {
		return StatusNoRecord
	}
	if canonical, ok := statusAliases[folded]; ok {
		return canonical
	}
	return titleCaser.String(folded)
}

// InferStatus derives a day status from a numeric amount when no
// explicit label exists, comparing against the employee's daily rate.
// The 0.99 and 0.45 bands are tolerance for rounding noise; the
// comparison is done in integer math so the boundaries are exact.
func InferStatus(amount, dailyRate int64) string {
	if dailyRate > 0 {
		switch {
		case amount*100 >= dailyRate*99:
			return StatusPresent
		case amount*100 >= dailyRate*45:
			return StatusHalfDay
		}
	}
	if amount <= 0 {
		return StatusAbsent
	}
	return StatusNoRecord
}

// Contribution is the inverse mapping: the pay a status earns for one
// day. Holiday and Leave are paid days. Half days round half-up to the
// centavo, same as the contribution tables.
func Contribution(status string, dailyRate int64) int64 {
	switch status {
	case StatusPresent, StatusHoliday, StatusLeave:
		return dailyRate
	case StatusHalfDay:
		return (dailyRate + 1) / 2
	default:
		// Absent, Day Off, No Record
		return 0
	}
}

// PeriodDays returns every calendar day in [start, end] inclusive, in
// ascending order, each exactly once. An inverted range yields nil.
func PeriodDays(start, end time.Time) []time.Time {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if start.After(end) {
		return nil
	}

	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
