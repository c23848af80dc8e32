package calendar

import "time"

// CalendarID identifies a holiday calendar.
type CalendarID string

const (
	// NONE is the null calendar: every calendar day is a good day.
	// Inflation indices publish on a fixed schedule irrespective of
	// business days, so their fixing calendar is NONE.
	NONE CalendarID = "NONE"
	USD  CalendarID = "USD"
)

var usdHolidays = map[string]struct{}{}

func isHoliday(cal CalendarID, t time.Time) bool {
	key := t.Format("2006-01-02")
	switch cal {
	case USD:
		_, ok := usdHolidays[key]
		return ok
	default:
		return false
	}
}

// IsBusinessDay checks weekends and holiday sets. NONE accepts every day.
func IsBusinessDay(cal CalendarID, t time.Time) bool {
	if cal == NONE {
		return true
	}
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !isHoliday(cal, t)
}

// Adjust applies Modified Following.
func Adjust(cal CalendarID, t time.Time) time.Time {
	origMonth := t.Month()
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	if t.Month() != origMonth {
		t = t.AddDate(0, 0, -1)
		for !IsBusinessDay(cal, t) {
			t = t.AddDate(0, 0, -1)
		}
	}
	return t
}

// AdvanceYears adds years with end-of-month clamping (Feb 29 rolls back to
// Feb 28) and then applies Modified Following. On the NONE calendar the
// adjustment is a no-op, which matches the year-ago date convention used by
// year-on-year inflation fixings.
func AdvanceYears(cal CalendarID, t time.Time, years int) time.Time {
	target := t.AddDate(years, 0, 0)
	if target.Month() != t.Month() {
		// Go normalized past month end; roll back to the last day.
		target = time.Date(target.Year(), target.Month(), 0, 0, 0, 0, 0, time.UTC)
	}
	return Adjust(cal, target)
}
