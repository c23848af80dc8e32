package inflation

import (
	"time"

	"github.com/meenmo/cpilib/utils"
)

// Frequency enumerates supported publication cadences.
type Frequency string

const (
	Monthly    Frequency = "Monthly"
	Quarterly  Frequency = "Quarterly"
	Semiannual Frequency = "Semiannual"
	Annual     Frequency = "Annual"
)

// Months returns the length of one publication period in months.
func (f Frequency) Months() int {
	switch f {
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case Semiannual:
		return 6
	case Annual:
		return 12
	default:
		panic("inflation: unsupported frequency " + string(f))
	}
}

// PeriodsPerYear returns how many publication periods fit in a year.
func (f Frequency) PeriodsPerYear() int {
	return 12 / f.Months()
}

// PeriodFor returns the inclusive [start, end] date range of the publication
// period containing date. Periods are aligned to January: quarters start in
// Jan/Apr/Jul/Oct, half-years in Jan/Jul.
func PeriodFor(date time.Time, f Frequency) (start, end time.Time) {
	m := int(date.Month())
	startMonth := (m-1)/f.Months()*f.Months() + 1
	start = time.Date(date.Year(), time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, f.Months(), 0).AddDate(0, 0, -1)
	return start, end
}

// YearFraction is the inflation time distance used to compound curve rates.
//
// For an interpolated index the distance runs between the dates themselves;
// for a flat index the fixing is constant over each period, so the distance
// runs between the starts of the periods containing from and to.
func YearFraction(f Frequency, interpolated bool, dayCount string, from, to time.Time) float64 {
	if interpolated {
		return utils.YearFraction(from, to, dayCount)
	}
	fromStart, _ := PeriodFor(from, f)
	toStart, _ := PeriodFor(to, f)
	return utils.YearFraction(fromStart, toStart, dayCount)
}
