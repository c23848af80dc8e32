package inflation

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/cpilib/utils"
)

// ZeroIndex is an absolute price-level inflation index (fixing = level),
// bound to a zero-inflation curve for forecasting.
type ZeroIndex struct {
	*Index
	curve ZeroCurve
}

// NewZeroIndex constructs a zero inflation index. The curve may be nil for a
// purely historical index; forecasting then fails with ErrUnboundCurve.
func NewZeroIndex(familyName string, region Region, revised, interpolated bool,
	frequency Frequency, availabilityLag Tenor, currency string, curve ZeroCurve) *ZeroIndex {
	return &ZeroIndex{
		Index: newIndex(familyName, region, revised, interpolated, frequency, availabilityLag, currency),
		curve: curve,
	}
}

// Curve returns the bound zero-inflation curve, which may be nil.
func (z *ZeroIndex) Curve() ZeroCurve { return z.curve }

// Clone returns an equivalent index bound to a different curve. The clone
// shares the descriptive attributes and the historical fixing series.
func (z *ZeroIndex) Clone(curve ZeroCurve) *ZeroIndex {
	return &ZeroIndex{Index: z.Index, curve: curve}
}

// NeedsForecast classifies fixingDate: false means the fixing must be read
// from the historical series, true means it must be forecast from the curve.
//
// Stored fixings are always non-interpolated. If an interpolated fixing is
// required then the availability lag plus one full publication period must
// have passed before history can be used, because interpolation needs the
// next period's fixing too.
func (z *ZeroIndex) NeedsForecast(fixingDate time.Time) bool {
	today := EvaluationDate()
	todayMinusLag := z.availabilityLag.SubFrom(today)

	knownStart, _ := PeriodFor(todayMinusLag, z.frequency)
	historicalFixingKnown := knownStart.AddDate(0, 0, -1)

	latestNeeded := fixingDate
	if z.interpolated {
		start, _ := PeriodFor(fixingDate, z.frequency)
		if fixingDate.After(start) {
			latestNeeded = utils.AddMonth(fixingDate, z.frequency.Months())
		}
	}

	if !latestNeeded.After(historicalFixingKnown) {
		// Well before the availability lag: the fixing was provided.
		return false
	}
	if latestNeeded.After(today) {
		// Cannot be available no matter what the series holds.
		return true
	}
	// Ambiguous window: the fixing might already be there, so probe the
	// series at the first day of the month.
	_, ok := z.series.Get(utils.MonthStart(latestNeeded))
	return !ok
}

// Fixing returns the index level at fixingDate, reading the historical
// series or forecasting from the curve according to NeedsForecast.
func (z *ZeroIndex) Fixing(fixingDate time.Time) (float64, error) {
	if z.NeedsForecast(fixingDate) {
		return z.ForecastFixing(fixingDate)
	}

	start, end := PeriodFor(fixingDate, z.frequency)
	i1, ok := z.series.Get(start)
	if !ok {
		return 0, fmt.Errorf("%w: %s fixing for %s",
			ErrMissingFixing, z.Name(), start.Format(dateKey))
	}
	if !z.interpolated || !fixingDate.After(start) {
		return i1, nil
	}

	nextStart := end.AddDate(0, 0, 1)
	i2, ok := z.series.Get(nextStart)
	if !ok {
		return 0, fmt.Errorf("%w: %s fixing for %s",
			ErrMissingFixing, z.Name(), nextStart.Format(dateKey))
	}
	w, err := z.interpolationWeight(fixingDate)
	if err != nil {
		return 0, err
	}
	return i1 + (i2-i1)*w, nil
}

// interpolationWeight computes the linear weight for fixingDate using the
// non-lagged period: the period containing fixingDate advanced by the
// curve's observation lag, not the fixing date's own period.
func (z *ZeroIndex) interpolationWeight(fixingDate time.Time) (float64, error) {
	if z.curve == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnboundCurve, z.Name())
	}
	observationDate := z.curve.ObservationLag().AddTo(fixingDate)
	start, end := PeriodFor(observationDate, z.frequency)
	daysInPeriod := utils.Days(start, end.AddDate(0, 0, 1))
	return utils.Days(start, observationDate) / daysInPeriod, nil
}

// ForecastFixing compounds the base-date fixing at the curve's zero rate.
// The curve is relative to the fixing value at its base date, which must
// itself be historically resolvable.
func (z *ZeroIndex) ForecastFixing(fixingDate time.Time) (float64, error) {
	if z.curve == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnboundCurve, z.Name())
	}
	baseDate := z.curve.BaseDate()
	if z.NeedsForecast(baseDate) {
		return 0, fmt.Errorf("%w: %s index fixing at base date %s is not available",
			ErrInvalidBaseDate, z.Name(), baseDate.Format(dateKey))
	}
	baseFixing, err := z.Fixing(baseDate)
	if err != nil {
		return 0, err
	}

	start, end := PeriodFor(fixingDate, z.frequency)

	z1 := z.curve.ZeroRate(start, ZeroLag, false)
	t1 := YearFraction(z.frequency, z.interpolated, z.curve.DayCounter(), baseDate, start)
	i1 := baseFixing * math.Pow(1.0+z1, t1)

	if !z.interpolated || !fixingDate.After(start) {
		return i1, nil
	}

	nextStart := end.AddDate(0, 0, 1)
	z2 := z.curve.ZeroRate(nextStart, ZeroLag, false)
	t2 := YearFraction(z.frequency, z.interpolated, z.curve.DayCounter(), baseDate, nextStart)
	i2 := baseFixing * math.Pow(1.0+z2, t2)

	w, err := z.interpolationWeight(fixingDate)
	if err != nil {
		return 0, err
	}
	return i1 + (i2-i1)*w, nil
}
