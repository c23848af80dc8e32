package inflation

import (
	"fmt"
	"time"

	"github.com/meenmo/cpilib/calendar"
	"github.com/meenmo/cpilib/utils"
)

// YoYIndex is a year-on-year inflation index: it quotes the rate of change
// versus one year earlier. With Ratio set the rate is derived as a ratio of
// two stored level fixings; otherwise the series itself holds the published
// year-on-year values.
type YoYIndex struct {
	*Index
	ratio bool
	curve YoYCurve
}

// NewYoYIndex constructs a year-on-year inflation index.
func NewYoYIndex(familyName string, region Region, revised, interpolated, ratio bool,
	frequency Frequency, availabilityLag Tenor, currency string, curve YoYCurve) *YoYIndex {
	return &YoYIndex{
		Index: newIndex(familyName, region, revised, interpolated, frequency, availabilityLag, currency),
		ratio: ratio,
		curve: curve,
	}
}

// Ratio reports whether the index derives its rate from level fixings.
func (y *YoYIndex) Ratio() bool { return y.ratio }

// Curve returns the bound year-on-year curve, which may be nil.
func (y *YoYIndex) Curve() YoYCurve { return y.curve }

// Clone returns an equivalent index bound to a different curve, sharing the
// descriptive attributes and the historical fixing series.
func (y *YoYIndex) Clone(curve YoYCurve) *YoYIndex {
	return &YoYIndex{Index: y.Index, ratio: y.ratio, curve: curve}
}

// NeedsForecast reports whether fixingDate falls on or past the forecast
// frontier. An interpolated fixing needs the next period's value, so its
// frontier sits one full publication period earlier than the flat one.
func (y *YoYIndex) NeedsForecast(fixingDate time.Time) bool {
	today := EvaluationDate()
	todayMinusLag := y.availabilityLag.SubFrom(today)
	limStart, _ := PeriodFor(todayMinusLag, y.frequency)
	lastFix := limStart.AddDate(0, 0, -1)

	flatMustForecastOn := lastFix.AddDate(0, 0, 1)
	interpMustForecastOn := utils.AddMonth(flatMustForecastOn, -y.frequency.Months())

	if y.interpolated {
		return !fixingDate.Before(interpMustForecastOn)
	}
	return !fixingDate.Before(flatMustForecastOn)
}

// Fixing returns the year-on-year rate at fixingDate, reading history or
// delegating to the curve according to NeedsForecast.
func (y *YoYIndex) Fixing(fixingDate time.Time) (float64, error) {
	if y.NeedsForecast(fixingDate) {
		return y.ForecastFixing(fixingDate)
	}

	// Four cases on (ratio, interpolated).
	if y.ratio {
		if y.interpolated {
			return y.ratioInterpolatedFixing(fixingDate)
		}
		return y.ratioFlatFixing(fixingDate)
	}
	if y.interpolated {
		return y.directInterpolatedFixing(fixingDate)
	}
	return y.directFlatFixing(fixingDate)
}

// ratioInterpolatedFixing linearly interpolates levels within the current
// period and within the period one year earlier, then takes the ratio.
func (y *YoYIndex) ratioInterpolatedFixing(fixingDate time.Time) (float64, error) {
	limStart, limEnd := PeriodFor(fixingDate, y.frequency)
	fixMinus1Y := calendar.AdvanceYears(calendar.NONE, fixingDate, -1)
	befStart, befEnd := PeriodFor(fixMinus1Y, y.frequency)

	dp := utils.Days(limStart, limEnd.AddDate(0, 0, 1))
	dpBef := utils.Days(befStart, befEnd.AddDate(0, 0, 1))
	dl := utils.Days(limStart, fixingDate)
	// Potentially off by a day when fixingDate is Feb 29.
	dlBef := utils.Days(befStart, fixMinus1Y)

	limFirst, err := y.seriesAt(limStart)
	if err != nil {
		return 0, err
	}
	limSecond, err := y.seriesAt(limEnd.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	befFirst, err := y.seriesAt(befStart)
	if err != nil {
		return 0, err
	}
	befSecond, err := y.seriesAt(befEnd.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}

	linearNow := limFirst + (limSecond-limFirst)*dl/dp
	linearBef := befFirst + (befSecond-befFirst)*dlBef/dpBef
	return linearNow/linearBef - 1.0, nil
}

// ratioFlatFixing divides the current period's level by the level one year
// earlier.
func (y *YoYIndex) ratioFlatFixing(fixingDate time.Time) (float64, error) {
	limStart, _ := PeriodFor(fixingDate, y.frequency)
	pastFixing, ok := y.series.Get(limStart)
	if !ok {
		return 0, fmt.Errorf("%w: %s fixing for %s",
			ErrMissingFixing, y.Name(), fixingDate.Format(dateKey))
	}
	previousDate := Tenor{1, UnitYears}.SubFrom(fixingDate)
	befStart, _ := PeriodFor(previousDate, y.frequency)
	previousFixing, err := y.seriesAt(befStart)
	if err != nil {
		return 0, err
	}
	return pastFixing/previousFixing - 1.0, nil
}

// directInterpolatedFixing interpolates the stored year-on-year series
// within the current period; there is no year-ago comparison because the
// series already holds rates.
func (y *YoYIndex) directInterpolatedFixing(fixingDate time.Time) (float64, error) {
	limStart, limEnd := PeriodFor(fixingDate, y.frequency)
	dp := utils.Days(limStart, limEnd.AddDate(0, 0, 1))
	dl := utils.Days(limStart, fixingDate)

	limFirst, err := y.seriesAt(limStart)
	if err != nil {
		return 0, err
	}
	limSecond, err := y.seriesAt(limEnd.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	return limFirst + (limSecond-limFirst)*dl/dp, nil
}

// directFlatFixing returns the stored value at the period start as-is.
func (y *YoYIndex) directFlatFixing(fixingDate time.Time) (float64, error) {
	limStart, _ := PeriodFor(fixingDate, y.frequency)
	return y.seriesAt(limStart)
}

func (y *YoYIndex) seriesAt(d time.Time) (float64, error) {
	v, ok := y.series.Get(d)
	if !ok {
		return 0, fmt.Errorf("%w: %s fixing for %s",
			ErrMissingFixing, y.Name(), d.Format(dateKey))
	}
	return v, nil
}

// ForecastFixing queries the curve, snapping to the period start first when
// the index is not interpolated; by internal convention this is consistent
// with how the curve was built.
func (y *YoYIndex) ForecastFixing(fixingDate time.Time) (float64, error) {
	if y.curve == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnboundCurve, y.Name())
	}
	d := fixingDate
	if !y.interpolated {
		d, _ = PeriodFor(fixingDate, y.frequency)
	}
	return y.curve.YoYRate(d, ZeroLag), nil
}
