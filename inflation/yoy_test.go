package inflation_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/meenmo/cpilib/inflation"
)

// recordingYoYCurve returns a constant rate and remembers the queried date.
type recordingYoYCurve struct {
	rate    float64
	base    time.Time
	queried *time.Time
}

func (c recordingYoYCurve) YoYRate(d time.Time, lag inflation.Tenor) float64 {
	*c.queried = d
	return c.rate
}
func (c recordingYoYCurve) BaseDate() time.Time             { return c.base }
func (c recordingYoYCurve) ObservationLag() inflation.Tenor { return inflation.ZeroLag }
func (c recordingYoYCurve) DayCounter() string              { return "ACT/365F" }

func newTestYoYIndex(interpolated, ratio bool, curve inflation.YoYCurve) *inflation.YoYIndex {
	return inflation.NewYoYIndex(
		"YY_HICP",
		inflation.Region{Name: "EU", Code: "EU"},
		false,
		interpolated,
		ratio,
		inflation.Monthly,
		inflation.Tenor{N: 1, Unit: inflation.UnitMonths},
		"EUR",
		curve,
	)
}

func TestYoYFixing_RatioInterpolated(t *testing.T) {
	inflation.SetEvaluationDate(date(2020, time.April, 15))

	idx := newTestYoYIndex(true, true, nil)
	for _, f := range []struct {
		d time.Time
		v float64
	}{
		{date(2019, time.January, 1), 100.0},
		{date(2019, time.February, 1), 101.0},
		{date(2020, time.January, 1), 110.0},
		{date(2020, time.February, 1), 112.0},
	} {
		if err := idx.AddFixing(f.d, f.v, false); err != nil {
			t.Fatalf("AddFixing error: %v", err)
		}
	}

	got, err := idx.Fixing(date(2020, time.January, 16))
	if err != nil {
		t.Fatalf("Fixing error: %v", err)
	}
	// dl = dlBef = 15 in 31-day January periods.
	linearNow := 110.0 + (112.0-110.0)*15.0/31.0
	linearBef := 100.0 + (101.0-100.0)*15.0/31.0
	want := linearNow/linearBef - 1.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("ratio interpolated: got %v want %v", got, want)
	}
	if math.Abs(got-0.104333868378812) > 1e-12 {
		t.Fatalf("ratio interpolated: got %v want 0.104333868378812", got)
	}
}

func TestYoYFixing_RatioFlat(t *testing.T) {
	inflation.SetEvaluationDate(date(2020, time.April, 15))

	idx := newTestYoYIndex(false, true, nil)
	if err := idx.AddFixing(date(2019, time.January, 10), 100.0, false); err != nil {
		t.Fatalf("AddFixing error: %v", err)
	}
	if err := idx.AddFixing(date(2020, time.January, 10), 110.0, false); err != nil {
		t.Fatalf("AddFixing error: %v", err)
	}

	got, err := idx.Fixing(date(2020, time.January, 20))
	if err != nil {
		t.Fatalf("Fixing error: %v", err)
	}
	if math.Abs(got-0.10) > 1e-12 {
		t.Fatalf("ratio flat: got %v want 0.10", got)
	}
}

func TestYoYFixing_DirectInterpolated(t *testing.T) {
	inflation.SetEvaluationDate(date(2020, time.April, 15))

	// Series holds year-on-year rates directly.
	idx := newTestYoYIndex(true, false, nil)
	if err := idx.AddFixing(date(2020, time.January, 1), 0.02, false); err != nil {
		t.Fatalf("AddFixing error: %v", err)
	}
	if err := idx.AddFixing(date(2020, time.February, 1), 0.03, false); err != nil {
		t.Fatalf("AddFixing error: %v", err)
	}

	got, err := idx.Fixing(date(2020, time.January, 16))
	if err != nil {
		t.Fatalf("Fixing error: %v", err)
	}
	want := 0.02 + (0.03-0.02)*15.0/31.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("direct interpolated: got %v want %v", got, want)
	}
}

func TestYoYFixing_DirectFlat(t *testing.T) {
	inflation.SetEvaluationDate(date(2020, time.April, 15))

	idx := newTestYoYIndex(false, false, nil)
	if err := idx.AddFixing(date(2020, time.January, 1), 0.02, false); err != nil {
		t.Fatalf("AddFixing error: %v", err)
	}

	for _, d := range []time.Time{
		date(2020, time.January, 1),
		date(2020, time.January, 17),
		date(2020, time.January, 31),
	} {
		got, err := idx.Fixing(d)
		if err != nil {
			t.Fatalf("Fixing(%s) error: %v", d.Format("2006-01-02"), err)
		}
		if got != 0.02 {
			t.Fatalf("direct flat at %s: got %v want 0.02", d.Format("2006-01-02"), got)
		}
	}
}

func TestYoYNeedsForecast_InterpolatedFrontierIsEarlier(t *testing.T) {
	inflation.SetEvaluationDate(date(2020, time.March, 15))

	// lastFix = Jan 31, flat frontier Feb 1, interpolated frontier Jan 1.
	flat := newTestYoYIndex(false, false, nil)
	interp := newTestYoYIndex(true, false, nil)

	if flat.NeedsForecast(date(2020, time.January, 31)) {
		t.Fatal("flat index should use history through Jan 31")
	}
	if !flat.NeedsForecast(date(2020, time.February, 1)) {
		t.Fatal("flat index should forecast from Feb 1")
	}

	if interp.NeedsForecast(date(2019, time.December, 31)) {
		t.Fatal("interpolated index should use history through Dec 31")
	}
	if !interp.NeedsForecast(date(2020, time.January, 1)) {
		t.Fatal("interpolated index should forecast from Jan 1")
	}
}

func TestYoYForecast_SnapsToPeriodStartWhenFlat(t *testing.T) {
	inflation.SetEvaluationDate(date(2020, time.March, 15))

	var queriedFlat, queriedInterp time.Time
	flat := newTestYoYIndex(false, false,
		recordingYoYCurve{rate: 0.025, base: date(2020, time.January, 1), queried: &queriedFlat})
	interp := newTestYoYIndex(true, false,
		recordingYoYCurve{rate: 0.025, base: date(2020, time.January, 1), queried: &queriedInterp})

	got, err := flat.Fixing(date(2020, time.August, 17))
	if err != nil {
		t.Fatalf("flat forecast error: %v", err)
	}
	if got != 0.025 {
		t.Fatalf("flat forecast: got %v want 0.025", got)
	}
	if !queriedFlat.Equal(date(2020, time.August, 1)) {
		t.Fatalf("flat forecast queried %s, want period start 2020-08-01",
			queriedFlat.Format("2006-01-02"))
	}

	if _, err := interp.Fixing(date(2020, time.August, 17)); err != nil {
		t.Fatalf("interpolated forecast error: %v", err)
	}
	if !queriedInterp.Equal(date(2020, time.August, 17)) {
		t.Fatalf("interpolated forecast queried %s, want the date itself",
			queriedInterp.Format("2006-01-02"))
	}
}

func TestYoYFixing_MissingYearAgoFixing(t *testing.T) {
	inflation.SetEvaluationDate(date(2020, time.April, 15))

	idx := newTestYoYIndex(false, true, nil)
	if err := idx.AddFixing(date(2020, time.January, 10), 110.0, false); err != nil {
		t.Fatalf("AddFixing error: %v", err)
	}

	_, err := idx.Fixing(date(2020, time.January, 20))
	if !errors.Is(err, inflation.ErrMissingFixing) {
		t.Fatalf("expected ErrMissingFixing, got %v", err)
	}
}

func TestYoYForecast_UnboundCurve(t *testing.T) {
	inflation.SetEvaluationDate(date(2020, time.March, 15))

	idx := newTestYoYIndex(false, false, nil)
	_, err := idx.Fixing(date(2020, time.August, 1))
	if !errors.Is(err, inflation.ErrUnboundCurve) {
		t.Fatalf("expected ErrUnboundCurve, got %v", err)
	}
}

func TestYoYClone_SharesSeries(t *testing.T) {
	inflation.SetEvaluationDate(date(2020, time.April, 15))

	idx := newTestYoYIndex(false, false, nil)
	if err := idx.AddFixing(date(2020, time.January, 1), 0.02, false); err != nil {
		t.Fatalf("AddFixing error: %v", err)
	}

	var queried time.Time
	clone := idx.Clone(recordingYoYCurve{rate: 0.03, base: date(2020, time.January, 1), queried: &queried})
	if clone.Ratio() != idx.Ratio() || clone.Name() != idx.Name() {
		t.Fatal("clone lost descriptive attributes")
	}
	v, err := clone.Fixing(date(2020, time.January, 15))
	if err != nil {
		t.Fatalf("clone Fixing error: %v", err)
	}
	if v != 0.02 {
		t.Fatalf("clone does not share fixings: got %v", v)
	}
}
