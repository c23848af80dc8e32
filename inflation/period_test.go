package inflation_test

import (
	"math"
	"testing"
	"time"

	"github.com/meenmo/cpilib/inflation"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodFor_Monthly(t *testing.T) {
	t.Parallel()

	start, end := inflation.PeriodFor(date(2020, time.January, 16), inflation.Monthly)
	if !start.Equal(date(2020, time.January, 1)) {
		t.Fatalf("start mismatch: got %s", start.Format("2006-01-02"))
	}
	if !end.Equal(date(2020, time.January, 31)) {
		t.Fatalf("end mismatch: got %s", end.Format("2006-01-02"))
	}

	// Leap February.
	start, end = inflation.PeriodFor(date(2020, time.February, 29), inflation.Monthly)
	if !start.Equal(date(2020, time.February, 1)) || !end.Equal(date(2020, time.February, 29)) {
		t.Fatalf("leap February mismatch: [%s, %s]",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
}

func TestPeriodFor_QuarterlyAndAnnual(t *testing.T) {
	t.Parallel()

	start, end := inflation.PeriodFor(date(2020, time.May, 10), inflation.Quarterly)
	if !start.Equal(date(2020, time.April, 1)) || !end.Equal(date(2020, time.June, 30)) {
		t.Fatalf("quarterly mismatch: [%s, %s]",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	start, end = inflation.PeriodFor(date(2020, time.August, 1), inflation.Semiannual)
	if !start.Equal(date(2020, time.July, 1)) || !end.Equal(date(2020, time.December, 31)) {
		t.Fatalf("semiannual mismatch: [%s, %s]",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	start, end = inflation.PeriodFor(date(2020, time.August, 1), inflation.Annual)
	if !start.Equal(date(2020, time.January, 1)) || !end.Equal(date(2020, time.December, 31)) {
		t.Fatalf("annual mismatch: [%s, %s]",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
}

func TestYearFraction_FlatUsesPeriodStarts(t *testing.T) {
	t.Parallel()

	// Jan 1 to Jun 1 is 152 days regardless of the query days inside the periods.
	got := inflation.YearFraction(inflation.Monthly, false, "ACT/365F",
		date(2020, time.January, 20), date(2020, time.June, 10))
	want := 152.0 / 365.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("flat year fraction: got %v want %v", got, want)
	}
}

func TestYearFraction_InterpolatedUsesDatesThemselves(t *testing.T) {
	t.Parallel()

	got := inflation.YearFraction(inflation.Monthly, true, "ACT/365F",
		date(2020, time.January, 20), date(2020, time.June, 10))
	want := 142.0 / 365.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("interpolated year fraction: got %v want %v", got, want)
	}
}

func TestParseTenor(t *testing.T) {
	t.Parallel()

	tn, err := inflation.ParseTenor("3M")
	if err != nil {
		t.Fatalf("ParseTenor error: %v", err)
	}
	if tn.N != 3 || tn.Unit != inflation.UnitMonths {
		t.Fatalf("ParseTenor mismatch: %+v", tn)
	}

	if _, err := inflation.ParseTenor("3X"); err == nil {
		t.Fatal("expected error for bad unit")
	}
	if _, err := inflation.ParseTenor(""); err == nil {
		t.Fatal("expected error for empty tenor")
	}
}

func TestTenorArithmetic_ClampsMonthEnd(t *testing.T) {
	t.Parallel()

	tn := inflation.Tenor{N: 1, Unit: inflation.UnitMonths}
	got := tn.AddTo(date(2020, time.January, 31))
	if !got.Equal(date(2020, time.February, 29)) {
		t.Fatalf("AddTo: got %s", got.Format("2006-01-02"))
	}

	got = tn.SubFrom(date(2020, time.March, 31))
	if !got.Equal(date(2020, time.February, 29)) {
		t.Fatalf("SubFrom: got %s", got.Format("2006-01-02"))
	}
}
