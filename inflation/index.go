package inflation

import (
	"fmt"
	"time"

	"github.com/meenmo/cpilib/calendar"
)

// Region identifies the economy an index covers.
type Region struct {
	Name string
	Code string
}

// Index holds the descriptive attributes shared by all inflation indices
// together with the historical fixing series.
//
// Descriptive attributes are immutable after construction; the series grows
// monotonically via AddFixing.
type Index struct {
	familyName      string
	region          Region
	revised         bool
	interpolated    bool
	frequency       Frequency
	availabilityLag Tenor
	currency        string
	series          *Series
}

func newIndex(familyName string, region Region, revised, interpolated bool,
	frequency Frequency, availabilityLag Tenor, currency string) *Index {
	idx := &Index{
		familyName:      familyName,
		region:          region,
		revised:         revised,
		interpolated:    interpolated,
		frequency:       frequency,
		availabilityLag: availabilityLag,
		currency:        currency,
		series:          NewSeries(),
	}
	RegisterObserver(idx)
	RegisterFixingObserver(idx.Name(), idx)
	return idx
}

// Name is the region name joined with the family name, e.g. "EU HICP".
func (i *Index) Name() string {
	return i.region.Name + " " + i.familyName
}

func (i *Index) FamilyName() string     { return i.familyName }
func (i *Index) Region() Region         { return i.region }
func (i *Index) Revised() bool          { return i.revised }
func (i *Index) Interpolated() bool     { return i.interpolated }
func (i *Index) Frequency() Frequency   { return i.frequency }
func (i *Index) AvailabilityLag() Tenor { return i.availabilityLag }
func (i *Index) Currency() string       { return i.currency }

// TimeSeries exposes the historical fixing series.
func (i *Index) TimeSeries() *Series { return i.series }

// FixingCalendar returns the calendar fixings are published on. Inflation
// indices publish on a fixed schedule, so this is the NONE calendar.
func (i *Index) FixingCalendar() calendar.CalendarID {
	return calendar.NONE
}

// Update implements Observer. Classification reads the evaluation date and
// the series lazily, so there is nothing to invalidate here; the hook keeps
// the registration relationship explicit.
func (i *Index) Update() {}

// AddFixing stores value for the whole publication period containing
// fixingDate: the single submitted value is replicated across every calendar
// day of the period so point lookups by any day succeed.
//
// If any target day already holds a different value and forceOverwrite is
// false, nothing is written and ErrDuplicateFixing is returned.
func (i *Index) AddFixing(fixingDate time.Time, value float64, forceOverwrite bool) error {
	start, end := PeriodFor(fixingDate, i.frequency)

	if !forceOverwrite {
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if old, ok := i.series.Get(d); ok && old != value {
				return fmt.Errorf("%w: %s already has value %v for %s",
					ErrDuplicateFixing, i.Name(), old, d.Format(dateKey))
			}
		}
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		i.series.Put(d, value)
	}
	return nil
}
