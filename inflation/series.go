package inflation

import "time"

const dateKey = "2006-01-02"

// Series is a sparse date-keyed store of historical fixings.
//
// A missing date is reported through the ok flag; callers must never treat
// a missing entry as zero.
type Series struct {
	values map[string]float64
}

// NewSeries returns an empty fixing series.
func NewSeries() *Series {
	return &Series{values: make(map[string]float64)}
}

// Put stores value at date, overwriting any existing entry.
func (s *Series) Put(date time.Time, value float64) {
	s.values[date.Format(dateKey)] = value
}

// Get returns the fixing stored at date, if any.
func (s *Series) Get(date time.Time) (float64, bool) {
	v, ok := s.values[date.Format(dateKey)]
	return v, ok
}

// Len returns the number of stored daily entries.
func (s *Series) Len() int {
	return len(s.values)
}
