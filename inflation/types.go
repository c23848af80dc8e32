package inflation

import (
	"errors"
	"time"
)

var (
	// ErrMissingFixing is returned when a required historical fixing is
	// absent from the series.
	ErrMissingFixing = errors.New("missing fixing")
	// ErrDuplicateFixing is returned when AddFixing targets a date that
	// already holds a different value and overwrite was not requested.
	ErrDuplicateFixing = errors.New("duplicate fixing")
	// ErrInvalidBaseDate is returned when the curve's base date itself would
	// require forecasting.
	ErrInvalidBaseDate = errors.New("base date fixing unavailable")
	// ErrUnsupportedInterpolation is returned for an unrecognized CPI
	// interpolation tag.
	ErrUnsupportedInterpolation = errors.New("unsupported CPI interpolation")
	// ErrUnboundCurve is returned when a fixing or forecast needs a curve
	// and none is set.
	ErrUnboundCurve = errors.New("no inflation curve set")
)

// ZeroCurve supplies forward-looking absolute price-level rates.
//
// Curves are externally owned; this package only reads them.
type ZeroCurve interface {
	ZeroRate(d time.Time, lag Tenor, extrapolate bool) float64
	BaseDate() time.Time
	ObservationLag() Tenor
	DayCounter() string
}

// YoYCurve supplies forward-looking year-on-year rates.
type YoYCurve interface {
	YoYRate(d time.Time, lag Tenor) float64
	BaseDate() time.Time
	ObservationLag() Tenor
	DayCounter() string
}
