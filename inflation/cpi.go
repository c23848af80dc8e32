package inflation

import (
	"fmt"
	"time"

	"github.com/meenmo/cpilib/utils"
)

// InterpolationType selects the lagged-CPI interpolation convention used by
// consumers of a zero inflation index.
type InterpolationType string

const (
	// InterpAsIndex uses the index's own convention: Linear when the index
	// is interpolated, Flat otherwise.
	InterpAsIndex InterpolationType = "AsIndex"
	// InterpFlat snaps to the start of the lagged fixing period.
	InterpFlat InterpolationType = "Flat"
	// InterpLinear interpolates linearly across the observation period.
	InterpLinear InterpolationType = "Linear"
)

// EffectiveInterpolation resolves InterpAsIndex against the index's own
// interpolation flag.
func EffectiveInterpolation(index *ZeroIndex, typ InterpolationType) InterpolationType {
	if typ == InterpAsIndex {
		if index.Interpolated() {
			return InterpLinear
		}
		return InterpFlat
	}
	return typ
}

// LaggedFixing converts a payment/valuation date into a single CPI fixing by
// applying observationLag and the requested interpolation convention.
func LaggedFixing(index *ZeroIndex, date time.Time, observationLag Tenor,
	typ InterpolationType) (float64, error) {

	switch typ {
	case InterpAsIndex:
		return index.Fixing(observationLag.SubFrom(date))

	case InterpFlat:
		fixStart, _ := PeriodFor(observationLag.SubFrom(date), index.Frequency())
		return index.Fixing(fixStart)

	case InterpLinear:
		fixStart, fixEnd := PeriodFor(observationLag.SubFrom(date), index.Frequency())
		interpStart, interpEnd := PeriodFor(date, index.Frequency())

		if date.Equal(interpStart) {
			// No interpolation on the period boundary. This avoids asking
			// for the fixing at the end of the period, which might need a
			// forecast curve to be set.
			return index.Fixing(fixStart)
		}

		i0, err := index.Fixing(fixStart)
		if err != nil {
			return 0, err
		}
		i1, err := index.Fixing(fixEnd.AddDate(0, 0, 1))
		if err != nil {
			return 0, err
		}
		w := utils.Days(interpStart, date) / utils.Days(interpStart, interpEnd.AddDate(0, 0, 1))
		return i0 + (i1-i0)*w, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedInterpolation, string(typ))
	}
}
