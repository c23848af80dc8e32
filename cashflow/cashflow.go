package cashflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/meenmo/cpilib/inflation"
)

var (
	// ErrNilCurve is returned when a required curve argument is nil.
	ErrNilCurve = errors.New("nil curve")
)

// DiscountCurve provides discount factors for valuation.
type DiscountCurve interface {
	DF(t time.Time) float64
}

// Flow is a single dated cash payment.
//
// Amounts are in currency units, not price-per-100.
type Flow struct {
	Date   time.Time
	Amount float64
}

// CPIFlow is an inflation-indexed payment: the notional is scaled by the
// ratio of the lagged CPI fixing at the pay date to the base CPI.
type CPIFlow struct {
	Index          *inflation.ZeroIndex
	PayDate        time.Time
	Notional       float64
	BaseCPI        float64
	ObservationLag inflation.Tenor
	Interpolation  inflation.InterpolationType
}

// Amount resolves the indexed payment via the lagged-CPI convention.
func (f CPIFlow) Amount() (float64, error) {
	if f.BaseCPI == 0 {
		return 0, fmt.Errorf("CPIFlow: zero base CPI for %s payment on %s",
			f.Index.Name(), f.PayDate.Format("2006-01-02"))
	}
	fixing, err := inflation.LaggedFixing(f.Index, f.PayDate, f.ObservationLag, f.Interpolation)
	if err != nil {
		return 0, err
	}
	return f.Notional * fixing / f.BaseCPI, nil
}

// Resolve converts CPI-linked payments into plain dated flows.
func Resolve(flows []CPIFlow) ([]Flow, error) {
	out := make([]Flow, 0, len(flows))
	for _, f := range flows {
		amt, err := f.Amount()
		if err != nil {
			return nil, err
		}
		out = append(out, Flow{Date: f.PayDate, Amount: amt})
	}
	return out, nil
}

// NPV discounts every flow strictly after settlement back to settlement and
// sums the results.
func NPV(flows []Flow, curve DiscountCurve, settlement time.Time) (float64, error) {
	if curve == nil {
		return 0, ErrNilCurve
	}
	pv := 0.0
	for _, f := range flows {
		if !f.Date.After(settlement) {
			continue
		}
		pv += f.Amount * curve.DF(f.Date)
	}
	return pv, nil
}
