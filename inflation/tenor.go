package inflation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/meenmo/cpilib/utils"
)

// Unit is a calendar unit for lags and tenors.
type Unit string

const (
	UnitDays   Unit = "D"
	UnitWeeks  Unit = "W"
	UnitMonths Unit = "M"
	UnitYears  Unit = "Y"
)

// Tenor is a signed calendar offset, e.g. the availability lag of an index
// or the observation lag of a coupon.
type Tenor struct {
	N    int
	Unit Unit
}

// ZeroLag is the zero-day tenor passed to curves when no extra lag applies.
var ZeroLag = Tenor{0, UnitDays}

// ParseTenor converts strings like "1D", "2W", "3M", "1Y" to a Tenor.
func ParseTenor(s string) (Tenor, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) < 2 {
		return Tenor{}, fmt.Errorf("ParseTenor: invalid tenor %q", s)
	}
	unit := Unit(s[len(s)-1:])
	switch unit {
	case UnitDays, UnitWeeks, UnitMonths, UnitYears:
	default:
		return Tenor{}, fmt.Errorf("ParseTenor: invalid tenor unit in %q", s)
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Tenor{}, fmt.Errorf("ParseTenor: invalid tenor %q: %w", s, err)
	}
	return Tenor{N: n, Unit: unit}, nil
}

func (t Tenor) String() string {
	return strconv.Itoa(t.N) + string(t.Unit)
}

// AddTo advances d by the tenor. Month and year offsets clamp to month end
// (EDATE semantics), so Jan 31 + 1M is Feb 28/29.
func (t Tenor) AddTo(d time.Time) time.Time {
	switch t.Unit {
	case UnitDays:
		return d.AddDate(0, 0, t.N)
	case UnitWeeks:
		return d.AddDate(0, 0, 7*t.N)
	case UnitMonths:
		return utils.AddMonth(d, t.N)
	case UnitYears:
		return utils.AddMonth(d, 12*t.N)
	default:
		panic("inflation: unsupported tenor unit " + string(t.Unit))
	}
}

// SubFrom moves d back by the tenor.
func (t Tenor) SubFrom(d time.Time) time.Time {
	return Tenor{N: -t.N, Unit: t.Unit}.AddTo(d)
}
