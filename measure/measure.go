// Package measure turns geographic points and durations into quantities.
package measure

import (
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/rotblauer/mks/quantity"
	"github.com/rotblauer/mks/units"
)

// Duration returns d in seconds.
func Duration(d time.Duration) quantity.Quantity {
	return quantity.Mul(quantity.Scalar(d.Seconds()), units.Second)
}

// ToDuration casts a time quantity back to a time.Duration,
// rounded to the nearest nanosecond.
func ToDuration(o quantity.Operand) (time.Duration, error) {
	seconds, err := quantity.Cast(o, units.Second)
	if err != nil {
		return 0, err
	}
	return time.Duration(math.Round(seconds * float64(time.Second))), nil
}

// Distance is the geodesic distance between two lng/lat points.
func Distance(a, b orb.Point) quantity.Quantity {
	return quantity.Mul(quantity.Scalar(geo.Distance(a, b)), units.Meter)
}

// Length is the geodesic length of a path of lng/lat points.
func Length(ls orb.LineString) quantity.Quantity {
	return quantity.Mul(quantity.Scalar(geo.Length(ls)), units.Meter)
}

// Speed is the average speed covering a to b in dt.
// A zero dt fails with quantity.ErrDivisionByZero.
func Speed(a, b orb.Point, dt time.Duration) (quantity.Quantity, error) {
	return quantity.Div(Distance(a, b), Duration(dt))
}
