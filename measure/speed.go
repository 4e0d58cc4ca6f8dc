package measure

import (
	"github.com/rotblauer/mks/quantity"
	"github.com/rotblauer/mks/units"
)

// MetersPerSecond is the SI unit of speed.
var MetersPerSecond = quantity.Must(quantity.Div(units.Meter, units.Second))

func metersPerSecond(v float64) quantity.Quantity {
	return quantity.Mul(quantity.Scalar(v), MetersPerSecond)
}

// Typical speeds of getting around.
var (
	SpeedOfWalkingMean      = metersPerSecond(1.2)   // or 4.3 km/h or 2.7 mph
	SpeedOfRunningMean      = metersPerSecond(3.35)  // or 12 km/h or 7.5 mph
	SpeedOfCyclingMean      = metersPerSecond(5.36)  // or 19.3 km/h or 12 mph
	SpeedOfDrivingCityUS    = metersPerSecond(13.9)  // or 50 km/h or 31 mph
	SpeedOfDrivingFreeway   = metersPerSecond(33.33) // or 120 km/h or 75 mph
	SpeedOfCommercialFlight = metersPerSecond(250.0) // or 900 km/h
	SpeedOfSound            = metersPerSecond(343.0)
)
