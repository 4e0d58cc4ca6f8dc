package common

import (
	"math"

	"github.com/shopspring/decimal"
)

// DecimalToFixed rounds num to precision decimal places, half away from zero.
// Rounding goes through a decimal representation so that values like 2.675
// round to 2.68 rather than the 2.67 a binary float would give.
// Non-finite values are returned unchanged.
func DecimalToFixed(num float64, precision int32) float64 {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return num
	}
	out, _ := decimal.NewFromFloat(num).Round(precision).Float64()
	return out
}
