// Package quantity implements unit-annotated numbers.
//
// A Quantity pairs a magnitude with a dimension.Dimension. Multiplication,
// division and powers combine the dimensions; addition, subtraction and
// comparison require them to match. Plain numbers take part through Scalar,
// which is the dimensionless Quantity.
package quantity

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/rotblauer/mks/common"
	"github.com/rotblauer/mks/dimension"
)

// Quantity is an immutable magnitude with a unit vector.
// The zero value is the dimensionless 0.
type Quantity struct {
	magnitude float64
	dimension dimension.Dimension
}

// Operand is anything that can take part in quantity arithmetic.
type Operand interface {
	Quantity() Quantity
}

// Scalar is a plain number; it behaves as a dimensionless Quantity.
type Scalar float64

func (s Scalar) Quantity() Quantity {
	return Quantity{magnitude: float64(s)}
}

// New returns a Quantity with its own canonical copy of dim.
func New(magnitude float64, dim dimension.Dimension) Quantity {
	return Quantity{magnitude: magnitude, dimension: dim.Clone()}
}

// Base returns the base unit for sym: magnitude 1, dimension {sym: 1}.
func Base(sym dimension.Symbol) Quantity {
	return Quantity{magnitude: 1, dimension: dimension.Of(sym)}
}

// Must returns q, panicking if err is not nil.
// It is meant for unit definitions known to be valid.
func Must(q Quantity, err error) Quantity {
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quantity) Quantity() Quantity {
	return q
}

func (q Quantity) Magnitude() float64 {
	return q.magnitude
}

// Dimension returns a copy of the unit vector.
func (q Quantity) Dimension() dimension.Dimension {
	return q.dimension.Clone()
}

func (q Quantity) IsDimensionless() bool {
	return q.dimension.IsEmpty()
}

// Mul returns q*o.
func (q Quantity) Mul(o Operand) Quantity {
	other := o.Quantity()
	return Quantity{
		magnitude: q.magnitude * other.magnitude,
		dimension: q.dimension.Add(other.dimension),
	}
}

// Div returns q/o, or ErrDivisionByZero when o has magnitude 0.
func (q Quantity) Div(o Operand) (Quantity, error) {
	other := o.Quantity()
	if other.magnitude == 0 {
		return Quantity{}, ErrDivisionByZero
	}
	return Quantity{
		magnitude: q.magnitude / other.magnitude,
		dimension: q.dimension.Sub(other.dimension),
	}, nil
}

// Pow returns q raised to n.
// A dimensioned q accepts n only when every resulting exponent is an integer,
// eg. (9 m²)^0.5 is 3 m but (3 m)^0.5 is a *FractionalDimensionError.
func (q Quantity) Pow(n float64) (Quantity, error) {
	dim, err := q.dimension.ScaleFloat(n)
	if errors.Is(err, dimension.ErrFractionalExponent) {
		return Quantity{}, &FractionalDimensionError{Dimension: q.Dimension(), Exponent: n}
	}
	if err != nil {
		return Quantity{}, fmt.Errorf("quantity: pow: %w", err)
	}
	return Quantity{magnitude: math.Pow(q.magnitude, n), dimension: dim}, nil
}

// PowInt returns q raised to the integer n.
// It fails only when an exponent overflows, see dimension.ErrExponentOverflow.
func (q Quantity) PowInt(n int) (Quantity, error) {
	dim, err := q.dimension.Scale(n)
	if err != nil {
		return Quantity{}, fmt.Errorf("quantity: pow: %w", err)
	}
	return Quantity{magnitude: math.Pow(q.magnitude, float64(n)), dimension: dim}, nil
}

// Add returns q+o. Both must have the same dimension.
func (q Quantity) Add(o Operand) (Quantity, error) {
	other := o.Quantity()
	if err := q.match("add", other); err != nil {
		return Quantity{}, err
	}
	return Quantity{magnitude: q.magnitude + other.magnitude, dimension: q.Dimension()}, nil
}

// Sub returns q-o. Both must have the same dimension.
func (q Quantity) Sub(o Operand) (Quantity, error) {
	other := o.Quantity()
	if err := q.match("subtract", other); err != nil {
		return Quantity{}, err
	}
	return Quantity{magnitude: q.magnitude - other.magnitude, dimension: q.Dimension()}, nil
}

func (q Quantity) Neg() Quantity {
	return Quantity{magnitude: -q.magnitude, dimension: q.Dimension()}
}

func (q Quantity) Abs() Quantity {
	return Quantity{magnitude: math.Abs(q.magnitude), dimension: q.Dimension()}
}

// Cast re-expresses q as a plain multiple of target.
// It is q/target, which must be dimensionless; eg. 3 m cast to (1000 m) is 0.003.
func (q Quantity) Cast(target Operand) (float64, error) {
	t := target.Quantity()
	ratio, err := q.Div(t)
	if err != nil {
		return 0, err
	}
	if !ratio.IsDimensionless() {
		return 0, &MismatchError{Op: "cast", Left: q.Dimension(), Right: t.Dimension()}
	}
	return ratio.magnitude, nil
}

// Round returns q with its magnitude rounded to places decimals.
func (q Quantity) Round(places int32) Quantity {
	return Quantity{magnitude: common.DecimalToFixed(q.magnitude, places), dimension: q.Dimension()}
}

// String renders the magnitude followed by the unit label, eg. "3 m" or "6 m.s⁻¹".
// Dimensionless values render as the bare number.
func (q Quantity) String() string {
	mag := strconv.FormatFloat(q.magnitude, 'g', -1, 64)
	if label := q.dimension.Label(); label != "" {
		return mag + " " + label
	}
	return mag
}

func (q Quantity) match(op string, other Quantity) error {
	if !q.dimension.Equal(other.dimension) {
		return &MismatchError{Op: op, Left: q.Dimension(), Right: other.Dimension()}
	}
	return nil
}

// Mul returns a*b.
func Mul(a, b Operand) Quantity {
	return a.Quantity().Mul(b)
}

// Div returns a/b.
func Div(a, b Operand) (Quantity, error) {
	return a.Quantity().Div(b)
}

// Pow returns a^n.
func Pow(a Operand, n float64) (Quantity, error) {
	return a.Quantity().Pow(n)
}

// Add returns a+b.
func Add(a, b Operand) (Quantity, error) {
	return a.Quantity().Add(b)
}

// Sub returns a-b.
func Sub(a, b Operand) (Quantity, error) {
	return a.Quantity().Sub(b)
}

// Neg returns -a.
func Neg(a Operand) Quantity {
	return a.Quantity().Neg()
}

// Abs returns |a|.
func Abs(a Operand) Quantity {
	return a.Quantity().Abs()
}

// Cast returns a expressed as a multiple of target.
func Cast(a, target Operand) (float64, error) {
	return a.Quantity().Cast(target)
}
