package quantity

import (
	"errors"
	"fmt"

	"github.com/rotblauer/mks/dimension"
)

var (
	ErrDimensionMismatch   = errors.New("dimension mismatch")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrFractionalDimension = errors.New("fractional dimension")
	ErrEmpty               = errors.New("no quantities")
	ErrDecode              = errors.New("cannot decode quantity")
)

// MismatchError reports an operation whose operands have different dimensions.
type MismatchError struct {
	Op          string
	Left, Right dimension.Dimension
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("quantity: %s: %v: lhs has units <%s>, rhs has units <%s>",
		e.Op, ErrDimensionMismatch, e.Left.Signature(), e.Right.Signature())
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// FractionalDimensionError reports a power that would leave a non-integer exponent.
type FractionalDimensionError struct {
	Dimension dimension.Dimension
	Exponent  float64
}

func (e *FractionalDimensionError) Error() string {
	return fmt.Sprintf("quantity: pow: %v: <%s> raised to %g", ErrFractionalDimension, e.Dimension.Signature(), e.Exponent)
}

func (e *FractionalDimensionError) Is(target error) bool {
	return target == ErrFractionalDimension
}
