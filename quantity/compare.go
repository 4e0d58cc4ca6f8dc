package quantity

import (
	"cmp"
	"math"
)

// Cmp compares magnitudes exactly, returning -1, 0 or +1.
// The operands must have the same dimension.
func (q Quantity) Cmp(o Operand) (int, error) {
	other := o.Quantity()
	if err := q.match("compare", other); err != nil {
		return 0, err
	}
	return cmp.Compare(q.magnitude, other.magnitude), nil
}

func (q Quantity) Equal(o Operand) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c == 0, err
}

func (q Quantity) Less(o Operand) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c < 0, err
}

func (q Quantity) LessEqual(o Operand) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c <= 0, err
}

func (q Quantity) Greater(o Operand) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c > 0, err
}

func (q Quantity) GreaterEqual(o Operand) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c >= 0, err
}

// ApproxEqual is like Equal but tolerates a relative difference of tol,
// measured against the larger magnitude.
func (q Quantity) ApproxEqual(o Operand, tol float64) (bool, error) {
	other := o.Quantity()
	if err := q.match("compare", other); err != nil {
		return false, err
	}
	if q.magnitude == other.magnitude {
		return true, nil
	}
	diff := math.Abs(q.magnitude - other.magnitude)
	scale := math.Max(math.Abs(q.magnitude), math.Abs(other.magnitude))
	return diff <= tol*scale, nil
}

// Cmp compares a and b.
func Cmp(a, b Operand) (int, error) {
	return a.Quantity().Cmp(b)
}

// Equal reports whether a and b are equal.
func Equal(a, b Operand) (bool, error) {
	return a.Quantity().Equal(b)
}

func Less(a, b Operand) (bool, error) {
	return a.Quantity().Less(b)
}

func LessEqual(a, b Operand) (bool, error) {
	return a.Quantity().LessEqual(b)
}

func Greater(a, b Operand) (bool, error) {
	return a.Quantity().Greater(b)
}

func GreaterEqual(a, b Operand) (bool, error) {
	return a.Quantity().GreaterEqual(b)
}

// ApproxEqual reports whether a and b are within relative tolerance tol.
func ApproxEqual(a, b Operand, tol float64) (bool, error) {
	return a.Quantity().ApproxEqual(b, tol)
}
