// Package dimension implements unit vectors: sparse mappings from base-unit
// symbol to a nonzero integer exponent, eg. velocity is {m: 1, s: -1}.
package dimension

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rotblauer/mks/common"
)

var (
	ErrFractionalExponent = errors.New("fractional exponent")
	ErrExponentOverflow   = errors.New("exponent overflow")
)

// Symbol names a base unit, eg. "m" or "kg".
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

func (s Symbol) Empty() bool {
	return s == ""
}

// Dimension maps base-unit symbols to exponents.
// A missing symbol has exponent 0, and canonical values never store a zero.
// A nil Dimension is dimensionless.
// Methods never modify the receiver or their arguments; results are always fresh maps.
type Dimension map[Symbol]int

// Of returns the dimension of a single base unit, {sym: 1}.
func Of(sym Symbol) Dimension {
	return Dimension{sym: 1}
}

// Clone returns a canonical copy of d with zero exponents removed.
func (d Dimension) Clone() Dimension {
	out := make(Dimension, len(d))
	for sym, exp := range d {
		if exp != 0 {
			out[sym] = exp
		}
	}
	return out
}

// Get returns the exponent of sym, 0 when absent.
func (d Dimension) Get(sym Symbol) int {
	return d[sym]
}

// Add returns the elementwise sum of exponents; the dimension of a product.
func (d Dimension) Add(other Dimension) Dimension {
	out := d.Clone()
	for sym, exp := range other {
		out[sym] += exp
		if out[sym] == 0 {
			delete(out, sym)
		}
	}
	return out
}

// Sub returns the elementwise difference of exponents; the dimension of a quotient.
func (d Dimension) Sub(other Dimension) Dimension {
	out := d.Clone()
	for sym, exp := range other {
		out[sym] -= exp
		if out[sym] == 0 {
			delete(out, sym)
		}
	}
	return out
}

// Scale multiplies every exponent by n.
// It fails with ErrExponentOverflow if a product does not fit in an int.
func (d Dimension) Scale(n int) (Dimension, error) {
	out := make(Dimension, len(d))
	if n == 0 {
		return out, nil
	}
	for sym, exp := range d {
		if exp == 0 {
			continue
		}
		v := exp * n
		if v/n != exp || (exp == math.MinInt && n == -1) || (n == math.MinInt && exp == -1) {
			return nil, fmt.Errorf("%w: %s^%d * %d", ErrExponentOverflow, sym, exp, n)
		}
		if v != 0 {
			out[sym] = v
		}
	}
	return out, nil
}

// ScaleFloat multiplies every exponent by f.
// It fails with ErrFractionalExponent if a resulting exponent is not an integer,
// and with ErrExponentOverflow if it does not fit in an int.
func (d Dimension) ScaleFloat(f float64) (Dimension, error) {
	out := make(Dimension, len(d))
	for sym, exp := range d {
		if exp == 0 {
			continue
		}
		v := float64(exp) * f
		if math.IsNaN(v) || (!math.IsInf(v, 0) && v != math.Trunc(v)) {
			return nil, fmt.Errorf("%w: %s^%d * %g", ErrFractionalExponent, sym, exp, f)
		}
		// float64(math.MaxInt) rounds up to 2^63, which is out of range.
		if v >= float64(math.MaxInt) || v < float64(math.MinInt) {
			return nil, fmt.Errorf("%w: %s^%d * %g", ErrExponentOverflow, sym, exp, f)
		}
		if v != 0 {
			out[sym] = int(v)
		}
	}
	return out, nil
}

// Equal reports whether d and other have the same nonzero exponents.
func (d Dimension) Equal(other Dimension) bool {
	for sym, exp := range d {
		if other[sym] != exp {
			return false
		}
	}
	for sym, exp := range other {
		if d[sym] != exp {
			return false
		}
	}
	return true
}

// IsEmpty reports whether d is dimensionless.
func (d Dimension) IsEmpty() bool {
	for _, exp := range d {
		if exp != 0 {
			return false
		}
	}
	return true
}

// Symbols returns the symbols with nonzero exponents, sorted.
func (d Dimension) Symbols() []Symbol {
	out := make([]Symbol, 0, len(d))
	for sym, exp := range d {
		if exp != 0 {
			out = append(out, sym)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ordered returns the symbols in display order:
// positive exponents ascending, then negative exponents from -1 downward,
// ties broken by symbol.
func (d Dimension) ordered() []Symbol {
	syms := d.Symbols()
	sort.SliceStable(syms, func(i, j int) bool {
		a, b := d[syms[i]], d[syms[j]]
		if (a > 0) != (b > 0) {
			return a > 0
		}
		if a > 0 {
			return a < b
		}
		return a > b
	})
	return syms
}

// Signature is the canonical ASCII form of d, eg. "kg.m^2.s^-2".
// It is "1" for a dimensionless value and round trips through Parse.
func (d Dimension) Signature() string {
	return d.render("1", func(exp int) string {
		return "^" + strconv.Itoa(exp)
	})
}

// Label is the display form of d, eg. "kg.m².s⁻²".
// It is empty for a dimensionless value and round trips through Parse.
func (d Dimension) Label() string {
	return d.render("", common.Superscript)
}

func (d Dimension) render(empty string, exponent func(int) string) string {
	syms := d.ordered()
	if len(syms) == 0 {
		return empty
	}
	parts := make([]string, 0, len(syms))
	for _, sym := range syms {
		exp := d[sym]
		if exp == 1 {
			parts = append(parts, sym.String())
			continue
		}
		parts = append(parts, sym.String()+exponent(exp))
	}
	return strings.Join(parts, ".")
}

func (d Dimension) String() string {
	return d.Signature()
}
