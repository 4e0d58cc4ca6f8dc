package dimension

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/rotblauer/mks/common"
)

var ErrParse = errors.New("invalid unit expression")

const parseCacheSize = 512

var parseCache = func() *lru.Cache[string, Dimension] {
	c, err := lru.New[string, Dimension](parseCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}()

// Parse reads a unit expression into a Dimension.
//
// An expression is an optional numerator and denominator separated by '/'.
// Factors are separated by '.', '*', '·' or spaces, and each factor is a
// symbol with an optional exponent: "m²", "s⁻¹", "m^2", "s-1", "m2".
// Every factor after the '/' is inverted, so "kg.m2/s2" is kg.m².s⁻².
// The empty string and "1" are dimensionless, and so is an empty numerator.
// Parse accepts both Signature and Label output.
func Parse(expr string) (Dimension, error) {
	if d, ok := parseCache.Get(expr); ok {
		return d.Clone(), nil
	}
	d, err := parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrParse, expr, err)
	}
	parseCache.Add(expr, d)
	return d.Clone(), nil
}

// MustParse is like Parse but panics on error.
func MustParse(expr string) Dimension {
	d, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return d
}

func parse(expr string) (Dimension, error) {
	out := Dimension{}
	expr = strings.TrimSpace(expr)
	if expr == "" || expr == "1" {
		return out, nil
	}
	num, den, hasDen := strings.Cut(expr, "/")
	if strings.Contains(den, "/") {
		return nil, errors.New("more than one '/'")
	}
	num = strings.TrimSpace(num)
	// "/s" and "1/s" both read as s⁻¹.
	if num != "" && num != "1" {
		if err := parseFactors(num, 1, out); err != nil {
			return nil, err
		}
	}
	if hasDen {
		if err := parseFactors(strings.TrimSpace(den), -1, out); err != nil {
			return nil, err
		}
	}
	return out.Clone(), nil
}

func isSeparator(r rune) bool {
	return r == '.' || r == '*' || r == '·' || unicode.IsSpace(r)
}

func parseFactors(part string, sign int, into Dimension) error {
	factors := strings.FieldsFunc(part, isSeparator)
	if len(factors) == 0 {
		return errors.New("missing factors")
	}
	for _, factor := range factors {
		sym, exp, err := parseFactor(factor)
		if err != nil {
			return err
		}
		into[sym] += sign * exp
	}
	return nil
}

func parseFactor(factor string) (Symbol, int, error) {
	i := 0
	for i < len(factor) {
		r, size := utf8.DecodeRuneInString(factor[i:])
		if !unicode.IsLetter(r) {
			break
		}
		i += size
	}
	if i == 0 {
		return "", 0, fmt.Errorf("factor %q has no symbol", factor)
	}
	sym, rest := Symbol(factor[:i]), factor[i:]
	if rest == "" {
		return sym, 1, nil
	}
	var (
		exp int
		err error
	)
	switch {
	case strings.HasPrefix(rest, "^"):
		exp, err = strconv.Atoi(rest[1:])
	case common.IsSuperscript([]rune(rest)[0]):
		exp, err = common.ParseSuperscript(rest)
	default:
		exp, err = strconv.Atoi(rest)
	}
	if err != nil {
		return "", 0, fmt.Errorf("factor %q has a bad exponent", factor)
	}
	return sym, exp, nil
}

// Hash returns a content hash of d; equal dimensions hash equally
// regardless of how they were built.
func Hash(d Dimension) (uint64, error) {
	return hashstructure.Hash(map[Symbol]int(d.Clone()), hashstructure.FormatV2, nil)
}
