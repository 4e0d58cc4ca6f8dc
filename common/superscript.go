package common

import (
	"strconv"
	"strings"
)

const (
	digits       = "0123456789-"
	superscripts = "⁰¹²³⁴⁵⁶⁷⁸⁹⁻"
)

var toSuper, fromSuper = func() (map[rune]rune, map[rune]rune) {
	to, from := map[rune]rune{}, map[rune]rune{}
	sup := []rune(superscripts)
	for i, r := range digits {
		to[r] = sup[i]
		from[sup[i]] = r
	}
	return to, from
}()

// Superscript renders an integer with unicode superscript digits, eg. -10 => "⁻¹⁰".
func Superscript(n int) string {
	var sb strings.Builder
	for _, r := range strconv.Itoa(n) {
		sb.WriteRune(toSuper[r])
	}
	return sb.String()
}

// IsSuperscript reports whether r is a superscript digit or the superscript minus.
func IsSuperscript(r rune) bool {
	_, ok := fromSuper[r]
	return ok
}

// ParseSuperscript is the inverse of Superscript.
func ParseSuperscript(s string) (int, error) {
	var sb strings.Builder
	for _, r := range s {
		d, ok := fromSuper[r]
		if !ok {
			return 0, &strconv.NumError{Func: "ParseSuperscript", Num: s, Err: strconv.ErrSyntax}
		}
		sb.WriteRune(d)
	}
	return strconv.Atoi(sb.String())
}
