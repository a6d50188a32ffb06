package units

import (
	"fmt"
	"math"
	"strings"

	"github.com/saurabhiiit/nix/core"
)

// None is the sentinel string meaning "no unit". Callers short-circuit
// on it; it never names a scalable quantity.
const None = "none"

// prefixExponent maps every SI prefix symbol to its decimal exponent.
// "u" is accepted as an ASCII alias of "µ".
var prefixExponent = map[string]int{
	"y": -24, "z": -21, "a": -18, "f": -15, "p": -12, "n": -9,
	"µ": -6, "u": -6, "m": -3, "c": -2, "d": -1,
	"da": 1, "h": 2, "k": 3, "M": 6, "G": 9,
	"T": 12, "P": 15, "E": 18, "Z": 21, "Y": 24,
}

// reading is one way of parsing a unit string: a prefix exponent plus
// the remaining base symbol.
type reading struct {
	exp  int
	base string
}

// IsNone reports whether u is the "no unit" sentinel. The empty string
// and "none" are treated identically on every path.
func IsNone(u string) bool {
	return u == "" || u == None
}

// readings lists every admissible parse of a unit string: always the
// bare-base reading, plus a prefixed reading for each prefix that
// leaves a non-empty base. The two-character prefix "da" is probed
// before the one-character ones so "dam" yields deca-"m" as well as
// deci-"am" and the bare base "dam".
func readings(u string) []reading {
	rs := []reading{{exp: 0, base: u}}
	if r := []rune(u); len(r) > 2 {
		if exp, ok := prefixExponent[string(r[:2])]; ok {
			rs = append(rs, reading{exp: exp, base: string(r[2:])})
		}
	}
	if r := []rune(u); len(r) > 1 {
		if exp, ok := prefixExponent[string(r[:1])]; ok {
			rs = append(rs, reading{exp: exp, base: string(r[1:])})
		}
	}

	return rs
}

// Scaling returns the multiplicative factor such that a value expressed
// in from, multiplied by the factor, equals the same physical quantity
// expressed in to. Scaling("ms", "s") = 1e-3; Scaling("s", "ms") = 1e3.
//
// Returns core.ErrIncompatibleUnits when the two strings denote
// different quantities, i.e. no reading of from shares a base symbol
// with any reading of to, or when either string is the "none" sentinel.
// Complexity: O(1).
func Scaling(from, to string) (float64, error) {
	if IsNone(from) || IsNone(to) {
		return 0, fmt.Errorf("units: cannot scale %q to %q: %w", from, to, core.ErrIncompatibleUnits)
	}
	if from == to {
		return 1, nil
	}
	for _, f := range readings(from) {
		for _, t := range readings(to) {
			if f.base == t.base {
				return math.Pow(10, float64(f.exp-t.exp)), nil
			}
		}
	}

	return 0, fmt.Errorf("units: %q is not scalable to %q: %w", from, to, core.ErrIncompatibleUnits)
}

// IsScalable reports whether Scaling(from, to) would succeed.
// Complexity: O(1).
func IsScalable(from, to string) bool {
	_, err := Scaling(from, to)

	return err == nil
}

// Sanitize trims surrounding whitespace from a unit string and maps the
// sentinel spellings onto the canonical None. Entity setters run unit
// lists through it so comparisons stay literal afterwards.
func Sanitize(u string) string {
	u = strings.TrimSpace(u)
	if IsNone(u) {
		return None
	}

	return u
}
