// Package decimal implements exact comparison of decimal numbers kept in
// string form. Results files record objectives with whatever precision and
// notation the producing solver used ("1.5", "1.50", and "150e-2" are the
// same number), so values are normalized and compared digit by digit
// instead of being parsed into float64.
package decimal

import (
	"strconv"
	"strings"
)

// Value is a decimal number in string form: an optional sign, digits with
// at most one decimal point, and an optional e/E integer exponent. The
// empty string equals "0".
type Value string

// Cmp numerically compares v with o. It returns -1 if v < o, 0 if both
// represent the same number, and 1 if v > o. Trailing zeros, point
// placement, and exponent notation do not affect the result.
func (v Value) Cmp(o Value) int {
	va, vneg := unsigned(string(v))
	oa, oneg := unsigned(string(o))
	vd, vp := normalize(va)
	od, op := normalize(oa)

	vsign := sign(vd, vneg)
	osign := sign(od, oneg)
	if vsign != osign {
		if vsign < osign {
			return -1
		}
		return 1
	}
	if vsign == 0 {
		return 0
	}
	return vsign * cmpAbs(vd, vp, od, op)
}

// unsigned strips a leading sign, reporting whether it was negative.
func unsigned(s string) (string, bool) {
	switch {
	case strings.HasPrefix(s, "-"):
		return s[1:], true
	case strings.HasPrefix(s, "+"):
		return s[1:], false
	}
	return s, false
}

// normalize reduces s to a bare digit string plus the position of its
// decimal point within it. The exponent is folded into the position, a
// negative position is clamped to zero by left-padding, and leading zeros
// of the integer part are dropped, so a nonzero number with more integer
// digits than another is always the larger of the two.
func normalize(s string) (digits string, point int) {
	shift := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		if n, err := strconv.Atoi(s[i+1:]); err == nil {
			shift = n
		}
		s = s[:i]
	}
	point = len(s)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		point = i
		s = s[:i] + s[i+1:]
	}
	point += shift
	if point < 0 {
		s = strings.Repeat("0", -point) + s
		point = 0
	}
	if point > len(s) {
		s += strings.Repeat("0", point-len(s))
	}
	lead := 0
	for lead < point && s[lead] == '0' {
		lead++
	}
	return s[lead:], point - lead
}

// sign is -1, 0, or 1 for a normalized digit string.
func sign(digits string, neg bool) int {
	if strings.Trim(digits, "0") == "" {
		return 0
	}
	if neg {
		return -1
	}
	return 1
}

// cmpAbs compares two normalized magnitudes. Unequal point positions decide
// immediately; equal positions reduce to a lexicographic compare after
// right-padding to a common length.
func cmpAbs(a string, ap int, b string, bp int) int {
	if ap != bp {
		if ap > bp {
			return 1
		}
		return -1
	}
	if len(a) < len(b) {
		a += strings.Repeat("0", len(b)-len(a))
	} else if len(b) < len(a) {
		b += strings.Repeat("0", len(a)-len(b))
	}
	return strings.Compare(a, b)
}
