package convert

import (
	"math"
	"strconv"
	"strings"
)

// RoundFixed rounds v to places decimal digits using
// round-half-away-from-zero applied to the decimal string form of v.
// Working on the shortest decimal representation (rather than the raw
// binary value) keeps the operation idempotent: re-rounding an
// already-rounded value at the same precision returns it unchanged.
// Non-finite input yields 0.
func RoundFixed(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if places < 0 {
		places = 0
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) <= places {
		if v == 0 {
			// A typed "-0" parses to negative zero; normalize it here
			// as well so it never renders as "-0.00".
			return 0
		}
		return v
	}

	digits := []byte(whole + frac[:places])
	if frac[places] >= '5' {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] < '9' {
				digits[i]++
				break
			}
			digits[i] = '0'
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}

	out := string(digits[:len(digits)-places])
	if places > 0 {
		out += "." + string(digits[len(digits)-places:])
	}
	r, _ := strconv.ParseFloat(out, 64)
	if r == 0 {
		// Normalize -0 so a tiny negative never displays as "-0".
		return 0
	}
	if neg {
		return -r
	}
	return r
}

// FormatFixed renders v rounded to places decimal digits, always with
// exactly places digits after the point. This is the form shown in the
// results panel and written to the clipboard.
func FormatFixed(v float64, places int) string {
	return strconv.FormatFloat(RoundFixed(v, places), 'f', places, 64)
}
