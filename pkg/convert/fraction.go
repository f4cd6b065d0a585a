package convert

import (
	"fmt"
	"math"
)

// Fraction is an inch value decomposed into a whole number plus a
// proper fraction, the conventional form in imperial machining and
// modelling ("1 15/16 in"). Invariant: 0 <= Num < Denom, and Num/Denom
// is in lowest terms unless Num is 0, in which case Denom is the
// originally requested denominator.
type Fraction struct {
	Sign  string // "" or "-"
	Whole int
	Num   int
	Denom int
}

// String renders the fraction without a unit suffix, e.g. "1 15/16",
// "-3/8", "2", "0".
func (f Fraction) String() string {
	switch {
	case f.Whole == 0 && f.Num == 0:
		return "0"
	case f.Num == 0:
		return fmt.Sprintf("%s%d", f.Sign, f.Whole)
	case f.Whole == 0:
		return fmt.Sprintf("%s%d/%d", f.Sign, f.Num, f.Denom)
	default:
		return fmt.Sprintf("%s%d %d/%d", f.Sign, f.Whole, f.Num, f.Denom)
	}
}

// FractionDenominators are the denominators the UI offers, matching
// the graduations on an imperial rule.
var FractionDenominators = []int{2, 4, 8, 16, 32, 64}

// maxWholeInches caps what the reducer will decompose. Beyond this a
// float64 no longer resolves individual graduations, and the int
// conversions below would overflow.
const maxWholeInches = 1e15

// ReduceInches decomposes a decimal inch value into a Fraction against
// the requested denominator. The remainder is rounded to the nearest
// graduation; when rounding pushes it to a full unit the whole part is
// incremented instead of showing e.g. "2 16/16". Non-finite input, or
// a magnitude past maxWholeInches, yields a zero fraction preserving
// the requested denominator — this function never fails.
func ReduceInches(inches float64, denom int) Fraction {
	if denom < 1 {
		denom = 1
	}
	if math.IsNaN(inches) || math.IsInf(inches, 0) || math.Abs(inches) >= maxWholeInches {
		return Fraction{Denom: denom}
	}

	sign := ""
	if inches < 0 {
		sign = "-"
		inches = -inches
	}

	whole := int(math.Floor(inches))
	num := int(math.Round((inches - float64(whole)) * float64(denom)))
	if num == denom {
		whole++
		num = 0
	}
	if num == 0 {
		return Fraction{Sign: sign, Whole: whole, Denom: denom}
	}

	d := gcd(num, denom)
	if d == 0 {
		d = 1
	}
	return Fraction{Sign: sign, Whole: whole, Num: num / d, Denom: denom / d}
}

// gcd is the iterative Euclidean algorithm.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
