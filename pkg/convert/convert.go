package convert

import (
	"math"
	"strconv"
	"strings"
)

// Scale and precision bounds. Anything outside is clamped, never
// rejected.
const (
	MinScale = 1
	MaxScale = 72

	MinPrecision = 0
	MaxPrecision = 6
)

// DefaultDenominator is the fractional-inch denominator used until the
// user picks another graduation.
const DefaultDenominator = 16

// ParseValue parses a user-typed measurement. Thousands separators are
// stripped before parsing. Anything that does not parse to a finite
// number is treated as 0, so a half-typed field shows a zero result
// instead of an error.
func ParseValue(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ClampScale clamps a 1:n scale divisor to [MinScale, MaxScale].
func ClampScale(n int) int {
	if n < MinScale {
		return MinScale
	}
	if n > MaxScale {
		return MaxScale
	}
	return n
}

// ClampPrecision clamps a decimal-places setting to
// [MinPrecision, MaxPrecision].
func ClampPrecision(p int) int {
	if p < MinPrecision {
		return MinPrecision
	}
	if p > MaxPrecision {
		return MaxPrecision
	}
	return p
}

// Request holds the inputs of one measurement conversion.
type Request struct {
	Value       float64
	Unit        Unit
	Scale       int // 1:n divisor
	Precision   int // decimal places shown, 0-6
	Denominator int // fractional-inch graduation
}

// Result is the scaled measurement re-expressed in every unit of both
// systems, each rounded at the requested precision, plus the
// fractional-inch decomposition.
type Result struct {
	MM     float64
	CM     float64
	M      float64
	Inches float64
	Feet   float64
	Frac   Fraction
}

// Convert converts the request's value to millimetres, divides by the
// scale (1:n means physical-to-model, so n is always a divisor; 1:1
// yields the unscaled value) and re-expresses the scaled length in
// mm, cm, m, decimal inches, feet and fractional inches.
// Pure: same inputs, same outputs, no side effects.
func Convert(req Request) Result {
	scale := ClampScale(req.Scale)
	prec := ClampPrecision(req.Precision)

	mm := req.Unit.ToMM(req.Value) / float64(scale)
	inches := mm / MMPerInch

	return Result{
		MM:     RoundFixed(mm, prec),
		CM:     RoundFixed(mm/10, prec),
		M:      RoundFixed(mm/1000, prec),
		Inches: RoundFixed(inches, prec),
		Feet:   RoundFixed(inches/12, prec),
		Frac:   ReduceInches(inches, req.Denominator),
	}
}
