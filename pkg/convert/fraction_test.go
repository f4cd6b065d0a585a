package convert

import (
	"math"
	"testing"
)

func TestReduceInches(t *testing.T) {
	tests := []struct {
		name     string
		inches   float64
		denom    int
		expected Fraction
	}{
		{
			name:     "half reduces from sixteenths",
			inches:   0.5,
			denom:    16,
			expected: Fraction{Whole: 0, Num: 1, Denom: 2},
		},
		{
			name:     "fifteen sixteenths does not reduce",
			inches:   1.9375,
			denom:    16,
			expected: Fraction{Whole: 1, Num: 15, Denom: 16},
		},
		{
			name:     "rounding overflows into the whole part",
			inches:   1.96875,
			denom:    16,
			expected: Fraction{Whole: 2, Num: 0, Denom: 16},
		},
		{
			name:     "exact whole keeps requested denominator",
			inches:   3,
			denom:    32,
			expected: Fraction{Whole: 3, Num: 0, Denom: 32},
		},
		{
			name:     "zero keeps requested denominator",
			inches:   0,
			denom:    64,
			expected: Fraction{Whole: 0, Num: 0, Denom: 64},
		},
		{
			name:     "three quarters from eighths",
			inches:   0.75,
			denom:    8,
			expected: Fraction{Whole: 0, Num: 3, Denom: 4},
		},
		{
			name:     "negative extracts sign",
			inches:   -2.5,
			denom:    16,
			expected: Fraction{Sign: "-", Whole: 2, Num: 1, Denom: 2},
		},
		{
			name:     "remainder rounds to nearest graduation",
			inches:   0.51,
			denom:    4,
			expected: Fraction{Whole: 0, Num: 1, Denom: 2},
		},
		{
			name:     "NaN degrades to zero fraction",
			inches:   math.NaN(),
			denom:    16,
			expected: Fraction{Whole: 0, Num: 0, Denom: 16},
		},
		{
			name:     "infinity degrades to zero fraction",
			inches:   math.Inf(1),
			denom:    32,
			expected: Fraction{Whole: 0, Num: 0, Denom: 32},
		},
		{
			name:     "huge finite value degrades instead of overflowing",
			inches:   1e19,
			denom:    16,
			expected: Fraction{Whole: 0, Num: 0, Denom: 16},
		},
		{
			name:     "astronomically large value degrades too",
			inches:   1e300,
			denom:    16,
			expected: Fraction{Whole: 0, Num: 0, Denom: 16},
		},
		{
			name:     "huge negative value degrades without a sign",
			inches:   -1e19,
			denom:    8,
			expected: Fraction{Whole: 0, Num: 0, Denom: 8},
		},
		{
			name:     "largest displayable magnitude still decomposes",
			inches:   maxWholeInches - 1,
			denom:    16,
			expected: Fraction{Whole: int(maxWholeInches) - 1, Num: 0, Denom: 16},
		},
		{
			name:     "non-positive denominator treated as one",
			inches:   2.4,
			denom:    0,
			expected: Fraction{Whole: 2, Num: 0, Denom: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReduceInches(tt.inches, tt.denom)
			if got != tt.expected {
				t.Errorf("ReduceInches(%v, %d) = %+v, want %+v",
					tt.inches, tt.denom, got, tt.expected)
			}
		})
	}
}

func TestReduceInches_Invariants(t *testing.T) {
	// For every offered denominator and a sweep of inch values, the
	// numerator is 0 or in lowest terms strictly below the denominator.
	for _, d := range FractionDenominators {
		for i := 0.0; i <= 4.0; i += 0.013 {
			f := ReduceInches(i, d)
			if f.Num < 0 || f.Num >= f.Denom {
				t.Fatalf("ReduceInches(%v, %d): numerator %d out of range of %d",
					i, d, f.Num, f.Denom)
			}
			if f.Num != 0 && gcd(f.Num, f.Denom) != 1 {
				t.Fatalf("ReduceInches(%v, %d): %d/%d not in lowest terms",
					i, d, f.Num, f.Denom)
			}
			if f.Num == 0 && f.Denom != d {
				t.Fatalf("ReduceInches(%v, %d): zero numerator changed denominator to %d",
					i, d, f.Denom)
			}
		}
	}
}

func TestFractionString(t *testing.T) {
	tests := []struct {
		name     string
		frac     Fraction
		expected string
	}{
		{name: "zero", frac: Fraction{Denom: 16}, expected: "0"},
		{name: "whole only", frac: Fraction{Whole: 2, Denom: 16}, expected: "2"},
		{name: "fraction only", frac: Fraction{Num: 3, Denom: 8}, expected: "3/8"},
		{name: "whole and fraction", frac: Fraction{Whole: 1, Num: 15, Denom: 16}, expected: "1 15/16"},
		{name: "negative", frac: Fraction{Sign: "-", Whole: 1, Num: 1, Denom: 2}, expected: "-1 1/2"},
		{name: "negative fraction only", frac: Fraction{Sign: "-", Num: 3, Denom: 8}, expected: "-3/8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.frac.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{8, 16, 8},
		{15, 16, 1},
		{12, 8, 4},
		{0, 16, 16},
		{7, 0, 7},
	}
	for _, tt := range tests {
		if got := gcd(tt.a, tt.b); got != tt.expected {
			t.Errorf("gcd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}
