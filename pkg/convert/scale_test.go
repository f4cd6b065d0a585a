package convert

import "testing"

func TestRatioPercent(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		to       int
		expected float64
	}{
		{name: "smaller to larger replica enlarges", from: 18, to: 14, expected: 128.57},
		{name: "larger to smaller replica shrinks", from: 14, to: 18, expected: 77.78},
		{name: "quarter", from: 18, to: 72, expected: 25},
		{name: "double", from: 48, to: 24, expected: 200},
		{name: "zero from guards division", from: 0, to: 18, expected: 0},
		{name: "zero to guards division", from: 14, to: 0, expected: 0},
		{name: "negative guards too", from: -3, to: 18, expected: 0},
		{name: "tolerates scales above the UI bound", from: 160, to: 87, expected: 183.91},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RatioPercent(tt.from, tt.to); got != tt.expected {
				t.Errorf("RatioPercent(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

func TestRatioPercent_Identity(t *testing.T) {
	// Converting a scale to itself is always exactly 100%.
	for n := 1; n <= 72; n++ {
		if got := RatioPercent(n, n); got != 100 {
			t.Errorf("RatioPercent(%d, %d) = %v, want 100", n, n, got)
		}
	}
}
