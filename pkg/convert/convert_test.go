package convert

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "plain integer", raw: "42", expected: 42},
		{name: "decimal", raw: "3.5", expected: 3.5},
		{name: "thousands separators", raw: "1,234.5", expected: 1234.5},
		{name: "multiple separators", raw: "1,234,567", expected: 1234567},
		{name: "leading/trailing space", raw: "  12 ", expected: 12},
		{name: "negative", raw: "-8.25", expected: -8.25},
		{name: "empty", raw: "", expected: 0},
		{name: "garbage", raw: "abc", expected: 0},
		{name: "half-typed", raw: "12.", expected: 12},
		{name: "bare minus", raw: "-", expected: 0},
		{name: "infinity text", raw: "Inf", expected: 0},
		{name: "nan text", raw: "NaN", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseValue(tt.raw)
			if got != tt.expected {
				t.Errorf("ParseValue(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestUnitRoundTrip(t *testing.T) {
	// fromMM(toMM(v)) == v within floating-point tolerance for every
	// unit in both tables.
	values := []float64{0, 0.001, 1, 3.75, 1000, 25.4}
	for _, u := range AllUnits() {
		for _, v := range values {
			if got := u.FromMM(u.ToMM(v)); !scalar.EqualWithinAbs(got, v, tol) {
				t.Errorf("%s: round trip of %v = %v", u.Key, v, got)
			}
		}
	}
}

func TestUnitByKey(t *testing.T) {
	for _, key := range []string{"mm", "cm", "m", "in", "ft"} {
		u, ok := UnitByKey(key)
		if !ok {
			t.Fatalf("UnitByKey(%q) not found", key)
		}
		if u.Key != key {
			t.Errorf("UnitByKey(%q) returned %q", key, u.Key)
		}
	}
	if _, ok := UnitByKey("furlong"); ok {
		t.Error("UnitByKey accepted an unknown key")
	}
}

func TestConvert_ScaleIsDivisor(t *testing.T) {
	// For all n in [1,72] and finite v >= 0, the mm output is
	// round(v/n, precision).
	mm, _ := UnitByKey("mm")
	for n := MinScale; n <= MaxScale; n++ {
		for _, v := range []float64{0, 1, 2.5, 100, 3500} {
			res := Convert(Request{Value: v, Unit: mm, Scale: n, Precision: 4, Denominator: 16})
			want := RoundFixed(v/float64(n), 4)
			if res.MM != want {
				t.Errorf("Convert(%v, mm, 1:%d).MM = %v, want %v", v, n, res.MM, want)
			}
		}
	}
}

func TestConvert_OneToOneIsUnscaled(t *testing.T) {
	cm, _ := UnitByKey("cm")
	res := Convert(Request{Value: 12.5, Unit: cm, Scale: 1, Precision: 3, Denominator: 16})
	if res.MM != 125 {
		t.Errorf("1:1 mm = %v, want 125", res.MM)
	}
	if res.CM != 12.5 {
		t.Errorf("1:1 cm = %v, want 12.5", res.CM)
	}
}

func TestConvert_AllUnitsAgree(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
		scale int
		prec  int
		mm    float64
		cm    float64
		m     float64
		in    float64
		ft    float64
	}{
		{
			name: "one metre at 1:10",
			value: 1, unit: "m", scale: 10, prec: 4,
			mm: 100, cm: 10, m: 0.1, in: 3.937, ft: 0.3281,
		},
		{
			name: "one foot at 1:12",
			value: 1, unit: "ft", scale: 12, prec: 4,
			mm: 25.4, cm: 2.54, m: 0.0254, in: 1, ft: 0.0833,
		},
		{
			name: "350mm at 1:35",
			value: 350, unit: "mm", scale: 35, prec: 2,
			mm: 10, cm: 1, m: 0.01, in: 0.39, ft: 0.03,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := UnitByKey(tt.unit)
			if !ok {
				t.Fatalf("unknown unit %q", tt.unit)
			}
			res := Convert(Request{Value: tt.value, Unit: u, Scale: tt.scale, Precision: tt.prec, Denominator: 16})
			if res.MM != tt.mm || res.CM != tt.cm || res.M != tt.m {
				t.Errorf("metric = %v/%v/%v, want %v/%v/%v",
					res.MM, res.CM, res.M, tt.mm, tt.cm, tt.m)
			}
			if res.Inches != tt.in || res.Feet != tt.ft {
				t.Errorf("imperial = %v/%v, want %v/%v", res.Inches, res.Feet, tt.in, tt.ft)
			}
		})
	}
}

func TestConvert_ClampsInputs(t *testing.T) {
	mm, _ := UnitByKey("mm")

	// Scale above the bound clamps to 72, below clamps to 1.
	res := Convert(Request{Value: 720, Unit: mm, Scale: 1000, Precision: 2, Denominator: 16})
	if res.MM != 10 {
		t.Errorf("scale clamp high: mm = %v, want 10", res.MM)
	}
	res = Convert(Request{Value: 5, Unit: mm, Scale: 0, Precision: 2, Denominator: 16})
	if res.MM != 5 {
		t.Errorf("scale clamp low: mm = %v, want 5", res.MM)
	}

	// Precision outside [0,6] clamps.
	res = Convert(Request{Value: 1, Unit: mm, Scale: 3, Precision: 99, Denominator: 16})
	if res.MM != RoundFixed(1.0/3.0, 6) {
		t.Errorf("precision clamp: mm = %v", res.MM)
	}
}

func TestClamps(t *testing.T) {
	if got := ClampScale(-5); got != 1 {
		t.Errorf("ClampScale(-5) = %d", got)
	}
	if got := ClampScale(200); got != 72 {
		t.Errorf("ClampScale(200) = %d", got)
	}
	if got := ClampScale(24); got != 24 {
		t.Errorf("ClampScale(24) = %d", got)
	}
	if got := ClampPrecision(-1); got != 0 {
		t.Errorf("ClampPrecision(-1) = %d", got)
	}
	if got := ClampPrecision(7); got != 6 {
		t.Errorf("ClampPrecision(7) = %d", got)
	}
}
