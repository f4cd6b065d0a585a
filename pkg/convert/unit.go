// Package convert implements the arithmetic core of the calculator:
// unit conversion, model-scale application, fractional-inch
// decomposition and scale-to-scale resize percentages. Everything in
// this package is a pure function over value types; nothing here
// returns an error (see the package's silent-fallback policy on
// ParseValue, ReduceInches and RatioPercent).
package convert

// System identifies a measurement system.
type System int

const (
	Metric System = iota
	Imperial
)

// MMPerInch is the international inch, exactly.
const MMPerInch = 25.4

// Unit is a linear unit together with its conversion factor to
// millimetres, the common base unit. Units are defined at process
// start and never mutated.
type Unit struct {
	Key    string
	Name   string
	System System
	Factor float64 // one of this unit, in millimetres
}

// ToMM converts a value expressed in this unit to millimetres.
func (u Unit) ToMM(v float64) float64 {
	return v * u.Factor
}

// FromMM converts a value in millimetres back to this unit.
func (u Unit) FromMM(mm float64) float64 {
	return mm / u.Factor
}

var (
	// MetricUnits is the fixed metric table.
	MetricUnits = []Unit{
		{Key: "mm", Name: "millimetres", System: Metric, Factor: 1},
		{Key: "cm", Name: "centimetres", System: Metric, Factor: 10},
		{Key: "m", Name: "metres", System: Metric, Factor: 1000},
	}

	// ImperialUnits is the fixed imperial table.
	ImperialUnits = []Unit{
		{Key: "in", Name: "inches", System: Imperial, Factor: MMPerInch},
		{Key: "ft", Name: "feet", System: Imperial, Factor: 12 * MMPerInch},
	}
)

// Units returns the table for the given system.
func Units(s System) []Unit {
	if s == Imperial {
		return ImperialUnits
	}
	return MetricUnits
}

// AllUnits returns both tables in display order, metric first.
func AllUnits() []Unit {
	all := make([]Unit, 0, len(MetricUnits)+len(ImperialUnits))
	all = append(all, MetricUnits...)
	all = append(all, ImperialUnits...)
	return all
}

// UnitByKey looks up a unit by key across both tables. The key set is
// fixed at build time, so an unknown key reports ok=false rather than
// an error.
func UnitByKey(key string) (Unit, bool) {
	for _, u := range AllUnits() {
		if u.Key == key {
			return u, true
		}
	}
	return Unit{}, false
}
