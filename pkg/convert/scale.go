package convert

// RatioPercent returns the percentage by which a model must be resized
// to go from scale 1:from to scale 1:to, rounded to two decimal
// places. Moving to a smaller divisor (a physically larger replica,
// e.g. 1:18 to 1:14) yields a value above 100, telling the user to
// enlarge the model in their slicer; the reverse yields below 100.
// A zero or negative scale yields 0 instead of dividing by zero.
func RatioPercent(from, to int) float64 {
	if from <= 0 || to <= 0 {
		return 0
	}
	return RoundFixed(float64(from)/float64(to)*100, 2)
}
