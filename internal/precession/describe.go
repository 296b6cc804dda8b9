package precession

import "math"

var speedBands = []struct {
	above float64
	label string
}{
	{1e14, "Extremely Fast"},
	{1e13, "Very Fast"},
	{1e12, "Fast"},
	{1e11, "Moderate"},
}

// Describe labels the magnitude of a precession frequency.
func Describe(freq float64) string {
	abs := math.Abs(freq)
	for _, band := range speedBands {
		if abs > band.above {
			return band.label
		}
	}
	return "Slow"
}
