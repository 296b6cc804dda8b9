// Package notation formats frequencies for display.
package notation

import (
	"math"
	"strconv"
	"strings"
)

// Scientific formats |x| as "b.bb × 10^e" where e = ⌊log10 |x|⌋ and b is the
// remaining mantissa rounded to two decimals. Zero formats as "0.00 × 10^0";
// NaN and infinities format as "NaN" and "Inf".
func Scientific(x float64) string {
	abs := math.Abs(x)
	switch {
	case math.IsNaN(abs):
		return "NaN"
	case math.IsInf(abs, 0):
		return "Inf"
	case abs == 0:
		return "0.00 × 10^0"
	}

	// FormatFloat decomposes in decimal, so the mantissa stays in [1, 10)
	// even where float log10 lands a hair below an integer.
	mant, exp, _ := strings.Cut(strconv.FormatFloat(abs, 'e', 2, 64), "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return mant
	}
	return mant + " × 10^" + strconv.Itoa(e)
}

// Frequency formats an angular frequency in rad/s.
func Frequency(x float64) string {
	return Scientific(x) + " rad/s"
}
