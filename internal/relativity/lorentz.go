// Package relativity computes Lorentz factors for the spin model.
package relativity

import (
	"math"

	"github.com/san-kum/spinlab/internal/quantum"
)

// Velocity returns the velocity proxy v/c = min(Zα, 0.9) for atomic number z.
func Velocity(z int) float64 {
	return math.Min(float64(z)*quantum.FineStructure, quantum.VelocityCap)
}

// FromAtomicNumber returns γ for an inner electron of element z using Zα as
// v/c. The result is not validated: z <= 0 flows through the formula.
func FromAtomicNumber(z int) float64 {
	return FromVelocity(Velocity(z))
}

// FromAtomicNumberChecked is FromAtomicNumber with z restricted to z >= 1.
func FromAtomicNumberChecked(z int) (float64, error) {
	if z <= 0 {
		return 0, quantum.Invalid("relativity.FromAtomicNumber", z, "atomic number must be positive")
	}
	return FromAtomicNumber(z), nil
}

// FromVelocity returns 1/√(1−v²) for v as a fraction of c.
// |v| == 1 yields +Inf and |v| > 1 yields NaN.
func FromVelocity(v float64) float64 {
	return 1 / math.Sqrt(1-v*v)
}

// FromVelocityChecked is FromVelocity restricted to |v| < 1.
func FromVelocityChecked(v float64) (float64, error) {
	if math.IsNaN(v) || math.Abs(v) >= 1 {
		return 0, quantum.Invalid("relativity.FromVelocity", v, "velocity fraction must satisfy |v| < 1")
	}
	return FromVelocity(v), nil
}
