// Package precession computes Larmor, Thomas and quantum-number-weighted
// spin precession frequencies in rad/s.
//
// Sign convention: a positive spin frequency means clockwise rotation in the
// atom view, negative means counterclockwise.
package precession

import (
	"math"

	"github.com/san-kum/spinlab/internal/quantum"
	"github.com/san-kum/spinlab/internal/relativity"
)

// Larmor returns (e·B/mₑ)·(g/2) for the free-electron g-factor.
func Larmor(b float64) float64 {
	return LarmorG(b, quantum.DefaultGFactor)
}

// LarmorG returns (e·B/mₑ)·(g/2) for an explicit g-factor.
func LarmorG(b, g float64) float64 {
	return quantum.ChargeToMass * b * (g / 2)
}

// Thomas returns ω_L·(1 − 1/γ). It vanishes at γ = 1 and tends to ω_L as γ grows.
func Thomas(omegaL, gamma float64) float64 {
	return omegaL * (1 - 1/gamma)
}

// Spin returns the spin precession frequency of an electron with quantum
// numbers qn in element z under field b (tesla). With thomasCorrection the
// Larmor base is scaled by (1 − 1/γ(z)). The base is then weighted by the
// spin sign and by 1 + m/(l+1). Inputs are not validated.
func Spin(z int, b float64, qn quantum.Numbers, thomasCorrection bool) float64 {
	freq := Larmor(b)
	if thomasCorrection {
		freq = Thomas(freq, relativity.FromAtomicNumber(z))
	}
	return freq * qn.SpinSign() * qn.OrbitalFactor()
}

// SpinChecked is Spin with z, b and qn validated first.
func SpinChecked(z int, b float64, qn quantum.Numbers, thomasCorrection bool) (float64, error) {
	if _, err := relativity.FromAtomicNumberChecked(z); err != nil {
		return 0, err
	}
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return 0, quantum.Invalid("precession.Spin", b, "magnetic field must be finite")
	}
	if err := qn.Validate(); err != nil {
		return 0, err
	}
	return Spin(z, b, qn, thomasCorrection), nil
}

// IsRelativisticSignificant reports whether γ(z) exceeds the 1.05 threshold.
func IsRelativisticSignificant(z int) bool {
	return relativity.FromAtomicNumber(z) > quantum.RelativisticThreshold
}

// Rotation maps a spin frequency to its sense of rotation.
func Rotation(freq float64) quantum.Direction {
	return quantum.DirectionOf(freq)
}
