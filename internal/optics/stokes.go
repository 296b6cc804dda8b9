package optics

import (
	"math"

	"github.com/san-kum/spinlab/internal/quantum"
)

// Stokes parameters: S0 total intensity, S1 horizontal/vertical,
// S2 ±45°, S3 right/left circular.
type Stokes struct {
	S0 float64 `json:"s0"`
	S1 float64 `json:"s1"`
	S2 float64 `json:"s2"`
	S3 float64 `json:"s3"`
}

// StokesFor computes the Stokes parameters of p at the given intensity
// without validating either.
func StokesFor(p Polarization, intensity float64) Stokes {
	return p.stokes(intensity)
}

// StokesChecked is StokesFor with p and intensity validated first.
func StokesChecked(p Polarization, intensity float64) (Stokes, error) {
	if p == nil {
		return Stokes{}, quantum.Invalid("optics.Stokes", nil, "missing polarization state")
	}
	if math.IsNaN(intensity) || math.IsInf(intensity, 0) || intensity < 0 {
		return Stokes{}, quantum.Invalid("optics.Stokes", intensity, "intensity must be finite and non-negative")
	}
	if err := p.validate(); err != nil {
		return Stokes{}, err
	}
	return p.stokes(intensity), nil
}

// Polarized returns √(S1²+S2²+S3²).
func (s Stokes) Polarized() float64 {
	return math.Sqrt(s.S1*s.S1 + s.S2*s.S2 + s.S3*s.S3)
}

// DegreeOfPolarization is Polarized/S0, or 0 for a dark beam.
func (s Stokes) DegreeOfPolarization() float64 {
	if s.S0 == 0 {
		return 0
	}
	return s.Polarized() / s.S0
}

// Poincare returns (S1, S2, S3)/S0, the point on the Poincaré sphere.
func (s Stokes) Poincare() [3]float64 {
	if s.S0 == 0 {
		return [3]float64{}
	}
	return [3]float64{s.S1 / s.S0, s.S2 / s.S0, s.S3 / s.S0}
}
