package sweep

import (
	"math"

	"github.com/san-kum/spinlab/internal/optics"
	"github.com/san-kum/spinlab/internal/precession"
	"github.com/san-kum/spinlab/internal/relativity"
	"github.com/san-kum/spinlab/internal/shell"
)

func atomicNumber(x float64) int { return int(math.Round(x)) }

func lorentzKind() Kind {
	return Kind{
		Name:    "lorentz",
		Param:   "atomic_number",
		Columns: []string{"gamma", "velocity"},
		Integer: true,
		From:    1,
		To:      shell.MaxAtomicNumber,
		Eval: func(x float64, _ Params) []float64 {
			z := atomicNumber(x)
			return []float64{relativity.FromAtomicNumber(z), relativity.Velocity(z)}
		},
		Check: func(x float64, _ Params) error {
			_, err := relativity.FromAtomicNumberChecked(atomicNumber(x))
			return err
		},
	}
}

func velocityKind() Kind {
	return Kind{
		Name:    "velocity",
		Param:   "velocity_fraction",
		Columns: []string{"gamma"},
		From:    0,
		To:      0.99,
		Eval: func(x float64, _ Params) []float64 {
			return []float64{relativity.FromVelocity(x)}
		},
		Check: func(x float64, _ Params) error {
			_, err := relativity.FromVelocityChecked(x)
			return err
		},
	}
}

func spinKind() Kind {
	return Kind{
		Name:    "spin",
		Param:   "atomic_number",
		Columns: []string{"larmor", "thomas", "spin"},
		Integer: true,
		From:    1,
		To:      shell.MaxAtomicNumber,
		Eval: func(x float64, p Params) []float64 {
			z := atomicNumber(x)
			wl := precession.Larmor(p.MagneticField)
			return []float64{
				wl,
				precession.Thomas(wl, relativity.FromAtomicNumber(z)),
				precession.Spin(z, p.MagneticField, p.Numbers, p.ThomasCorrection),
			}
		},
		Check: func(x float64, p Params) error {
			_, err := precession.SpinChecked(atomicNumber(x), p.MagneticField, p.Numbers, p.ThomasCorrection)
			return err
		},
	}
}

func larmorKind() Kind {
	return Kind{
		Name:    "larmor",
		Param:   "magnetic_field",
		Columns: []string{"larmor", "spin"},
		From:    0.1,
		To:      10,
		Eval: func(x float64, p Params) []float64 {
			return []float64{
				precession.Larmor(x),
				precession.Spin(p.AtomicNumber, x, p.Numbers, p.ThomasCorrection),
			}
		},
		Check: func(x float64, p Params) error {
			_, err := precession.SpinChecked(p.AtomicNumber, x, p.Numbers, p.ThomasCorrection)
			return err
		},
	}
}

// stokesKind rotates the configured state: the angle of linear light or the
// orientation of an ellipse. Circular light is rotation invariant.
func stokesKind() Kind {
	return Kind{
		Name:    "stokes",
		Param:   "angle_deg",
		Columns: []string{"s0", "s1", "s2", "s3", "dop"},
		From:    0,
		To:      180,
		Eval: func(x float64, p Params) []float64 {
			s := optics.StokesFor(rotated(p.Polarization, x), p.Intensity)
			return []float64{s.S0, s.S1, s.S2, s.S3, s.DegreeOfPolarization()}
		},
		Check: func(x float64, p Params) error {
			_, err := optics.StokesChecked(rotated(p.Polarization, x), p.Intensity)
			return err
		},
	}
}

func rotated(base optics.Polarization, angle float64) optics.Polarization {
	switch b := base.(type) {
	case optics.Elliptical:
		b.Orientation = angle
		return b
	case optics.Circular:
		return b
	}
	return optics.Linear{Angle: angle}
}

func spectrumKind() Kind {
	return Kind{
		Name:    "spectrum",
		Param:   "wavelength_nm",
		Columns: []string{"r", "g", "b", "alpha"},
		From:    optics.MinWavelength,
		To:      optics.MaxWavelength,
		Eval: func(x float64, _ Params) []float64 {
			c := optics.WavelengthToColor(x)
			return []float64{float64(c.R), float64(c.G), float64(c.B), c.A}
		},
	}
}
