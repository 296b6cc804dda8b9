package optics

import (
	"math"
	"math/cmplx"
)

// Jones is a normalized Jones vector.
type Jones struct {
	Ex complex128
	Ey complex128
}

// JonesFor returns the Jones vector of p. Elliptical states report false
// because their handedness is not modelled.
func JonesFor(p Polarization) (Jones, bool) {
	switch p := p.(type) {
	case Linear:
		sin, cos := math.Sincos(radians(p.Angle))
		return Jones{Ex: complex(cos, 0), Ey: complex(sin, 0)}, true
	case Circular:
		ey := complex(0, math.Sqrt2/2)
		if p.Direction == Left {
			ey = -ey
		}
		return Jones{Ex: complex(math.Sqrt2/2, 0), Ey: ey}, true
	}
	return Jones{}, false
}

// Intensity is |Ex|² + |Ey|².
func (j Jones) Intensity() float64 {
	ax, ay := cmplx.Abs(j.Ex), cmplx.Abs(j.Ey)
	return ax*ax + ay*ay
}
