package spin

import "math"

// Vector is a spin direction (Sx, Sy, Sz).
type Vector [3]float64

// Tilted returns the unit vector at tilt degrees from +z in the x-z plane.
func Tilted(tilt float64) Vector {
	sin, cos := math.Sincos(tilt * math.Pi / 180)
	return Vector{sin, 0, cos}
}

func (v Vector) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func (v Vector) IsValid() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (v Vector) add(o Vector, scale float64) Vector {
	return Vector{v[0] + scale*o[0], v[1] + scale*o[1], v[2] + scale*o[2]}
}

// Azimuth is the angle of the xy projection, in radians.
func (v Vector) Azimuth() float64 {
	return math.Atan2(v[1], v[0])
}
