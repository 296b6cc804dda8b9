// Package optics implements the polarization math of the optics bench:
// Stokes parameters, Jones vectors, Brewster angles and an approximate
// wavelength-to-colour mapping.
package optics

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/spinlab/internal/quantum"
)

// Polarization is one of Linear, Circular or Elliptical.
type Polarization interface {
	Kind() string
	stokes(intensity float64) Stokes
	validate() error
}

// Handedness of circular polarization.
type Handedness int

const (
	Right Handedness = iota
	Left
)

func (h Handedness) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// ParseHandedness accepts "left" or "right".
func ParseHandedness(s string) (Handedness, error) {
	switch strings.ToLower(s) {
	case "right", "r":
		return Right, nil
	case "left", "l":
		return Left, nil
	}
	return Right, fmt.Errorf("unknown circular direction: %s", s)
}

// Linear polarization at Angle degrees from horizontal.
type Linear struct {
	Angle float64
}

// Circular polarization with the given handedness.
type Circular struct {
	Direction Handedness
}

// Elliptical polarization with minor/major AxisRatio in (0, 1] and major
// axis at Orientation degrees. Handedness is not modelled.
type Elliptical struct {
	AxisRatio   float64
	Orientation float64
}

func (Linear) Kind() string     { return "linear" }
func (Circular) Kind() string   { return "circular" }
func (Elliptical) Kind() string { return "elliptical" }

func (p Linear) stokes(i float64) Stokes {
	sin2, cos2 := math.Sincos(2 * radians(p.Angle))
	return Stokes{S0: i, S1: i * cos2, S2: i * sin2}
}

func (p Circular) stokes(i float64) Stokes {
	s3 := i
	if p.Direction != Right {
		s3 = -i
	}
	return Stokes{S0: i, S3: s3}
}

// S3 stays zero: without a handedness the ellipse has no circular component.
func (p Elliptical) stokes(i float64) Stokes {
	r2 := p.AxisRatio * p.AxisRatio
	factor := (1 - r2) / (1 + r2)
	sin2, cos2 := math.Sincos(2 * radians(p.Orientation))
	return Stokes{S0: i, S1: i * factor * cos2, S2: i * factor * sin2}
}

func (p Linear) validate() error {
	if !finite(p.Angle) {
		return quantum.Invalid("optics.Linear", p.Angle, "angle must be finite")
	}
	return nil
}

func (p Circular) validate() error {
	if p.Direction != Right && p.Direction != Left {
		return quantum.Invalid("optics.Circular", int(p.Direction), "unknown direction")
	}
	return nil
}

func (p Elliptical) validate() error {
	if !(p.AxisRatio > 0 && p.AxisRatio <= 1) {
		return quantum.Invalid("optics.Elliptical", p.AxisRatio, "axis ratio must lie in (0, 1]")
	}
	if !finite(p.Orientation) {
		return quantum.Invalid("optics.Elliptical", p.Orientation, "orientation must be finite")
	}
	return nil
}

// Parse builds a Polarization from its textual kind and the fields that
// kind uses; the other arguments are ignored.
func Parse(kind string, angle float64, direction string, ratio, orientation float64) (Polarization, error) {
	switch strings.ToLower(kind) {
	case "linear":
		return Linear{Angle: angle}, nil
	case "circular":
		h, err := ParseHandedness(direction)
		if err != nil {
			return nil, err
		}
		return Circular{Direction: h}, nil
	case "elliptical":
		return Elliptical{AxisRatio: ratio, Orientation: orientation}, nil
	}
	return nil, fmt.Errorf("unknown polarization type: %s", kind)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
