package optics

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/spinlab/internal/quantum"
)

// Material of the reflecting surface.
type Material string

const (
	Glass Material = "glass"
	Water Material = "water"
	Metal Material = "metal"
)

var refractiveIndices = map[Material]float64{
	Glass: 1.52,
	Water: 1.33,
	Metal: 0,
}

// Materials lists the supported materials.
func Materials() []Material {
	return []Material{Glass, Water, Metal}
}

// ParseMaterial accepts glass, water or metal in any case.
func ParseMaterial(s string) (Material, error) {
	m := Material(strings.ToLower(s))
	if _, ok := refractiveIndices[m]; !ok {
		return "", fmt.Errorf("unknown material: %s", s)
	}
	return m, nil
}

// RefractiveIndex returns n, 0 for metal and for unknown materials.
func (m Material) RefractiveIndex() float64 {
	return refractiveIndices[m]
}

// Brewster returns atan(n) in degrees. Metal and unknown materials yield 0.
func Brewster(m Material) float64 {
	if m == Metal {
		return 0
	}
	return math.Atan(m.RefractiveIndex()) * 180 / math.Pi
}

// BrewsterChecked is Brewster restricted to known materials.
func BrewsterChecked(m Material) (float64, error) {
	if _, ok := refractiveIndices[m]; !ok {
		return 0, quantum.Invalid("optics.Brewster", string(m), "unknown material")
	}
	return Brewster(m), nil
}

// MaterialInteraction pairs a material with its derived Brewster angle.
type MaterialInteraction struct {
	Material      Material `json:"material" yaml:"material"`
	BrewsterAngle float64  `json:"brewster_angle" yaml:"brewster_angle"`
}

// Interact derives the interaction for m.
func Interact(m Material) MaterialInteraction {
	return MaterialInteraction{Material: m, BrewsterAngle: Brewster(m)}
}
