package optics

import (
	"fmt"
	"strings"

	"github.com/san-kum/spinlab/internal/quantum"
)

// LightSourceType is the emitter feeding the optics bench.
type LightSourceType string

const (
	Natural LightSourceType = "natural"
	Laser   LightSourceType = "laser"
	LED     LightSourceType = "led"
)

// ParseLightSourceType accepts natural, laser or led.
func ParseLightSourceType(s string) (LightSourceType, error) {
	switch t := LightSourceType(strings.ToLower(s)); t {
	case Natural, Laser, LED:
		return t, nil
	}
	return "", fmt.Errorf("unknown light source: %s", s)
}

// MaxIntensity is the top of the intensity slider.
const MaxIntensity = 100.0

// LightSource describes the emitter.
type LightSource struct {
	Type       LightSourceType `json:"type" yaml:"type"`
	Wavelength float64         `json:"wavelength" yaml:"wavelength"`
	Intensity  float64         `json:"intensity" yaml:"intensity"`
}

// DefaultLightSource is a 550 nm laser at half intensity.
func DefaultLightSource() LightSource {
	return LightSource{Type: Laser, Wavelength: 550, Intensity: 50}
}

// Validate checks the type, the [380, 780] nm band and the [0, 100] intensity range.
func (l LightSource) Validate() error {
	if _, err := ParseLightSourceType(string(l.Type)); err != nil {
		return quantum.Invalid("optics.LightSource", string(l.Type), "unknown type")
	}
	if !(l.Wavelength >= MinWavelength && l.Wavelength <= MaxWavelength) {
		return quantum.Invalid("optics.LightSource", l.Wavelength, "wavelength outside 380-780 nm")
	}
	if !(l.Intensity >= 0 && l.Intensity <= MaxIntensity) {
		return quantum.Invalid("optics.LightSource", l.Intensity, "intensity outside 0-100")
	}
	return nil
}

// Color is the display colour of the source wavelength.
func (l LightSource) Color() Color {
	return WavelengthToColor(l.Wavelength)
}
