package optics

import (
	"fmt"
	"math"
)

// Wavelength bounds in nanometres.
const (
	MinWavelength     = 380.0
	MaxWavelength     = 780.0
	VisibleMin        = 380.0
	VisibleMax        = 750.0
	colorGamma        = 0.8
	outsideVisibleRGB = 255
	outsideVisibleA   = 0.5
)

// Color is an 8-bit RGB triple with alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// String renders the colour as a CSS rgb() or rgba() value.
func (c Color) String() string {
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// Hex renders the colour as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WavelengthToColor approximates the colour of monochromatic light. It is a
// rendering helper, not a colorimetric model: channels ramp linearly between
// spectral anchors, intensity rolls off towards both ends and a 0.8 gamma is
// applied. Wavelengths outside [VisibleMin, VisibleMax] give translucent white.
func WavelengthToColor(nm float64) Color {
	if !(nm >= VisibleMin && nm <= VisibleMax) {
		return Color{R: outsideVisibleRGB, G: outsideVisibleRGB, B: outsideVisibleRGB, A: outsideVisibleA}
	}

	var r, g, b float64
	switch {
	case nm < 440:
		r, b = -(nm-440)/(440-380), 1
	case nm < 490:
		g, b = (nm-440)/(490-440), 1
	case nm < 510:
		g, b = 1, -(nm-510)/(510-490)
	case nm < 580:
		r, g = (nm-510)/(580-510), 1
	case nm < 645:
		r, g = 1, -(nm-645)/(645-580)
	default:
		r = 1
	}

	factor := 1.0
	switch {
	case nm < 420:
		factor = 0.3 + 0.7*(nm-380)/(420-380)
	case nm >= 700:
		factor = 0.3 + 0.7*(780-nm)/(780-700)
	}

	return Color{R: channel(r, factor), G: channel(g, factor), B: channel(b, factor), A: 1}
}

func channel(v, factor float64) uint8 {
	return uint8(math.Round(255 * math.Pow(v*factor, colorGamma)))
}
