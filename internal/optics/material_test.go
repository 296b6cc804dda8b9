package optics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spinlab/internal/optics"
	"github.com/san-kum/spinlab/internal/quantum"
)

var _ = Describe("Brewster", func() {
	It("uses atan(n) for dielectrics", func() {
		Expect(optics.Brewster(optics.Water)).To(BeNumerically("~", 53.06, 0.01))
		Expect(optics.Brewster(optics.Water)).To(BeNumerically("~", math.Atan(1.33)*180/math.Pi, 1e-12))
		Expect(optics.Brewster(optics.Glass)).To(BeNumerically("~", 56.66, 0.01))
	})

	It("is zero for metal", func() {
		Expect(optics.Brewster(optics.Metal)).To(BeZero())
		Expect(optics.Interact(optics.Metal).BrewsterAngle).To(BeZero())
	})

	It("rejects unknown materials when checked", func() {
		_, err := optics.BrewsterChecked(optics.Material("wood"))
		Expect(err).To(MatchError(quantum.ErrInvalidArgument))
		a, err := optics.BrewsterChecked(optics.Glass)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(optics.Brewster(optics.Glass)))
	})

	It("parses material names", func() {
		m, err := optics.ParseMaterial("WATER")
		Expect(err).NotTo(HaveOccurred())
		Expect(m).To(Equal(optics.Water))
		_, err = optics.ParseMaterial("diamond")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("WavelengthToColor", func() {
	It("is pure red at 700 nm", func() {
		Expect(optics.WavelengthToColor(700).String()).To(Equal("rgb(255, 0, 0)"))
	})

	It("rolls off intensity at the violet edge", func() {
		c := optics.WavelengthToColor(380)
		want := uint8(math.Round(255 * math.Pow(0.3, 0.8)))
		Expect(c).To(Equal(optics.Color{R: want, G: 0, B: want, A: 1}))
	})

	It("mixes green into blue below 490 nm", func() {
		c := optics.WavelengthToColor(450)
		Expect(c.R).To(BeZero())
		Expect(c.B).To(Equal(uint8(255)))
		Expect(c.G).To(Equal(uint8(math.Round(255 * math.Pow(0.2, 0.8)))))
	})

	It("returns translucent white outside the visible window", func() {
		for _, nm := range []float64{300, 379.9, 750.1, 780, 900} {
			Expect(optics.WavelengthToColor(nm).String()).To(Equal("rgba(255, 255, 255, 0.5)"))
		}
	})

	It("renders hex", func() {
		Expect(optics.WavelengthToColor(700).Hex()).To(Equal("#ff0000"))
	})
})

var _ = Describe("LightSource", func() {
	It("validates the default source", func() {
		Expect(optics.DefaultLightSource().Validate()).To(Succeed())
	})

	DescribeTable("rejects",
		func(l optics.LightSource) {
			Expect(l.Validate()).To(MatchError(quantum.ErrInvalidArgument))
		},
		Entry("unknown type", optics.LightSource{Type: "sun", Wavelength: 500, Intensity: 10}),
		Entry("ultraviolet", optics.LightSource{Type: optics.LED, Wavelength: 200, Intensity: 10}),
		Entry("too bright", optics.LightSource{Type: optics.Natural, Wavelength: 500, Intensity: 101}),
	)
})
