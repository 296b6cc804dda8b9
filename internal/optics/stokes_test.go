package optics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spinlab/internal/optics"
	"github.com/san-kum/spinlab/internal/quantum"
)

var _ = Describe("StokesFor", func() {
	It("puts horizontal light entirely in S1", func() {
		s := optics.StokesFor(optics.Linear{Angle: 0}, 80)
		Expect(s).To(Equal(optics.Stokes{S0: 80, S1: 80, S2: 0, S3: 0}))
		Expect(s.DegreeOfPolarization()).To(BeNumerically("~", 1, 1e-12))
	})

	It("rotates linear light into S2 at 45 degrees", func() {
		s := optics.StokesFor(optics.Linear{Angle: 45}, 10)
		Expect(s.S1).To(BeNumerically("~", 0, 1e-12))
		Expect(s.S2).To(BeNumerically("~", 10, 1e-12))
	})

	It("keeps every linear angle fully polarized", func() {
		for angle := 0.0; angle < 360; angle += 7.5 {
			s := optics.StokesFor(optics.Linear{Angle: angle}, 3)
			Expect(s.DegreeOfPolarization()).To(BeNumerically("~", 1, 1e-12))
		}
	})

	It("signs S3 by handedness", func() {
		Expect(optics.StokesFor(optics.Circular{Direction: optics.Right}, 5)).
			To(Equal(optics.Stokes{S0: 5, S3: 5}))
		Expect(optics.StokesFor(optics.Circular{Direction: optics.Left}, 5)).
			To(Equal(optics.Stokes{S0: 5, S3: -5}))
	})

	It("scales elliptical light by (1-r^2)/(1+r^2)", func() {
		s := optics.StokesFor(optics.Elliptical{AxisRatio: 0.5, Orientation: 0}, 10)
		Expect(s.S1).To(BeNumerically("~", 10*0.75/1.25, 1e-12))
		Expect(s.S2).To(BeNumerically("~", 0, 1e-12))
		Expect(s.DegreeOfPolarization()).To(BeNumerically("<", 1))
	})

	It("leaves S3 zero for elliptical light (handedness not modelled)", func() {
		s := optics.StokesFor(optics.Elliptical{AxisRatio: 0.3, Orientation: 30}, 10)
		Expect(s.S3).To(BeZero())
	})

	It("degenerates a circle-shaped ellipse to unpolarized", func() {
		s := optics.StokesFor(optics.Elliptical{AxisRatio: 1, Orientation: 10}, 4)
		Expect(s.DegreeOfPolarization()).To(BeNumerically("~", 0, 1e-12))
	})

	It("reports zero degree of polarization for a dark beam", func() {
		s := optics.StokesFor(optics.Linear{Angle: 0}, 0)
		Expect(s.DegreeOfPolarization()).To(BeZero())
		Expect(s.Poincare()).To(Equal([3]float64{}))
	})

	It("projects onto the Poincare sphere", func() {
		p := optics.StokesFor(optics.Circular{Direction: optics.Left}, 7).Poincare()
		Expect(p).To(Equal([3]float64{0, 0, -1}))
	})

	It("passes negative intensity through in permissive mode", func() {
		s := optics.StokesFor(optics.Linear{Angle: 0}, -1)
		Expect(s.S0).To(Equal(-1.0))
	})
})

var _ = Describe("StokesChecked", func() {
	It("agrees with StokesFor on valid input", func() {
		p := optics.Linear{Angle: 30}
		s, err := optics.StokesChecked(p, 50)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(optics.StokesFor(p, 50)))
	})

	DescribeTable("rejects",
		func(p optics.Polarization, intensity float64) {
			_, err := optics.StokesChecked(p, intensity)
			Expect(err).To(MatchError(quantum.ErrInvalidArgument))
		},
		Entry("negative intensity", optics.Linear{}, -0.1),
		Entry("NaN intensity", optics.Linear{}, math.NaN()),
		Entry("missing state", nil, 1.0),
		Entry("NaN angle", optics.Linear{Angle: math.NaN()}, 1.0),
		Entry("zero axis ratio", optics.Elliptical{AxisRatio: 0}, 1.0),
		Entry("axis ratio above one", optics.Elliptical{AxisRatio: 1.5}, 1.0),
		Entry("unknown direction", optics.Circular{Direction: optics.Handedness(7)}, 1.0),
	)
})

var _ = Describe("Parse", func() {
	It("builds each variant", func() {
		p, err := optics.Parse("linear", 20, "", 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(optics.Linear{Angle: 20}))

		p, err = optics.Parse("Circular", 0, "left", 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(optics.Circular{Direction: optics.Left}))

		p, err = optics.Parse("elliptical", 0, "", 0.4, 60)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Kind()).To(Equal("elliptical"))
	})

	It("rejects unknown kinds and directions", func() {
		_, err := optics.Parse("radial", 0, "", 0, 0)
		Expect(err).To(HaveOccurred())
		_, err = optics.Parse("circular", 0, "up", 0, 0)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("JonesFor", func() {
	It("returns unit vectors for linear and circular light", func() {
		j, ok := optics.JonesFor(optics.Linear{Angle: 90})
		Expect(ok).To(BeTrue())
		Expect(real(j.Ex)).To(BeNumerically("~", 0, 1e-12))
		Expect(real(j.Ey)).To(BeNumerically("~", 1, 1e-12))

		j, ok = optics.JonesFor(optics.Circular{Direction: optics.Left})
		Expect(ok).To(BeTrue())
		Expect(j.Intensity()).To(BeNumerically("~", 1, 1e-12))
		Expect(imag(j.Ey)).To(BeNumerically("<", 0))
	})

	It("has no vector for elliptical light", func() {
		_, ok := optics.JonesFor(optics.Elliptical{AxisRatio: 0.5})
		Expect(ok).To(BeFalse())
	})
})
