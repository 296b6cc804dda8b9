package precession_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spinlab/internal/precession"
	"github.com/san-kum/spinlab/internal/quantum"
)

const (
	charge = 1.602176634e-19
	mass   = 9.1093837015e-31
	gFree  = 2.00231930436
)

var ground = quantum.Numbers{N: 1, L: 0, M: 0, S: 0.5}

var _ = Describe("Larmor", func() {
	It("vanishes without a field", func() {
		Expect(precession.Larmor(0)).To(Equal(0.0))
	})

	It("is linear in B", func() {
		for _, b := range []float64{0.1, 1, 3.7, 10} {
			Expect(precession.Larmor(2 * b)).To(BeNumerically("~", 2*precession.Larmor(b), 1e-3))
		}
	})

	It("matches (eB/m)(g/2)", func() {
		Expect(precession.Larmor(1)).To(BeNumerically("~", charge/mass*gFree/2, 1))
		Expect(precession.Larmor(1)).To(BeNumerically("~", 1.7609e11, 1e7))
	})

	It("accepts an explicit g-factor", func() {
		Expect(precession.LarmorG(1, 2)).To(BeNumerically("~", charge/mass, 1))
	})
})

var _ = Describe("Thomas", func() {
	It("vanishes for a non-relativistic electron", func() {
		for _, wl := range []float64{0, 1, 1.76e11, -5e12} {
			Expect(precession.Thomas(wl, 1)).To(Equal(0.0))
		}
	})

	It("approaches the Larmor frequency as gamma grows", func() {
		wl := precession.Larmor(1)
		Expect(precession.Thomas(wl, 1e12)).To(BeNumerically("~", wl, wl*1e-9))
		Expect(precession.Thomas(wl, math.Inf(1))).To(Equal(wl))
	})
})

var _ = Describe("Spin", func() {
	It("composes the gold scenario exactly", func() {
		v := 79 / 137.035999084
		gamma := 1 / math.Sqrt(1-v*v)
		want := charge * 1.0 / mass * (gFree / 2) * (1 - 1/gamma) * 1 * (1 + 0.0/1)
		got := precession.Spin(79, 1.0, ground, true)
		Expect(got).To(BeNumerically("~", want, math.Abs(want)*1e-12))
		Expect(got).To(BeNumerically(">", 0))
	})

	It("is the bare Larmor frequency without the correction", func() {
		Expect(precession.Spin(79, 1.0, ground, false)).To(Equal(precession.Larmor(1.0)))
	})

	It("flips with the spin projection", func() {
		down := ground
		down.S = -0.5
		up := precession.Spin(26, 2, ground, true)
		Expect(precession.Spin(26, 2, down, true)).To(Equal(-up))
		Expect(precession.Rotation(up)).To(Equal(quantum.Clockwise))
		Expect(precession.Rotation(-up)).To(Equal(quantum.Counterclockwise))
	})

	It("weights by 1 + m/(l+1)", func() {
		qn := quantum.Numbers{N: 3, L: 2, M: -1, S: 0.5}
		base := precession.Spin(10, 1, ground, false)
		Expect(precession.Spin(10, 1, qn, false)).To(BeNumerically("~", base*(1-1.0/3), 1))
	})

	It("is stationary for m = -(l+1)", func() {
		qn := quantum.Numbers{N: 2, L: 0, M: -1, S: 0.5}
		Expect(precession.Spin(10, 1, qn, false)).To(BeZero())
	})

	It("treats s = 0 as spin down in permissive mode", func() {
		qn := ground
		qn.S = 0
		Expect(precession.Spin(10, 1, qn, false)).To(BeNumerically("<", 0))
	})

	Describe("SpinChecked", func() {
		It("agrees with Spin on valid input", func() {
			got, err := precession.SpinChecked(79, 1, ground, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(precession.Spin(79, 1, ground, true)))
		})

		DescribeTable("rejects",
			func(z int, b float64, qn quantum.Numbers) {
				_, err := precession.SpinChecked(z, b, qn, true)
				Expect(err).To(MatchError(quantum.ErrInvalidArgument))
			},
			Entry("zero Z", 0, 1.0, ground),
			Entry("NaN field", 1, math.NaN(), ground),
			Entry("infinite field", 1, math.Inf(-1), ground),
			Entry("zero n", 1, 1.0, quantum.Numbers{N: 0, L: 0, M: 0, S: 0.5}),
			Entry("negative l", 1, 1.0, quantum.Numbers{N: 1, L: -1, M: 0, S: 0.5}),
			Entry("m out of range", 1, 1.0, quantum.Numbers{N: 1, L: 0, M: 1, S: 0.5}),
			Entry("s not a half", 1, 1.0, quantum.Numbers{N: 1, L: 0, M: 0, S: 1}),
		)
	})
})

var _ = Describe("IsRelativisticSignificant", func() {
	It("flags heavy elements only", func() {
		Expect(precession.IsRelativisticSignificant(1)).To(BeFalse())
		Expect(precession.IsRelativisticSignificant(40)).To(BeFalse())
		Expect(precession.IsRelativisticSignificant(79)).To(BeTrue())
	})
})

var _ = DescribeTable("Describe",
	func(freq float64, want string) {
		Expect(precession.Describe(freq)).To(Equal(want))
	},
	Entry("slow", 5e10, "Slow"),
	Entry("boundary is exclusive", 1e11, "Slow"),
	Entry("moderate", 1.76e11, "Moderate"),
	Entry("fast", 5e12, "Fast"),
	Entry("very fast", -2e13, "Very Fast"),
	Entry("extremely fast", 1e15, "Extremely Fast"),
)
