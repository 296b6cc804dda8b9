package relativity_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spinlab/internal/quantum"
	"github.com/san-kum/spinlab/internal/relativity"
)

var _ = Describe("FromAtomicNumber", func() {
	It("is at least one and non-decreasing in Z", func() {
		prev := 1.0
		for z := 1; z <= 200; z++ {
			g := relativity.FromAtomicNumber(z)
			Expect(g).To(BeNumerically(">=", 1))
			Expect(g).To(BeNumerically(">=", prev))
			prev = g
		}
	})

	It("caps the velocity proxy at 0.9", func() {
		for _, z := range []int{124, 137, 150, 500} {
			Expect(relativity.Velocity(z)).To(Equal(quantum.VelocityCap))
		}
		capped := 1 / math.Sqrt(1-0.81)
		Expect(relativity.FromAtomicNumber(137)).To(BeNumerically("~", capped, 1e-12))
	})

	It("matches the gold reference value", func() {
		v := 79 / 137.035999084
		Expect(relativity.FromAtomicNumber(79)).To(BeNumerically("~", 1/math.Sqrt(1-v*v), 1e-12))
		Expect(relativity.FromAtomicNumber(79)).To(BeNumerically("~", 1.224, 1e-3))
	})

	It("propagates out-of-domain input in permissive mode", func() {
		Expect(relativity.FromAtomicNumber(0)).To(Equal(1.0))
		Expect(math.IsNaN(relativity.FromAtomicNumber(-1000))).To(BeTrue())
	})

	It("rejects non-positive Z when checked", func() {
		for _, z := range []int{0, -1, -79} {
			_, err := relativity.FromAtomicNumberChecked(z)
			Expect(err).To(MatchError(quantum.ErrInvalidArgument))
		}
		g, err := relativity.FromAtomicNumberChecked(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(g).To(BeNumerically(">", 1))
	})
})

var _ = Describe("FromVelocity", func() {
	It("is one at rest", func() {
		Expect(relativity.FromVelocity(0)).To(Equal(1.0))
	})

	It("follows 1/sqrt(1-v^2)", func() {
		Expect(relativity.FromVelocity(0.6)).To(BeNumerically("~", 1.25, 1e-12))
		Expect(relativity.FromVelocity(-0.6)).To(BeNumerically("~", 1.25, 1e-12))
	})

	It("diverges at and beyond c in permissive mode", func() {
		Expect(math.IsInf(relativity.FromVelocity(1), 1)).To(BeTrue())
		Expect(math.IsNaN(relativity.FromVelocity(1.5))).To(BeTrue())
	})

	DescribeTable("checked domain",
		func(v float64, ok bool) {
			_, err := relativity.FromVelocityChecked(v)
			if ok {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(MatchError(quantum.ErrInvalidArgument))
			}
		},
		Entry("zero", 0.0, true),
		Entry("ui maximum", 0.99, true),
		Entry("negative", -0.5, true),
		Entry("light speed", 1.0, false),
		Entry("negative light speed", -1.0, false),
		Entry("superluminal", 1.2, false),
		Entry("NaN", math.NaN(), false),
	)
})
