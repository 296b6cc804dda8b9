package sweep_test

import (
	"context"
	"math"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spinlab/internal/optics"
	"github.com/san-kum/spinlab/internal/precession"
	"github.com/san-kum/spinlab/internal/quantum"
	"github.com/san-kum/spinlab/internal/relativity"
	"github.com/san-kum/spinlab/internal/sweep"
)

var ground = quantum.Numbers{N: 1, L: 0, M: 0, S: 0.5}

var _ = Describe("Registry", func() {
	var reg *sweep.Registry

	BeforeEach(func() {
		reg = sweep.NewRegistry()
	})

	It("lists the built-in kinds", func() {
		Expect(reg.List()).To(Equal([]string{"larmor", "lorentz", "spectrum", "spin", "stokes", "velocity"}))
	})

	It("gives every kind a usable default range", func() {
		for _, name := range reg.List() {
			kind, err := reg.Get(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(kind.From).To(BeNumerically("<", kind.To), name)
			res, err := reg.Run(context.Background(), sweep.Spec{
				Kind: name, From: kind.From, To: kind.To, Samples: 16, Checked: true,
				Params: sweep.Params{AtomicNumber: 79, MagneticField: 1, Numbers: ground, Polarization: optics.Linear{}, Intensity: 1},
			})
			Expect(err).NotTo(HaveOccurred(), name)
			Expect(res.X[0]).To(Equal(kind.From), name)
		}
	})

	It("rejects unknown kinds", func() {
		_, err := reg.Run(context.Background(), sweep.Spec{Kind: "nope", Samples: 10})
		Expect(err).To(MatchError(ContainSubstring("unknown sweep")))
	})

	It("rejects degenerate ranges", func() {
		_, err := reg.Run(context.Background(), sweep.Spec{Kind: "lorentz", From: 10, To: 1, Samples: 10})
		Expect(err).To(HaveOccurred())
		_, err = reg.Run(context.Background(), sweep.Spec{Kind: "lorentz", From: 1, To: 10, Samples: 1})
		Expect(err).To(HaveOccurred())
	})

	It("rejects samples outside the domain when checked", func() {
		_, err := reg.Run(context.Background(), sweep.Spec{Kind: "lorentz", From: -300, To: 0, Samples: 10, Checked: true})
		Expect(err).To(MatchError(quantum.ErrInvalidArgument))
		Expect(err).To(MatchError(ContainSubstring("atomic_number=-300")))

		_, err = reg.Run(context.Background(), sweep.Spec{Kind: "velocity", From: 0.5, To: 1.5, Samples: 11, Checked: true})
		Expect(err).To(MatchError(quantum.ErrInvalidArgument))

		_, err = reg.Run(context.Background(), sweep.Spec{
			Kind: "stokes", From: 0, To: 90, Samples: 4, Checked: true,
			Params: sweep.Params{Polarization: optics.Linear{}, Intensity: -1},
		})
		Expect(err).To(MatchError(quantum.ErrInvalidArgument))
	})

	It("propagates NaN outside the domain when permissive", func() {
		res, err := reg.Run(context.Background(), sweep.Spec{Kind: "velocity", From: 0.5, To: 1.5, Samples: 11})
		Expect(err).NotTo(HaveOccurred())
		gamma, ok := res.Column("gamma")
		Expect(ok).To(BeTrue())
		Expect(math.IsNaN(gamma[len(gamma)-1])).To(BeTrue())
	})

	It("rejects infinite ranges", func() {
		_, err := reg.Run(context.Background(), sweep.Spec{Kind: "velocity", From: 0, To: math.Inf(1), Samples: 10})
		Expect(err).To(MatchError(ContainSubstring("invalid range")))
	})

	It("sweeps gamma over every atomic number", func() {
		res, err := reg.Run(context.Background(), sweep.Spec{Kind: "lorentz", From: 1, To: 102, Samples: 500})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.X).To(HaveLen(102))
		Expect(res.X[0]).To(Equal(1.0))
		Expect(res.X[101]).To(Equal(102.0))

		gamma, ok := res.Column("gamma")
		Expect(ok).To(BeTrue())
		for i, z := range res.X {
			Expect(gamma[i]).To(Equal(relativity.FromAtomicNumber(int(z))))
		}
	})

	It("matches the precession formulas point by point", func() {
		params := sweep.Params{MagneticField: 1.5, Numbers: ground, ThomasCorrection: true}
		res, err := reg.Run(context.Background(), sweep.Spec{Kind: "spin", From: 1, To: 100, Samples: 100, Params: params})
		Expect(err).NotTo(HaveOccurred())

		spin, _ := res.Column("spin")
		for i, z := range res.X {
			Expect(spin[i]).To(Equal(precession.Spin(int(z), 1.5, ground, true)))
		}
		Expect(res.Fixed).To(HaveKeyWithValue("magnetic_field", 1.5))
	})

	It("is deterministic across parallel runs", func() {
		spec := sweep.Spec{Kind: "larmor", From: 0, To: 10, Samples: 4096,
			Params: sweep.Params{AtomicNumber: 79, Numbers: ground}}
		a, err := reg.Run(context.Background(), spec)
		Expect(err).NotTo(HaveOccurred())
		b, err := reg.Run(context.Background(), spec)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
		Expect(a.X[len(a.X)-1]).To(Equal(10.0))
	})

	It("rotates linear polarization", func() {
		res, err := reg.Run(context.Background(), sweep.Spec{Kind: "stokes", From: 0, To: 180, Samples: 181,
			Params: sweep.Params{Intensity: 1}})
		Expect(err).NotTo(HaveOccurred())
		s1, _ := res.Column("s1")
		dop, _ := res.Column("dop")
		Expect(s1[0]).To(BeNumerically("~", 1, 1e-12))
		Expect(s1[90]).To(BeNumerically("~", -1, 1e-12))
		for _, d := range dop {
			Expect(d).To(BeNumerically("~", 1, 1e-12))
		}
	})

	It("rotates an ellipse by orientation", func() {
		res, err := reg.Run(context.Background(), sweep.Spec{Kind: "stokes", From: 0, To: 90, Samples: 10,
			Params: sweep.Params{Intensity: 2, Polarization: optics.Elliptical{AxisRatio: 0.5}}})
		Expect(err).NotTo(HaveOccurred())
		s3, _ := res.Column("s3")
		Expect(s3).To(HaveEach(BeZero()))
	})

	It("stops when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := reg.Run(ctx, sweep.Spec{Kind: "spectrum", From: 380, To: 780, Samples: 100})
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("ParallelFor", func() {
	It("visits every index exactly once", func() {
		const n = 10000
		var hits [n]int32
		sweep.ParallelFor(n, 16, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i := range hits {
			Expect(hits[i]).To(Equal(int32(1)))
		}
	})

	It("runs small ranges inline", func() {
		calls := 0
		sweep.ParallelFor(5, 64, func(start, end int) {
			calls++
			Expect(start).To(Equal(0))
			Expect(end).To(Equal(5))
		})
		Expect(calls).To(Equal(1))
	})
})
