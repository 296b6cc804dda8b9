// Package sweep evaluates the formulas over a range of one parameter while
// holding the others fixed. Samples are split across goroutines; each
// goroutine writes disjoint indices, so results are deterministic.
package sweep

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/spinlab/internal/optics"
	"github.com/san-kum/spinlab/internal/quantum"
)

const minChunk = 64

// Params are the quantities a sweep holds fixed.
type Params struct {
	AtomicNumber     int
	MagneticField    float64
	ThomasCorrection bool
	Numbers          quantum.Numbers
	Polarization     optics.Polarization
	Intensity        float64
}

// Fixed flattens the numeric parameters for run metadata.
func (p Params) Fixed() map[string]float64 {
	thomas := 0.0
	if p.ThomasCorrection {
		thomas = 1
	}
	return map[string]float64{
		"atomic_number":     float64(p.AtomicNumber),
		"magnetic_field":    p.MagneticField,
		"thomas_correction": thomas,
		"n":                 float64(p.Numbers.N),
		"l":                 float64(p.Numbers.L),
		"m":                 float64(p.Numbers.M),
		"s":                 p.Numbers.S,
		"intensity":         p.Intensity,
	}
}

// Kind describes one sweepable relation.
// From and To are the range used when a caller does not choose one.
// Check, when set, reports the domain error the checked formulas would
// raise at x.
type Kind struct {
	Name     string
	Param    string
	Columns  []string
	Integer  bool
	From, To float64
	Eval     func(x float64, p Params) []float64
	Check    func(x float64, p Params) error
}

// Spec selects a kind, the swept range and the fixed parameters.
// A Checked spec fails before evaluating anything if a sample lies outside
// the kind's domain.
type Spec struct {
	Kind    string
	From    float64
	To      float64
	Samples int
	Params  Params
	Checked bool
}

// Series is one named output column.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Result holds the swept samples and one series per output column.
type Result struct {
	Kind   string             `json:"kind"`
	Param  string             `json:"param"`
	X      []float64          `json:"x"`
	Series []Series           `json:"series"`
	Fixed  map[string]float64 `json:"fixed"`
}

// Column returns the series with the given name.
func (r *Result) Column(name string) ([]float64, bool) {
	for _, s := range r.Series {
		if s.Name == name {
			return s.Values, true
		}
	}
	return nil, false
}

type Registry struct {
	kinds map[string]Kind
}

func NewRegistry() *Registry {
	r := &Registry{kinds: make(map[string]Kind)}
	for _, k := range []Kind{lorentzKind(), velocityKind(), spinKind(), larmorKind(), stokesKind(), spectrumKind()} {
		r.Register(k)
	}
	return r
}

func (r *Registry) Register(k Kind) {
	r.kinds[k.Name] = k
}

func (r *Registry) Get(name string) (Kind, error) {
	k, ok := r.kinds[name]
	if !ok {
		return Kind{}, fmt.Errorf("unknown sweep: %s", name)
	}
	return k, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Samples returns the swept values. Integer kinds round to whole numbers
// and drop duplicates.
func (k Kind) Samples(from, to float64, n int) []float64 {
	xs := make([]float64, 0, n)
	step := (to - from) / float64(n-1)
	for i := 0; i < n; i++ {
		x := from + float64(i)*step
		if i == n-1 {
			x = to
		}
		if k.Integer {
			x = math.Round(x)
			if len(xs) > 0 && xs[len(xs)-1] == x {
				continue
			}
		}
		xs = append(xs, x)
	}
	return xs
}

// Run evaluates the spec. It returns ctx.Err() if canceled mid-sweep.
func (r *Registry) Run(ctx context.Context, spec Spec) (*Result, error) {
	kind, err := r.Get(spec.Kind)
	if err != nil {
		return nil, err
	}
	if spec.Samples < 2 {
		return nil, fmt.Errorf("sweep %s: need at least 2 samples, got %d", spec.Kind, spec.Samples)
	}
	if !finite(spec.From) || !finite(spec.To) || spec.From > spec.To {
		return nil, fmt.Errorf("sweep %s: invalid range [%g, %g]", spec.Kind, spec.From, spec.To)
	}

	xs := kind.Samples(spec.From, spec.To, spec.Samples)
	if spec.Checked && kind.Check != nil {
		for _, x := range xs {
			if err := kind.Check(x, spec.Params); err != nil {
				return nil, fmt.Errorf("sweep %s at %s=%g: %w", spec.Kind, kind.Param, x, err)
			}
		}
	}
	cols := make([][]float64, len(kind.Columns))
	for i := range cols {
		cols[i] = make([]float64, len(xs))
	}

	ParallelFor(len(xs), minChunk, func(start, end int) {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				return
			}
			for c, v := range kind.Eval(xs[i], spec.Params) {
				cols[c][i] = v
			}
		}
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Kind:   kind.Name,
		Param:  kind.Param,
		X:      xs,
		Series: make([]Series, len(cols)),
		Fixed:  spec.Params.Fixed(),
	}
	for c, name := range kind.Columns {
		result.Series[c] = Series{Name: name, Values: cols[c]}
	}
	return result, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
