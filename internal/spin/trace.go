package spin

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/spinlab/internal/sweep"
)

var (
	// ErrDiverged indicates the integrated vector left the finite range.
	ErrDiverged = errors.New("spin: trajectory diverged (NaN or Inf detected)")

	// ErrStationary indicates a zero or undefined frequency, which has no period.
	ErrStationary = errors.New("spin: frequency has no finite period")
)

// TraceConfig sets the sampling of a trajectory.
type TraceConfig struct {
	Periods        int     `yaml:"periods"`
	StepsPerPeriod int     `yaml:"steps_per_period"`
	Tilt           float64 `yaml:"tilt"`
}

func DefaultTraceConfig() TraceConfig {
	return TraceConfig{Periods: 16, StepsPerPeriod: 64, Tilt: 45}
}

// Trace is a sampled trajectory; Times[i] is the time of States[i].
type Trace struct {
	Omega  float64
	Dt     float64
	Times  []float64
	States []Vector
}

// StepError wraps a failure with the step it happened on.
type StepError struct {
	Step    int
	Time    float64
	State   Vector
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%g): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}

// Integrate samples cfg.Periods full turns of precession at omega.
func Integrate(ctx context.Context, omega float64, cfg TraceConfig) (*Trace, error) {
	if omega == 0 || math.IsNaN(omega) || math.IsInf(omega, 0) {
		return nil, ErrStationary
	}
	if cfg.Periods < 1 || cfg.StepsPerPeriod < 4 {
		return nil, fmt.Errorf("spin: need at least 1 period and 4 steps per period, got %d and %d", cfg.Periods, cfg.StepsPerPeriod)
	}

	period := 2 * math.Pi / math.Abs(omega)
	dt := period / float64(cfg.StepsPerPeriod)
	steps := cfg.Periods * cfg.StepsPerPeriod
	field := Precession(omega)

	tr := &Trace{
		Omega:  omega,
		Dt:     dt,
		Times:  make([]float64, 0, steps),
		States: make([]Vector, 0, steps),
	}

	s := Tilted(cfg.Tilt)
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t := float64(i) * dt
		tr.Times = append(tr.Times, t)
		tr.States = append(tr.States, s)

		s = RK4(field, s, t, dt)
		if !s.IsValid() {
			return nil, &StepError{Step: i, Time: t, State: s, Wrapped: ErrDiverged}
		}
	}
	return tr, nil
}

// Component returns one coordinate of every sample.
func (tr *Trace) Component(axis int) []float64 {
	out := make([]float64, len(tr.States))
	for i, s := range tr.States {
		out[i] = s[axis]
	}
	return out
}

// NormDrift is the largest deviation of |S| from its initial value.
func (tr *Trace) NormDrift() float64 {
	if len(tr.States) == 0 {
		return 0
	}
	n0 := tr.States[0].Norm()
	drift := 0.0
	for _, s := range tr.States {
		drift = math.Max(drift, math.Abs(s.Norm()-n0))
	}
	return drift
}

// Result packs the trajectory as a run over time so it can be stored and
// plotted like a sweep.
func (tr *Trace) Result(fixed map[string]float64) *sweep.Result {
	return &sweep.Result{
		Kind:  "trace",
		Param: "time_s",
		X:     tr.Times,
		Series: []sweep.Series{
			{Name: "sx", Values: tr.Component(0)},
			{Name: "sy", Values: tr.Component(1)},
			{Name: "sz", Values: tr.Component(2)},
		},
		Fixed: fixed,
	}
}
