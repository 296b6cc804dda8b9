package quantum

import (
	"fmt"
	"math"
)

// Numbers are the (n, l, m, s) quantum numbers of one electron slot.
//
// The simplified shell model does not enforce l ≤ n−1.
type Numbers struct {
	N int     `json:"n" yaml:"n"`
	L int     `json:"l" yaml:"l"`
	M int     `json:"m" yaml:"m"`
	S float64 `json:"s" yaml:"s"`
}

func (q Numbers) String() string {
	return fmt.Sprintf("n=%d l=%d m=%d s=%+.1f", q.N, q.L, q.M, q.S)
}

// SpinSign is +1 for spin up and -1 otherwise, including s == 0.
func (q Numbers) SpinSign() float64 {
	if q.S > 0 {
		return 1
	}
	return -1
}

// OrbitalFactor is 1 + m/(l+1).
func (q Numbers) OrbitalFactor() float64 {
	return 1 + float64(q.M)/float64(q.L+1)
}

// Validate checks the structural constraints the formulas rely on.
func (q Numbers) Validate() error {
	switch {
	case q.N < 1:
		return Invalid("Numbers.Validate", q, "n must be positive")
	case q.L < 0:
		return Invalid("Numbers.Validate", q, "l must be non-negative")
	case q.M < -q.L || q.M > q.L:
		return Invalid("Numbers.Validate", q, "m must lie in [-l, l]")
	case math.Abs(q.S) != 0.5:
		return Invalid("Numbers.Validate", q, "s must be ±0.5")
	}
	return nil
}

// Direction is the sense of rotation encoded by a frequency's sign.
type Direction int

const (
	Stationary Direction = iota
	Clockwise
	Counterclockwise
)

// DirectionOf maps positive frequencies to Clockwise.
func DirectionOf(freq float64) Direction {
	switch {
	case freq > 0:
		return Clockwise
	case freq < 0:
		return Counterclockwise
	default:
		return Stationary
	}
}

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case Counterclockwise:
		return "counterclockwise"
	default:
		return "stationary"
	}
}
