// Package shell implements the simplified electron shell model used by the
// atom view: a capacity-bounded greedy fill over five shells and a
// deterministic quantum-number assignment per electron slot.
//
// The model ignores the Madelung filling order and does not enforce
// l ≤ n−1. Both simplifications are intentional.
package shell

import (
	"fmt"

	"github.com/san-kum/spinlab/internal/quantum"
)

// Capacities are the maximum occupancies 2n² of shells n = 1..5.
var Capacities = [...]int{2, 8, 18, 32, 50}

// MaxAtomicNumber is the largest atomic number FillChecked accepts.
const MaxAtomicNumber = 102

// Configuration is an ordered sequence of shell occupancies.
type Configuration []int

// Total returns the number of electrons placed.
func (c Configuration) Total() int {
	n := 0
	for _, k := range c {
		n += k
	}
	return n
}

// Valence returns the occupancy of the outermost shell, or 0 when empty.
func (c Configuration) Valence() int {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1]
}

// Fill distributes z electrons greedily over the shells. Filling stops at the
// first shell that would stay empty or when all five shells are used, so
// electrons beyond the total capacity are dropped.
func Fill(z int) Configuration {
	shells := make(Configuration, 0, len(Capacities))
	remaining := z
	for _, capacity := range Capacities {
		k := min(remaining, capacity)
		if k <= 0 {
			break
		}
		shells = append(shells, k)
		remaining -= k
	}
	return shells
}

// FillChecked is Fill restricted to 1 <= z <= MaxAtomicNumber.
func FillChecked(z int) (Configuration, error) {
	if z <= 0 {
		return nil, quantum.Invalid("shell.Fill", z, "atomic number must be positive")
	}
	if z > MaxAtomicNumber {
		return nil, quantum.Unrepresentable("shell.Fill", z, "exceeds five-shell model")
	}
	return Fill(z), nil
}

// QuantumNumbers assigns quantum numbers to electron e (0-based) of shell
// s (0-based): n = s+1, l = min(s, 3), m cycles over [-l, l] and s
// alternates +½, −½ starting with spin up.
func QuantumNumbers(s, e int) quantum.Numbers {
	l := min(s, 3)
	spin := 0.5
	if e%2 != 0 {
		spin = -0.5
	}
	return quantum.Numbers{
		N: s + 1,
		L: l,
		M: e%(2*l+1) - l,
		S: spin,
	}
}

// QuantumNumbersChecked is QuantumNumbers restricted to non-negative indices.
func QuantumNumbersChecked(s, e int) (quantum.Numbers, error) {
	if s < 0 {
		return quantum.Numbers{}, quantum.Invalid("shell.QuantumNumbers", s, "shell index must be non-negative")
	}
	if e < 0 {
		return quantum.Numbers{}, quantum.Invalid("shell.QuantumNumbers", e, "electron index must be non-negative")
	}
	return QuantumNumbers(s, e), nil
}

// Occupant returns the quantum numbers of electron e of shell s, or an
// ErrInvalidArgument error when c has no such slot.
func (c Configuration) Occupant(s, e int) (quantum.Numbers, error) {
	if _, err := QuantumNumbersChecked(s, e); err != nil {
		return quantum.Numbers{}, err
	}
	if s >= len(c) {
		return quantum.Numbers{}, quantum.Invalid("shell.Occupant", s, fmt.Sprintf("configuration has %d shells", len(c)))
	}
	if e >= c[s] {
		return quantum.Numbers{}, quantum.Invalid("shell.Occupant", e, fmt.Sprintf("shell %d holds %d electrons", s, c[s]))
	}
	return QuantumNumbers(s, e), nil
}

// Electron is one occupied slot of a configuration.
type Electron struct {
	Shell   int             `json:"shell"`
	Index   int             `json:"index"`
	Numbers quantum.Numbers `json:"quantum_numbers"`
}

// Electrons lists every slot of c in shell order.
func Electrons(c Configuration) []Electron {
	out := make([]Electron, 0, c.Total())
	for s, count := range c {
		for e := 0; e < count; e++ {
			out = append(out, Electron{Shell: s, Index: e, Numbers: QuantumNumbers(s, e)})
		}
	}
	return out
}
