package shell

import (
	"errors"
	"reflect"
	"testing"

	"github.com/san-kum/spinlab/internal/quantum"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name string
		z    int
		want Configuration
	}{
		{"hydrogen", 1, Configuration{1}},
		{"helium", 2, Configuration{2}},
		{"lithium", 3, Configuration{2, 1}},
		{"neon", 10, Configuration{2, 8}},
		{"argon", 18, Configuration{2, 8, 8}},
		{"krypton", 36, Configuration{2, 8, 18, 8}},
		{"gold", 79, Configuration{2, 8, 18, 32, 19}},
		{"nobelium", 102, Configuration{2, 8, 18, 32, 42}},
		{"full", 110, Configuration{2, 8, 18, 32, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fill(tt.z); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fill(%d) = %v, want %v", tt.z, got, tt.want)
			}
		})
	}
}

func TestFill_Permissive(t *testing.T) {
	if got := Fill(0); len(got) != 0 {
		t.Errorf("Fill(0) = %v, want empty", got)
	}
	if got := Fill(-5); len(got) != 0 {
		t.Errorf("Fill(-5) = %v, want empty", got)
	}
	over := Fill(118)
	if over.Total() != 110 {
		t.Errorf("Fill(118) placed %d electrons, want truncation at 110", over.Total())
	}
}

func TestFill_TotalMatches(t *testing.T) {
	for z := 1; z <= MaxAtomicNumber; z++ {
		c := Fill(z)
		if c.Total() != z {
			t.Fatalf("Fill(%d) total = %d", z, c.Total())
		}
		for i, k := range c {
			if k <= 0 || k > Capacities[i] {
				t.Fatalf("Fill(%d) shell %d = %d out of bounds", z, i, k)
			}
		}
	}
}

func TestFillChecked(t *testing.T) {
	tests := []struct {
		z    int
		kind error
	}{
		{1, nil},
		{102, nil},
		{0, quantum.ErrInvalidArgument},
		{-3, quantum.ErrInvalidArgument},
		{103, quantum.ErrUnrepresentable},
		{118, quantum.ErrUnrepresentable},
	}

	for _, tt := range tests {
		c, err := FillChecked(tt.z)
		if tt.kind == nil {
			if err != nil {
				t.Errorf("FillChecked(%d) unexpected error: %v", tt.z, err)
			}
			if c.Total() != tt.z {
				t.Errorf("FillChecked(%d) total = %d", tt.z, c.Total())
			}
			continue
		}
		if !errors.Is(err, tt.kind) {
			t.Errorf("FillChecked(%d) error = %v, want %v", tt.z, err, tt.kind)
		}
	}
}

func TestQuantumNumbers(t *testing.T) {
	tests := []struct {
		shell, electron int
		want            quantum.Numbers
	}{
		{0, 0, quantum.Numbers{N: 1, L: 0, M: 0, S: 0.5}},
		{0, 1, quantum.Numbers{N: 1, L: 0, M: 0, S: -0.5}},
		{1, 0, quantum.Numbers{N: 2, L: 1, M: -1, S: 0.5}},
		{1, 4, quantum.Numbers{N: 2, L: 1, M: 0, S: 0.5}},
		{2, 7, quantum.Numbers{N: 3, L: 2, M: 0, S: -0.5}},
		{4, 0, quantum.Numbers{N: 5, L: 3, M: -3, S: 0.5}},
		{4, 13, quantum.Numbers{N: 5, L: 3, M: 3, S: -0.5}},
	}

	for _, tt := range tests {
		if got := QuantumNumbers(tt.shell, tt.electron); got != tt.want {
			t.Errorf("QuantumNumbers(%d, %d) = %v, want %v", tt.shell, tt.electron, got, tt.want)
		}
	}
}

func TestQuantumNumbers_AlwaysValid(t *testing.T) {
	for s := 0; s < 8; s++ {
		for e := 0; e < 60; e++ {
			if err := QuantumNumbers(s, e).Validate(); err != nil {
				t.Fatalf("QuantumNumbers(%d, %d) invalid: %v", s, e, err)
			}
		}
	}
}

func TestQuantumNumbersChecked(t *testing.T) {
	if _, err := QuantumNumbersChecked(-1, 0); !errors.Is(err, quantum.ErrInvalidArgument) {
		t.Errorf("expected invalid argument for negative shell, got %v", err)
	}
	if _, err := QuantumNumbersChecked(0, -1); !errors.Is(err, quantum.ErrInvalidArgument) {
		t.Errorf("expected invalid argument for negative electron, got %v", err)
	}
	if q, err := QuantumNumbersChecked(0, 0); err != nil || q.N != 1 {
		t.Errorf("QuantumNumbersChecked(0, 0) = %v, %v", q, err)
	}
}

func TestElectrons(t *testing.T) {
	c := Fill(18)
	es := Electrons(c)
	if len(es) != 18 {
		t.Fatalf("expected 18 electrons, got %d", len(es))
	}
	last := es[len(es)-1]
	if last.Shell != 2 || last.Index != 7 {
		t.Errorf("last electron at shell %d index %d", last.Shell, last.Index)
	}
	if last.Numbers != QuantumNumbers(2, 7) {
		t.Errorf("numbers mismatch: %v", last.Numbers)
	}
	if c.Valence() != 8 {
		t.Errorf("valence = %d, want 8", c.Valence())
	}
	if (Configuration{}).Valence() != 0 {
		t.Error("empty valence should be 0")
	}
}

func TestOccupant(t *testing.T) {
	c := Fill(55) // [2 8 18 27]

	tests := []struct {
		name    string
		s, e    int
		wantErr bool
	}{
		{"first", 0, 0, false},
		{"last of partial shell", 3, 26, false},
		{"past partial shell", 3, 27, true},
		{"missing shell", 4, 0, true},
		{"negative shell", -1, 0, true},
		{"negative electron", 0, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := c.Occupant(tt.s, tt.e)
			if tt.wantErr {
				if !errors.Is(err, quantum.ErrInvalidArgument) {
					t.Errorf("expected invalid argument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q != QuantumNumbers(tt.s, tt.e) {
				t.Errorf("numbers mismatch: %v", q)
			}
		})
	}
}
