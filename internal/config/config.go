package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/spinlab/internal/optics"
	"github.com/san-kum/spinlab/internal/quantum"
	"github.com/san-kum/spinlab/internal/shell"
	"github.com/san-kum/spinlab/internal/spin"
)

const (
	DefaultAtomicNumber  = 79
	DefaultMagneticField = 1.0
	DefaultVelocity      = 0.5
	DefaultIntensity     = 50.0
	DefaultWavelength    = 550.0
	DefaultSweepSamples  = 200
)

// Config is a scenario: the atom, the selected electron, the optics bench
// and an optional sweep.
type Config struct {
	Atom         AtomConfig         `yaml:"atom"`
	Electron     ElectronConfig     `yaml:"electron"`
	Polarization PolarizationConfig `yaml:"polarization"`
	Light        optics.LightSource `yaml:"light"`
	Material     string             `yaml:"material"`
	Sweep        SweepConfig        `yaml:"sweep"`
	Trace        spin.TraceConfig   `yaml:"trace"`
	Permissive   bool               `yaml:"permissive"`
}

type AtomConfig struct {
	AtomicNumber     int     `yaml:"atomic_number"`
	MagneticField    float64 `yaml:"magnetic_field"`
	ThomasCorrection bool    `yaml:"thomas_correction"`
	Velocity         float64 `yaml:"velocity"`
}

// ElectronConfig selects one slot of the shell model by 0-based indices.
type ElectronConfig struct {
	Shell int `yaml:"shell"`
	Index int `yaml:"index"`
}

type PolarizationConfig struct {
	Type        string  `yaml:"type"`
	Angle       float64 `yaml:"angle"`
	Direction   string  `yaml:"direction"`
	Ratio       float64 `yaml:"ratio"`
	Orientation float64 `yaml:"orientation"`
}

type SweepConfig struct {
	Kind    string  `yaml:"kind"`
	From    float64 `yaml:"from"`
	To      float64 `yaml:"to"`
	Samples int     `yaml:"samples"`
}

func DefaultConfig() *Config {
	return &Config{
		Atom: AtomConfig{
			AtomicNumber:     DefaultAtomicNumber,
			MagneticField:    DefaultMagneticField,
			ThomasCorrection: true,
			Velocity:         DefaultVelocity,
		},
		Polarization: PolarizationConfig{
			Type:      "linear",
			Direction: "right",
			Ratio:     0.5,
		},
		Light: optics.LightSource{
			Type:       optics.Laser,
			Wavelength: DefaultWavelength,
			Intensity:  DefaultIntensity,
		},
		Material: string(optics.Glass),
		Sweep: SweepConfig{
			Kind:    "spin",
			From:    1,
			To:      shell.MaxAtomicNumber,
			Samples: DefaultSweepSamples,
		},
		Trace: spin.DefaultTraceConfig(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// QuantumNumbers returns the quantum numbers of the selected electron. In
// checked mode the electron must occupy a slot of the configured atom.
func (c *Config) QuantumNumbers() (quantum.Numbers, error) {
	if c.Permissive {
		return shell.QuantumNumbers(c.Electron.Shell, c.Electron.Index), nil
	}
	conf, err := shell.FillChecked(c.Atom.AtomicNumber)
	if err != nil {
		return quantum.Numbers{}, err
	}
	return conf.Occupant(c.Electron.Shell, c.Electron.Index)
}

// PolarizationState builds the configured polarization variant.
func (c *Config) PolarizationState() (optics.Polarization, error) {
	p := c.Polarization
	return optics.Parse(p.Type, p.Angle, p.Direction, p.Ratio, p.Orientation)
}

// MaterialType parses the configured material.
func (c *Config) MaterialType() (optics.Material, error) {
	return optics.ParseMaterial(c.Material)
}

// Validate checks the fields the checked entry points do not cover.
func (c *Config) Validate() error {
	if c.Permissive {
		return nil
	}
	if _, err := c.QuantumNumbers(); err != nil {
		return err
	}
	if err := c.Light.Validate(); err != nil {
		return err
	}
	if _, err := c.PolarizationState(); err != nil {
		return err
	}
	if _, err := c.MaterialType(); err != nil {
		return err
	}
	if c.Sweep.Samples < 2 {
		return fmt.Errorf("sweep samples must be at least 2, got %d", c.Sweep.Samples)
	}
	if c.Trace.Periods < 1 || c.Trace.StepsPerPeriod < 4 {
		return fmt.Errorf("trace needs at least 1 period of 4 steps, got %d x %d", c.Trace.Periods, c.Trace.StepsPerPeriod)
	}
	return nil
}
