package config

import (
	"sort"

	"github.com/san-kum/spinlab/internal/optics"
)

var Presets = map[string]*Config{
	"hydrogen": {
		Atom:     AtomConfig{AtomicNumber: 1, MagneticField: 1.0, ThomasCorrection: true},
		Electron: ElectronConfig{Shell: 0, Index: 0},
	},
	"neon": {
		Atom:     AtomConfig{AtomicNumber: 10, MagneticField: 2.0, ThomasCorrection: true},
		Electron: ElectronConfig{Shell: 1, Index: 3},
	},
	"gold": {
		Atom:     AtomConfig{AtomicNumber: 79, MagneticField: 1.0, ThomasCorrection: true},
		Electron: ElectronConfig{Shell: 0, Index: 0},
	},
	"gold-larmor": {
		Atom:     AtomConfig{AtomicNumber: 79, MagneticField: 1.0, ThomasCorrection: false},
		Electron: ElectronConfig{Shell: 0, Index: 0},
	},
	"strong-field": {
		Atom:     AtomConfig{AtomicNumber: 55, MagneticField: 10.0, ThomasCorrection: true},
		Electron: ElectronConfig{Shell: 3, Index: 0},
	},
	"horizontal": {
		Polarization: PolarizationConfig{Type: "linear", Angle: 0},
		Light:        lightPreset("laser", 633, 100),
		Material:     "glass",
	},
	"diagonal": {
		Polarization: PolarizationConfig{Type: "linear", Angle: 45},
		Light:        lightPreset("led", 470, 60),
		Material:     "water",
	},
	"right-circular": {
		Polarization: PolarizationConfig{Type: "circular", Direction: "right"},
		Light:        lightPreset("laser", 532, 80),
		Material:     "glass",
	},
	"ellipse": {
		Polarization: PolarizationConfig{Type: "elliptical", Ratio: 0.5, Orientation: 30},
		Light:        lightPreset("natural", 580, 50),
		Material:     "metal",
	},
}

// GetPreset returns a copy of the named preset merged over the defaults,
// or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	if p.Atom.AtomicNumber != 0 {
		cfg.Atom.AtomicNumber = p.Atom.AtomicNumber
		cfg.Atom.MagneticField = p.Atom.MagneticField
		cfg.Atom.ThomasCorrection = p.Atom.ThomasCorrection
		if p.Atom.Velocity != 0 {
			cfg.Atom.Velocity = p.Atom.Velocity
		}
		cfg.Electron = p.Electron
	}
	if p.Polarization.Type != "" {
		cfg.Polarization = p.Polarization
		if cfg.Polarization.Direction == "" {
			cfg.Polarization.Direction = "right"
		}
		cfg.Light = p.Light
		cfg.Material = p.Material
	}
	return cfg
}

// ListPresets returns the preset names in order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lightPreset(kind string, wavelength, intensity float64) optics.LightSource {
	return optics.LightSource{Type: optics.LightSourceType(kind), Wavelength: wavelength, Intensity: intensity}
}
