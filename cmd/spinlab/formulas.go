package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/spinlab/internal/config"
	"github.com/san-kum/spinlab/internal/elements"
	"github.com/san-kum/spinlab/internal/notation"
	"github.com/san-kum/spinlab/internal/optics"
	"github.com/san-kum/spinlab/internal/precession"
	"github.com/san-kum/spinlab/internal/quantum"
	"github.com/san-kum/spinlab/internal/relativity"
	"github.com/san-kum/spinlab/internal/shell"
)

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func runLorentz(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	w := newTable()
	if cmd.Flags().Changed("velocity") {
		v := cfg.Atom.Velocity
		gamma := relativity.FromVelocity(v)
		if !cfg.Permissive {
			if gamma, err = relativity.FromVelocityChecked(v); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "velocity\t%gc\n", v)
		fmt.Fprintf(w, "gamma\t%.6f\n", gamma)
		return w.Flush()
	}

	z, err := atomicNumberArg(args, cfg)
	if err != nil {
		return err
	}
	gamma := relativity.FromAtomicNumber(z)
	if !cfg.Permissive {
		if gamma, err = relativity.FromAtomicNumberChecked(z); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "atomic number\t%d\n", z)
	fmt.Fprintf(w, "velocity\t%.4fc\n", relativity.Velocity(z))
	fmt.Fprintf(w, "gamma\t%.6f\n", gamma)
	fmt.Fprintf(w, "significant\t%s\n", yesNo(precession.IsRelativisticSignificant(z)))
	return w.Flush()
}

// electronNumbers picks the configured electron, then applies any explicit
// --n/--l/--m/--s flags.
func electronNumbers(cmd *cobra.Command, cfg *config.Config) (quantum.Numbers, error) {
	qn, err := cfg.QuantumNumbers()
	if err != nil {
		return qn, err
	}
	flags := cmd.Flags()
	if flags.Changed("n") {
		qn.N = qnN
	}
	if flags.Changed("l") {
		qn.L = qnL
	}
	if flags.Changed("m") {
		qn.M = qnM
	}
	if flags.Changed("s") {
		qn.S = qnS
	}
	return qn, nil
}

func runPrecession(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	z, err := atomicNumberArg(args, cfg)
	if err != nil {
		return err
	}
	qn, err := electronNumbers(cmd, cfg)
	if err != nil {
		return err
	}

	b, useThomas := cfg.Atom.MagneticField, cfg.Atom.ThomasCorrection
	var freq float64
	if cfg.Permissive {
		freq = precession.Spin(z, b, qn, useThomas)
	} else if freq, err = precession.SpinChecked(z, b, qn, useThomas); err != nil {
		return err
	}

	gamma := relativity.FromAtomicNumber(z)
	larmor := precession.Larmor(b)

	w := newTable()
	fmt.Fprintf(w, "atomic number\t%d\n", z)
	fmt.Fprintf(w, "field\t%g T\n", b)
	fmt.Fprintf(w, "electron\t%s\n", qn)
	fmt.Fprintf(w, "gamma\t%.6f\n", gamma)
	fmt.Fprintf(w, "larmor\t%s\n", notation.Frequency(larmor))
	fmt.Fprintf(w, "thomas\t%s\n", notation.Frequency(precession.Thomas(larmor, gamma)))
	fmt.Fprintf(w, "thomas applied\t%s\n", yesNo(useThomas))
	fmt.Fprintf(w, "spin\t%s\n", notation.Frequency(freq))
	fmt.Fprintf(w, "direction\t%s\n", precession.Rotation(freq))
	fmt.Fprintf(w, "speed\t%s\n", precession.Describe(freq))
	return w.Flush()
}

func formatConfiguration(c shell.Configuration) string {
	parts := make([]string, len(c))
	for i, k := range c {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}

func runShells(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	z, err := atomicNumberArg(args, cfg)
	if err != nil {
		return err
	}

	conf := shell.Fill(z)
	if !cfg.Permissive {
		if conf, err = shell.FillChecked(z); err != nil {
			return err
		}
	}

	fmt.Printf("Z=%d shells: %s (total %d, valence %d)\n", z, formatConfiguration(conf), conf.Total(), conf.Valence())
	if !electrons {
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "\nSHELL\tINDEX\tN\tL\tM\tS")
	for _, e := range shell.Electrons(conf) {
		q := e.Numbers
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%+.1f\n", e.Shell, e.Index, q.N, q.L, q.M, q.S)
	}
	return w.Flush()
}

func runStokes(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	state, err := cfg.PolarizationState()
	if err != nil {
		return err
	}

	i := cfg.Light.Intensity
	s := optics.StokesFor(state, i)
	if !cfg.Permissive {
		if s, err = optics.StokesChecked(state, i); err != nil {
			return err
		}
	}

	p := s.Poincare()
	w := newTable()
	fmt.Fprintf(w, "state\t%s\n", state.Kind())
	fmt.Fprintf(w, "S0\t%.4f\n", s.S0)
	fmt.Fprintf(w, "S1\t%.4f\n", s.S1)
	fmt.Fprintf(w, "S2\t%.4f\n", s.S2)
	fmt.Fprintf(w, "S3\t%.4f\n", s.S3)
	fmt.Fprintf(w, "degree\t%.4f\n", s.DegreeOfPolarization())
	fmt.Fprintf(w, "poincare\t(%.4f, %.4f, %.4f)\n", p[0], p[1], p[2])
	if j, ok := optics.JonesFor(state); ok {
		fmt.Fprintf(w, "jones\t(%.4f, %.4f)\n", j.Ex, j.Ey)
	}
	return w.Flush()
}

func runBrewster(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	materials := optics.Materials()
	if len(args) == 1 {
		m := optics.Material(strings.ToLower(args[0]))
		if !cfg.Permissive {
			if m, err = optics.ParseMaterial(args[0]); err != nil {
				return err
			}
		}
		materials = []optics.Material{m}
	}

	w := newTable()
	fmt.Fprintln(w, "MATERIAL\tINDEX\tBREWSTER")
	for _, m := range materials {
		angle := optics.Brewster(m)
		if !cfg.Permissive {
			if angle, err = optics.BrewsterChecked(m); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "%s\t%.2f\t%.2f°\n", m, m.RefractiveIndex(), angle)
	}
	return w.Flush()
}

func runColor(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	light := cfg.Light
	if len(args) == 1 {
		if light.Wavelength, err = strconv.ParseFloat(args[0], 64); err != nil {
			return fmt.Errorf("wavelength must be a number: %q", args[0])
		}
	}
	if !cfg.Permissive {
		if err := light.Validate(); err != nil {
			return err
		}
	}

	c := light.Color()
	fmt.Printf("%g nm  %s  %s\n", light.Wavelength, c, c.Hex())
	return nil
}

func runElement(cmd *cobra.Command, args []string) error {
	catalog, err := elements.Default()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		w := newTable()
		fmt.Fprintln(w, "Z\tSYMBOL\tNAME\tCATEGORY\tSHELLS")
		for _, el := range catalog.All() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", el.Number, el.Symbol, el.Name, el.Category, formatConfiguration(shell.Fill(el.Number)))
		}
		return w.Flush()
	}

	el, err := catalog.Lookup(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	w := newTable()
	fmt.Fprintf(w, "name\t%s (%s)\n", el.Name, el.Symbol)
	fmt.Fprintf(w, "atomic number\t%d\n", el.Number)
	fmt.Fprintf(w, "mass\t%s\n", el.Mass)
	fmt.Fprintf(w, "category\t%s\n", el.Category)
	fmt.Fprintf(w, "period\t%d\n", el.Period)
	if el.Group != nil {
		fmt.Fprintf(w, "group\t%d\n", *el.Group)
	}
	fmt.Fprintf(w, "block\t%s\n", el.Block)
	fmt.Fprintf(w, "configuration\t%s\n", el.ElectronConfiguration)
	fmt.Fprintf(w, "shells\t%s\n", formatConfiguration(shell.Fill(el.Number)))
	fmt.Fprintf(w, "gamma\t%.6f\n", relativity.FromAtomicNumber(el.Number))
	if el.DiscoveredBy != "" {
		fmt.Fprintf(w, "discovered\t%s %s\n", el.DiscoveredBy, el.YearDiscovered)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%s\n", el.Description)
	return nil
}
