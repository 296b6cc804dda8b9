package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/san-kum/spinlab/internal/config"
	"github.com/san-kum/spinlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	permissive bool
	verbose    bool
	// atom and electron
	field    float64
	thomas   bool
	shellIdx int
	index    int
	qnN      int
	qnL      int
	qnM      int
	qnS      float64
	velocity float64
	// optics
	polType     string
	angle       float64
	direction   string
	ratio       float64
	orientation float64
	intensity   float64
	// explorer
	theme string
	// run store
	from      float64
	to        float64
	samples   int
	column    string
	outFile   string
	title     string
	scale     float64
	electrons bool
	// trace
	periods int
	steps   int
	tilt    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spinlab",
		Short: "relativistic spin precession and polarization lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		Args: cobra.MaximumNArgs(1),
		// Default to the explorer when no command is given
		RunE: runExplore,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".spinlab", "data directory")
	pf.StringVar(&configFile, "config", "", "scenario file (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset scenario")
	pf.BoolVar(&permissive, "permissive", false, "propagate NaN/Inf instead of rejecting bad input")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	exploreCmd := &cobra.Command{
		Use:   "explore [Z]",
		Short: "interactive atom and spin precession explorer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExplore,
	}
	atomFlags(exploreCmd)
	exploreCmd.Flags().IntVar(&index, "electron", 0, "selected electron (0-based, across all shells)")
	exploreCmd.Flags().StringVar(&theme, "theme", "spectrum", "color theme")

	lorentzCmd := &cobra.Command{
		Use:   "lorentz [Z]",
		Short: "Lorentz factor of an inner electron",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLorentz,
	}
	lorentzCmd.Flags().Float64Var(&velocity, "velocity", 0.5, "speed as a fraction of c (instead of Z)")

	precessionCmd := &cobra.Command{
		Use:   "precession [Z]",
		Short: "Larmor, Thomas and spin precession frequencies",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPrecession,
	}
	atomFlags(precessionCmd)
	precessionCmd.Flags().IntVar(&shellIdx, "shell", 0, "shell of the electron (0-based)")
	precessionCmd.Flags().IntVar(&index, "index", 0, "electron within the shell (0-based)")
	precessionCmd.Flags().IntVar(&qnN, "n", 1, "principal quantum number")
	precessionCmd.Flags().IntVar(&qnL, "l", 0, "orbital quantum number")
	precessionCmd.Flags().IntVar(&qnM, "m", 0, "magnetic quantum number")
	precessionCmd.Flags().Float64Var(&qnS, "s", 0.5, "spin quantum number")

	shellsCmd := &cobra.Command{
		Use:   "shells [Z]",
		Short: "shell occupancy",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShells,
	}
	shellsCmd.Flags().BoolVar(&electrons, "electrons", false, "list quantum numbers of every electron")

	stokesCmd := &cobra.Command{
		Use:   "stokes",
		Short: "Stokes parameters of a polarization state",
		Args:  cobra.NoArgs,
		RunE:  runStokes,
	}
	polarizationFlags(stokesCmd)

	brewsterCmd := &cobra.Command{
		Use:   "brewster [material]",
		Short: "Brewster angle (all materials when none given)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBrewster,
	}

	colorCmd := &cobra.Command{
		Use:   "color [nm]",
		Short: "display color of a wavelength",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runColor,
	}

	elementCmd := &cobra.Command{
		Use:   "element [symbol or Z]",
		Short: "periodic table entry with its shells",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runElement,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [kind]",
		Short: "sweep one parameter and save the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	atomFlags(sweepCmd)
	polarizationFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&from, "from", 0, "start of the range")
	sweepCmd.Flags().Float64Var(&to, "to", 0, "end of the range")
	sweepCmd.Flags().IntVar(&samples, "samples", config.DefaultSweepSamples, "number of samples")

	traceCmd := &cobra.Command{
		Use:   "trace [Z]",
		Short: "integrate the spin vector and recover its precession frequency",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	atomFlags(traceCmd)
	traceCmd.Flags().IntVar(&shellIdx, "shell", 0, "shell of the electron (0-based)")
	traceCmd.Flags().IntVar(&index, "index", 0, "electron within the shell (0-based)")
	traceCmd.Flags().IntVar(&periods, "periods", 16, "precession periods to integrate")
	traceCmd.Flags().IntVar(&steps, "steps", 64, "RK4 steps per period")
	traceCmd.Flags().Float64Var(&tilt, "tilt", 45, "initial angle between spin and field (deg)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "", "plot only this column")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "render a run as an HTML line chart",
		Args:  cobra.ExactArgs(1),
		RunE:  chartRun,
	}
	chartCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <run_id>.html)")
	chartCmd.Flags().StringVar(&title, "title", "", "chart title")

	svgCmd := &cobra.Command{
		Use:   "svg [Z]",
		Short: "atom diagram, or a run column, as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSVG,
	}
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	svgCmd.Flags().IntVar(&index, "electron", -1, "electron to highlight (-1 for none)")
	svgCmd.Flags().Float64Var(&scale, "scale", 4, "pixels per dot")
	svgCmd.Flags().StringVar(&column, "column", "", "plot this column of --run instead of an atom")
	svgCmd.Flags().String("run", "", "run id for --column")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(exploreCmd, lorentzCmd, precessionCmd, shellsCmd, stokesCmd, brewsterCmd,
		colorCmd, elementCmd, sweepCmd, traceCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, chartCmd,
		svgCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func atomFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&field, "field", config.DefaultMagneticField, "magnetic field (T)")
	cmd.Flags().BoolVar(&thomas, "thomas", true, "include the Thomas correction")
}

func polarizationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&polType, "type", "linear", "linear, circular or elliptical")
	cmd.Flags().Float64Var(&angle, "angle", 0, "linear polarization angle (deg)")
	cmd.Flags().StringVar(&direction, "direction", "right", "circular handedness")
	cmd.Flags().Float64Var(&ratio, "ratio", 0.5, "ellipse axis ratio")
	cmd.Flags().Float64Var(&orientation, "orientation", 0, "ellipse orientation (deg)")
	cmd.Flags().Float64Var(&intensity, "intensity", config.DefaultIntensity, "beam intensity")
}

// loadScenario resolves defaults, then the preset, then the config file.
// Commands apply their own flags on top, but only the ones set explicitly.
func loadScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		slog.Debug("preset applied", "preset", preset)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		slog.Debug("config loaded", "path", configFile)
	}

	if permissive {
		cfg.Permissive = true
	}

	flags := cmd.Flags()
	if flags.Changed("field") {
		cfg.Atom.MagneticField = field
	}
	if flags.Changed("thomas") {
		cfg.Atom.ThomasCorrection = thomas
	}
	if flags.Changed("shell") {
		cfg.Electron.Shell = shellIdx
	}
	if flags.Changed("index") {
		cfg.Electron.Index = index
	}
	if flags.Changed("velocity") {
		cfg.Atom.Velocity = velocity
	}
	if flags.Changed("type") {
		cfg.Polarization.Type = polType
	}
	if flags.Changed("angle") {
		cfg.Polarization.Angle = angle
	}
	if flags.Changed("direction") {
		cfg.Polarization.Direction = direction
	}
	if flags.Changed("ratio") {
		cfg.Polarization.Ratio = ratio
	}
	if flags.Changed("orientation") {
		cfg.Polarization.Orientation = orientation
	}
	if flags.Changed("intensity") {
		cfg.Light.Intensity = intensity
	}
	if flags.Changed("periods") {
		cfg.Trace.Periods = periods
	}
	if flags.Changed("steps") {
		cfg.Trace.StepsPerPeriod = steps
	}
	if flags.Changed("tilt") {
		cfg.Trace.Tilt = tilt
	}

	return cfg, nil
}

// atomicNumberArg reads an optional leading Z argument.
func atomicNumberArg(args []string, cfg *config.Config) (int, error) {
	if len(args) == 0 {
		return cfg.Atom.AtomicNumber, nil
	}
	z, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("atomic number must be an integer: %q", args[0])
	}
	cfg.Atom.AtomicNumber = z
	return z, nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	z, err := atomicNumberArg(args, cfg)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	selected := 0
	if cmd.Flags().Changed("electron") {
		selected = index
	}

	slog.Debug("starting explorer", "z", z, "field", cfg.Atom.MagneticField, "thomas", cfg.Atom.ThomasCorrection)
	return viz.Run(viz.ExplorerOptions{
		AtomicNumber:     z,
		MagneticField:    cfg.Atom.MagneticField,
		ThomasCorrection: cfg.Atom.ThomasCorrection,
		Electron:         selected,
		Permissive:       cfg.Permissive,
		Theme:            theme,
	})
}

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println("presets:")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		p := config.Presets[name]
		if p.Polarization.Type != "" {
			fmt.Printf("  %-16s %s light, %s, %g nm %s\n", name, cfg.Polarization.Type, cfg.Material, cfg.Light.Wavelength, cfg.Light.Type)
		} else {
			fmt.Printf("  %-16s Z=%d, B=%g T, thomas=%v\n", name, cfg.Atom.AtomicNumber, cfg.Atom.MagneticField, cfg.Atom.ThomasCorrection)
		}
	}
	return nil
}
