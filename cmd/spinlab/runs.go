package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/spinlab/internal/export"
	"github.com/san-kum/spinlab/internal/notation"
	"github.com/san-kum/spinlab/internal/precession"
	"github.com/san-kum/spinlab/internal/shell"
	"github.com/san-kum/spinlab/internal/spin"
	"github.com/san-kum/spinlab/internal/storage"
	"github.com/san-kum/spinlab/internal/sweep"
)

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	registry := sweep.NewRegistry()
	name := cfg.Sweep.Kind
	if len(args) == 1 {
		name = args[0]
	}
	kind, err := registry.Get(name)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, registry.List())
	}

	spec := sweep.Spec{Kind: name, From: kind.From, To: kind.To, Samples: cfg.Sweep.Samples, Checked: !cfg.Permissive}
	if name == cfg.Sweep.Kind && cfg.Sweep.From < cfg.Sweep.To {
		spec.From, spec.To = cfg.Sweep.From, cfg.Sweep.To
	}
	flags := cmd.Flags()
	if flags.Changed("from") {
		spec.From = from
	}
	if flags.Changed("to") {
		spec.To = to
	}
	if flags.Changed("samples") {
		spec.Samples = samples
	}

	qn, err := cfg.QuantumNumbers()
	if err != nil {
		return err
	}
	state, err := cfg.PolarizationState()
	if err != nil {
		return err
	}
	spec.Params = sweep.Params{
		AtomicNumber:     cfg.Atom.AtomicNumber,
		MagneticField:    cfg.Atom.MagneticField,
		ThomasCorrection: cfg.Atom.ThomasCorrection,
		Numbers:          qn,
		Polarization:     state,
		Intensity:        cfg.Light.Intensity,
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("running sweep", "kind", name, "from", spec.From, "to", spec.To, "samples", spec.Samples)
	start := time.Now()

	result, err := registry.Run(ctx, spec)
	if err != nil {
		return err
	}

	runID, err := st.Save(result)
	if err != nil {
		return err
	}
	slog.Info("sweep saved", "run", runID, "elapsed", time.Since(start))

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.X))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tKIND\tPARAM\tRANGE\tSAMPLES\tCREATED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g..%g\t%s\t%s\n",
			run.ID,
			run.Kind,
			run.Param,
			run.From,
			run.To,
			humanize.Comma(int64(run.Samples)),
			humanize.Time(run.Timestamp),
		)
	}

	return w.Flush()
}

// plottable replaces ±Inf with NaN so asciigraph leaves a gap.
func plottable(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsInf(v, 0) {
			v = math.NaN()
		}
		out[i] = v
	}
	return out
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	result, err := st.LoadResult(runID)
	if err != nil {
		return err
	}
	if len(result.X) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("kind: %s over %s [%g, %g]\n", result.Kind, result.Param, result.X[0], result.X[len(result.X)-1])
	fmt.Printf("samples: %d\n\n", len(result.X))

	for _, s := range result.Series {
		if column != "" && s.Name != column {
			continue
		}
		graph := asciigraph.Plot(plottable(s.Values),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s vs %s", s.Name, result.Param)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	result, err := st.LoadResult(runID)
	if err != nil {
		return err
	}

	if outFile == "" {
		return storage.ExportJSONStdout(runID, result)
	}
	if err := storage.ExportJSON(outFile, runID, result); err != nil {
		return err
	}
	slog.Info("export written", "path", outFile)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	result, err := st.LoadResult(runID)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{result.Param}
	for _, s := range result.Series {
		header = append(header, s.Name)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, x := range result.X {
		row := []string{strconv.FormatFloat(x, 'f', 6, 64)}
		for _, s := range result.Series {
			row = append(row, strconv.FormatFloat(s.Values[i], 'g', 8, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func chartRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	result, err := st.LoadResult(runID)
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = runID + ".html"
	}
	heading := title
	if heading == "" {
		heading = fmt.Sprintf("%s sweep", result.Kind)
	}

	if err := export.ChartFile(path, result, heading); err != nil {
		return err
	}
	slog.Info("chart written", "path", path)
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	var svg string
	if column != "" {
		runID, _ := cmd.Flags().GetString("run")
		if runID == "" {
			return fmt.Errorf("--column needs --run")
		}
		result, err := storage.New(dataDir).LoadResult(runID)
		if err != nil {
			return err
		}
		if svg, err = export.SeriesToSVG(result, column, 800, 400, "#00ccff"); err != nil {
			return err
		}
	} else {
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
		selected, _ := cmd.Flags().GetInt("electron")
		svg = export.AtomSVG(conf, selected, 40, 20, scale)
	}

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	slog.Info("svg written", "path", outFile)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
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
	qn, err := cfg.QuantumNumbers()
	if err != nil {
		return err
	}

	b, useThomas := cfg.Atom.MagneticField, cfg.Atom.ThomasCorrection
	var omega float64
	if cfg.Permissive {
		omega = precession.Spin(z, b, qn, useThomas)
	} else if omega, err = precession.SpinChecked(z, b, qn, useThomas); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Debug("integrating spin", "z", z, "omega", omega, "periods", cfg.Trace.Periods, "steps", cfg.Trace.StepsPerPeriod)
	tr, err := spin.Integrate(ctx, omega, cfg.Trace)
	if err != nil {
		return err
	}
	recovered := spin.DominantFrequency(tr)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	fixed := map[string]float64{
		"atomic_number":  float64(z),
		"magnetic_field": b,
		"omega":          omega,
		"tilt":           cfg.Trace.Tilt,
	}
	runID, err := st.Save(tr.Result(fixed))
	if err != nil {
		return err
	}
	slog.Info("trace saved", "run", runID, "samples", len(tr.Times))

	w := newTable()
	fmt.Fprintf(w, "electron\t%s\n", qn)
	fmt.Fprintf(w, "analytic\t%s\n", notation.Frequency(omega))
	fmt.Fprintf(w, "recovered\t%s\n", notation.Frequency(recovered))
	fmt.Fprintf(w, "direction\t%s\n", precession.Rotation(recovered))
	fmt.Fprintf(w, "norm drift\t%.2e\n", tr.NormDrift())
	fmt.Fprintf(w, "run id\t%s\n", runID)
	return w.Flush()
}
