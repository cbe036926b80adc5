package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/visualizer"
	"github.com/spf13/cobra"
)

// openStore resolves the data directory the same way the run command does,
// so a data_dir set in a config file is honoured.
func openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir), nil
}

// printStatus prints a status line with a coloured symbol.
func printStatus(symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Printf("%s %s\n", c.Sprint(symbol), message)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	kind := cfg.Kind()
	if len(args) > 0 {
		kind, err = algorithms.ParseKind(args[0])
		if err != nil {
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	res, err := experiment.Run(ctx, experiment.Config{
		Algorithm: kind,
		Bars:      cfg.Bars,
		Seed:      cfg.SeedOrNow(),
	})
	if err != nil {
		printStatus("✗", err.Error(), color.FgRed)
		return err
	}

	printStatus("✓", fmt.Sprintf("%s sorted %d bars in %d steps (%v)", kind, res.Bars, res.Steps, res.Elapsed), color.FgGreen)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  seed\t%d\n", res.Seed)
	fmt.Fprintf(w, "  comparisons\t%d\n", res.Counters.Comparisons)
	fmt.Fprintf(w, "  swaps\t%d\n", res.Counters.Swaps)
	fmt.Fprintf(w, "  writes\t%d\n", res.Counters.Writes)
	if err := w.Flush(); err != nil {
		return err
	}

	if !saveRun {
		return nil
	}
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(res)
	if err != nil {
		return err
	}
	logger.WithField("run", runID).WithField("dir", cfg.DataDir).Info("run saved")
	printStatus("→", "saved "+runID, color.FgCyan)
	return nil
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s := cfg.SeedOrNow()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if benchRuns > 1 {
		return benchEnsemble(ctx, cfg.Bars, s)
	}

	results, err := experiment.Bench(ctx, cfg.Bars, s)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %d bars (seed %d)\n\n", cfg.Bars, s)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARISONS\tSWAPS\tWRITES\tTIME")

	comparisons := make([]float64, 0, len(results))
	best := results[0]
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%v\n",
			r.Algorithm, r.Steps, r.Counters.Comparisons, r.Counters.Swaps, r.Counters.Writes, r.Elapsed)
		comparisons = append(comparisons, float64(r.Counters.Comparisons))
		if r.Counters.Total() < best.Counters.Total() {
			best = r
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(comparisons,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("comparisons: bubble, selection, insertion, merge, quick"),
	))
	fmt.Println()
	printStatus("★", fmt.Sprintf("least work: %s (%d operations)", best.Algorithm, best.Counters.Total()), color.FgYellow)
	return nil
}

func benchEnsemble(ctx context.Context, n int, seedStart int64) error {
	fmt.Printf("benchmarking %d bars over %d seeds from %d\n\n", n, benchRuns, seedStart)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tRUNS\tSTEPS\tCOMPARISONS\tMIN\tMAX\tSWAPS\tWRITES")

	for _, kind := range algorithms.Kinds() {
		results, err := experiment.NewEnsemble(experiment.Config{Algorithm: kind, Bars: n}, benchRuns, seedStart).Run(ctx)
		if err != nil {
			return err
		}
		sum := experiment.Summarize(results)
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\t%d\t%d\t%.1f\t%.1f\n",
			sum.Algorithm, sum.Runs, sum.MeanSteps, sum.MeanComparisons,
			sum.MinComparisons, sum.MaxComparisons, sum.MeanSwaps, sum.MeanWrites)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tBARS\tSTEPS\tCMP\tSWAPS\tWRITES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Bars,
			run.Steps,
			run.Comparisons,
			run.Swaps,
			run.Writes,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	if len(trace) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Algorithm)
	fmt.Printf("steps: %d\n\n", len(trace))

	series := []struct {
		caption string
		pick    func(experiment.Sample) int
	}{
		{"comparisons (cumulative)", func(s experiment.Sample) int { return s.Comparisons }},
		{"swaps (cumulative)", func(s experiment.Sample) int { return s.Swaps }},
		{"writes (cumulative)", func(s experiment.Sample) int { return s.Writes }},
	}
	for _, ser := range series {
		data := make([]float64, len(trace))
		for i, s := range trace {
			data[i] = float64(ser.pick(s))
		}
		if data[len(data)-1] == 0 {
			continue
		}
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(ser.caption),
		))
		fmt.Println()
	}

	res := &experiment.Result{Trace: trace}
	fmt.Println(asciigraph.Plot(res.StepWork(),
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.Caption("work per step"),
	))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		err = st.Export(out, args[0])
	case "svg":
		err = exportTraceSVG(st, out, args[0])
	default:
		err = fmt.Errorf("unknown format %q (json, svg)", format)
	}
	if err != nil {
		return err
	}
	if outFile != "" {
		printStatus("✓", "exported to "+outFile, color.FgGreen)
	}
	return nil
}

func exportTraceSVG(st *storage.Store, w io.Writer, runID string) error {
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	values := make([]float64, len(trace))
	for i, s := range trace {
		values[i] = float64(s.Comparisons)
	}
	svg := export.SeriesToSVG(values, 800, 400, "#00ff66")
	if svg == "" {
		return fmt.Errorf("run %s has too few steps to chart", runID)
	}
	_, err = io.WriteString(w, svg)
	return err
}

func snapshotFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}
	ctrl.Apply(visualizer.CmdToggleRun)
	for i := 0; i < snapSteps && ctrl.State().Stepping(); i++ {
		ctrl.Frame()
	}

	f := ctrl.Snapshot()
	svg := export.FrameToSVG(f, cfg.Window.Width, cfg.Window.Height, cfg.Window.Headroom)
	if err := os.WriteFile(snapOut, []byte(svg), 0644); err != nil {
		return err
	}
	printStatus("✓", fmt.Sprintf("%s at step %d written to %s", f.Algorithm, f.Step, snapOut), color.FgGreen)
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALGORITHM")
	for _, k := range algorithms.Kinds() {
		fmt.Fprintf(w, "%s\t%s\n", k.Slug(), k)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tBARS\tALGORITHM\tSPEED\tWINDOW")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%s\t%dms\t%dx%d\n", name, p.Bars, p.Algorithm, p.Speed, p.Window.Width, p.Window.Height)
	}
	return w.Flush()
}
