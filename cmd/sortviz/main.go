package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/gui"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/visualizer"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	dataDir    string
	logLevel   string
	numBars    int
	speed      int
	algorithm  string
	seed       int64
	sound      bool
	saveRun    bool
	outFile    string
	benchRuns  int
	format     string
	snapSteps  int
	snapOut    string
)

var logger = logging.GetLogger("sortviz")

// main registers commands and flags, opens the window when no subcommand is
// given, and exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "step-by-step sorting algorithm visualizer",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.SetLevelName(logLevel)
		},
		RunE: runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "YAML config file")
	pf.StringVar(&preset, "preset", "", "named preset (see `sortviz presets`)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory for saved runs")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.IntVarP(&numBars, "bars", "n", config.DefaultBars, "number of bars")
	pf.IntVar(&speed, "speed", config.DefaultSpeed, "delay per step in ms [1, 100]")
	pf.StringVarP(&algorithm, "algorithm", "a", config.DefaultAlgorithm, "starting algorithm")
	pf.Int64Var(&seed, "seed", 0, "shuffle seed (0 = time based)")
	pf.BoolVar(&sound, "sound", false, "play a tone for every step")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the visualizer in the terminal",
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "sort headlessly and print counters",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save the run record under --data")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run every algorithm on the same input",
		RunE:  benchAlgorithms,
	}
	benchCmd.Flags().IntVar(&benchRuns, "runs", 1, "seeds per algorithm; more than 1 reports means over an ensemble")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&format, "format", "json", "json, or svg for a chart of cumulative comparisons")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [algorithm]",
		Short: "render the bars after a number of steps to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshotFrame,
	}
	snapshotCmd.Flags().IntVar(&snapSteps, "steps", 10, "steps to run before rendering")
	snapshotCmd.Flags().StringVarP(&snapOut, "output", "o", "frame.svg", "output file")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(tuiCmd, runCmd, benchCmd, listCmd, plotCmd, exportCmd, snapshotCmd, algorithmsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Error("sortviz failed")
		os.Exit(1)
	}
}

// loadConfig layers defaults, preset, config file, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: unknown preset %q (available: %v)", config.ErrInvalidConfig, preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		logger.WithField("path", configFile).Debug("config loaded")
	}

	flags := cmd.Flags()
	if flags.Changed("bars") {
		cfg.Bars = numBars
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("sound") {
		cfg.Sound.Enabled = sound
	}
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newController(cfg *config.Config) (*visualizer.Controller, error) {
	s := cfg.SeedOrNow()
	arr, err := bars.New(cfg.Bars, rand.New(rand.NewSource(s)))
	if err != nil {
		return nil, err
	}
	logger.WithField("bars", cfg.Bars).
		WithField("algorithm", cfg.Kind().Slug()).
		WithField("seed", s).
		Debug("controller created")

	return visualizer.New(arr, visualizer.Options{
		Algorithm: cfg.Kind(),
		Speed:     cfg.Speed,
		IdleDelay: cfg.IdleDelay(),
		Shuffle:   true,
	}), nil
}

// attachSound starts the tone generator when enabled. The returned func
// stops it and is always safe to call.
func attachSound(cfg *config.Config, ctrl *visualizer.Controller) (func(), error) {
	if !cfg.Sound.Enabled {
		return func() {}, nil
	}
	tone := audio.NewTone(audio.Settings{
		MinHz:  cfg.Sound.MinHz,
		MaxHz:  cfg.Sound.MaxHz,
		Volume: cfg.Sound.Volume,
	})
	if err := tone.Start(); err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	ctrl.AddObserver(tone)
	return tone.Stop, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}

	win, err := gui.Open(cfg.Window)
	if err != nil {
		return err
	}
	defer win.Close()

	stop, err := attachSound(cfg, ctrl)
	if err != nil {
		return err
	}
	defer stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err = visualizer.Run(ctx, ctrl, win, visualizer.DefaultKeyMap())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs go to a file.
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return err
	}
	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "tui.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logging.SetOutput(logFile)
	logging.DisableLogColor()
	defer logging.SetOutput(os.Stderr)

	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}
	stop, err := attachSound(cfg, ctrl)
	if err != nil {
		return err
	}
	defer stop()

	return viz.RunProgram(ctrl, cfg.Theme)
}
