package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/store"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	algorithm     string
	mode          string
	size          int
	seed          int64
	tickInterval  time.Duration
	frameInterval time.Duration
	autoPlay      bool
	theme         string
	logFile       string

	// interactive
	watch bool
	// trace
	plot     bool
	saveRun  bool
	opsLimit int
	// play
	frameRate int
	color     bool
	// bench
	numRuns    int
	algorithms []string
	// sweep
	sweepMin    int
	sweepMax    int
	sweepPoints int
	// export
	outPath string
	svgStep int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "watch sorting algorithms step by step",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".sortviz", "data directory for saved runs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&mode, "mode", "buffered", "playback mode (buffered|lockstep)")
	pf.IntVar(&size, "size", 0, "number of elements (0 = fit the display)")
	pf.Int64Var(&seed, "seed", 0, "shuffle seed (0 = random)")
	pf.DurationVar(&tickInterval, "tick", config.DefaultTickInterval, "auto-play interval")
	pf.DurationVar(&frameInterval, "frame", config.DefaultFrameInterval, "render interval")
	pf.BoolVar(&autoPlay, "auto", true, "start with auto-play on")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.StringVar(&logFile, "log-file", "", "write logs of the interactive view to this file")

	rootCmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")
	rootCmd.Flags().StringVar(&algorithm, "algorithm", config.DefaultAlgorithm, "algorithm preselected in the menu")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range experiment.List() {
				fmt.Println(name)
			}
		},
	}

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "print the operation log of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().BoolVar(&plot, "plot", false, "plot inversions over the run")
	traceCmd.Flags().BoolVar(&saveRun, "save", false, "save the run under the data directory")
	traceCmd.Flags().IntVar(&opsLimit, "limit", 0, "print at most this many steps (0 = all)")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "auto-play a run without the interactive view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().IntVar(&frameRate, "fps", 30, "frames per second")
	playCmd.Flags().BoolVar(&color, "color", true, "highlight operations with ANSI colors (default: when stdout is a terminal)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare algorithms over several shuffles",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&numRuns, "runs", 10, "shuffles per algorithm")
	benchCmd.Flags().StringSliceVar(&algorithms, "algorithms", nil, "algorithms to compare (default all)")

	scenarioCmd := &cobra.Command{
		Use:   "scenario <file>",
		Short: "run a scripted batch of runs from a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [algorithm]",
		Short: "measure one algorithm over a range of input sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&sweepMin, "min", 8, "smallest input size")
	sweepCmd.Flags().IntVar(&sweepMax, "max", 128, "largest input size")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 8, "number of sizes to try")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tALGORITHM\tMODE\tTICK\tSIZE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", name, p.Algorithm, p.Mode, p.TickInterval, p.Size)
			}
			w.Flush()
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInitConfig,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [algorithm]",
		Short: "export a full trace as json",
		Args:  cobra.MaximumNArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return runExport(cmd, args, store.WriteJSON) },
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [algorithm]",
		Short: "export a full trace as csv",
		Args:  cobra.MaximumNArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return runExport(cmd, args, store.WriteCSV) },
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [algorithm]",
		Short: "export the inversion curve, or one step, as svg",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, func(w io.Writer, res *experiment.Result) error {
				return store.WriteSVG(w, res, svgStep)
			})
		},
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgStep, "step", -1, "draw the bars of this step instead of the curve")

	rootCmd.AddCommand(listCmd, traceCmd, playCmd, benchCmd, scenarioCmd, sweepCmd, presetsCmd, initConfigCmd, runsCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig layers preset, config file and explicitly set flags, in that
// order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := baseConfig()
	if err != nil {
		return nil, err
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// baseConfig returns the selected preset, or the defaults.
func baseConfig() (*config.Config, error) {
	if preset == "" {
		return config.DefaultConfig(), nil
	}
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	return cfg, nil
}

// applyFlags copies every flag the user set explicitly onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("tick") {
		cfg.TickInterval = tickInterval
	}
	if flags.Changed("frame") {
		cfg.FrameInterval = frameInterval
	}
	if flags.Changed("auto") {
		cfg.AutoPlay = autoPlay
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
}

// cliLogger logs to stderr; warnings only unless --verbose is set.
func cliLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// resolveAlgorithm accepts a full registry name or its first word, so that
// "quick" selects "quick sort".
func resolveAlgorithm(args []string, cfg *config.Config) (string, error) {
	if len(args) == 0 {
		return cfg.Algorithm, nil
	}
	name := strings.ToLower(strings.TrimSpace(args[0]))
	if _, err := experiment.Lookup(name); err == nil {
		return name, nil
	}
	if _, err := experiment.Lookup(name + " sort"); err == nil {
		return name + " sort", nil
	}
	_, err := experiment.Lookup(name)
	return "", fmt.Errorf("%w (available: %s)", err, strings.Join(experiment.List(), ", "))
}

// sizeOrDefault returns the configured size, or the panel size the
// interactive view would use.
func sizeOrDefault(cfg *config.Config) int {
	if cfg.Size > 0 {
		return cfg.Size
	}
	return experiment.MinWidth
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if watch && configFile == "" {
		return fmt.Errorf("--watch needs --config")
	}

	base, err := baseConfig()
	if err != nil {
		return err
	}
	return viz.Run(viz.Options{
		Config:     cfg,
		ConfigPath: configFile,
		Watch:      watch,
		Base:       base,
		Overlay:    func(c *config.Config) { applyFlags(cmd, c) },
		Logger:     logger,
	})
}

func runExperiment(ctx context.Context, cmd *cobra.Command, args []string) (*experiment.Result, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	name, err := resolveAlgorithm(args, cfg)
	if err != nil {
		return nil, err
	}

	exp, err := experiment.New(experiment.Config{
		Algorithm: name,
		Size:      sizeOrDefault(cfg),
		Seed:      cfg.Seed,
	}, cliLogger())
	if err != nil {
		return nil, err
	}
	return exp.Run(ctx)
}

func runTrace(cmd *cobra.Command, args []string) error {
	res, err := runExperiment(cmd.Context(), cmd, args)
	if err != nil {
		return err
	}

	fmt.Printf("algorithm: %s\n", res.Algorithm)
	fmt.Printf("seed: %d\n", res.Seed)
	fmt.Printf("input: %v\n\n", res.Initial)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tOPERATION\tSNAPSHOT")
	for i, s := range res.Steps {
		if opsLimit > 0 && i >= opsLimit {
			fmt.Fprintf(w, "...\t%d more\t\n", len(res.Steps)-i)
			break
		}
		op := s.Op.Adjusted().String()
		if op == "" {
			op = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%v\n", i, op, s.Snapshot)
	}
	w.Flush()

	fmt.Println()
	printMetrics(res.Metrics)

	if plot {
		data := metrics.InversionSeries(res.Steps, -1)
		if len(data) > 1 {
			fmt.Println()
			fmt.Println(asciigraph.Plot(metrics.Downsample(data, 80),
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption("inversions per step"),
			))
		}
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(res)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved: %s\n", runID)
	}
	return nil
}

func printMetrics(m map[string]float64) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %.0f\n", k, m[k])
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	name, err := resolveAlgorithm(args, cfg)
	if err != nil {
		return err
	}
	pm, err := cfg.PlaybackMode()
	if err != nil {
		return err
	}

	exp, err := experiment.New(experiment.Config{
		Algorithm: name,
		Mode:      pm,
		Size:      sizeOrDefault(cfg),
		Seed:      cfg.Seed,
		Interval:  cfg.TickInterval,
		AutoPlay:  true,
	}, cliLogger())
	if err != nil {
		return err
	}
	st, err := exp.Start()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if !cmd.Flags().Changed("color") {
		color = isatty.IsTerminal(os.Stdout.Fd())
	}
	r := tui.NewLiveRenderer(os.Stdout, frameRate, color)
	err = r.Play(ctx, st)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(algorithms))
	for _, a := range algorithms {
		name, err := resolveAlgorithm([]string{a}, cfg)
		if err != nil {
			return err
		}
		names = append(names, name)
	}

	start := time.Now()
	ens := experiment.NewEnsemble(names, sizeOrDefault(cfg), numRuns, cfg.Seed, cliLogger())
	summaries, err := ens.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("size: %d  runs: %d  elapsed: %s\n\n", sizeOrDefault(cfg), numRuns, time.Since(start).Round(time.Millisecond))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARISONS\tSWAPS\tINSERTS\tWRITES\t")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t\n",
			s.Algorithm, s.MeanSteps, s.Mean["comparisons"], s.Mean["swaps"], s.Mean["inserts"], s.Mean["writes"])
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("  %s\n", sc.Description)
	}
	results, err := automation.RunScenario(cmd.Context(), sc, st, cliLogger())
	for i, res := range results {
		fmt.Printf("\n[%d] %s (size %d, seed %d, %d steps)\n", i+1, res.Algorithm, len(res.Initial), res.Seed, len(res.Steps))
		printMetrics(res.Metrics)
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	name, err := resolveAlgorithm(args, cfg)
	if err != nil {
		return err
	}

	results, err := automation.RunSweep(cmd.Context(), &automation.SizeSweep{
		Algorithm: name,
		MinSize:   sweepMin,
		MaxSize:   sweepMax,
		NumSteps:  sweepPoints,
		Seed:      cfg.Seed,
	}, cliLogger())
	if err != nil {
		return err
	}

	fmt.Printf("algorithm: %s\n\n", name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "SIZE\tSTEPS\tCOMPARISONS\tSWAPS\tINSERTS\tWRITES\t")
	data := make([]float64, 0, len(results))
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%.0f\t%.0f\t%.0f\t%.0f\t\n",
			r.Size, r.Steps, r.Metrics["comparisons"], r.Metrics["swaps"], r.Metrics["inserts"], r.Metrics["writes"])
		data = append(data, float64(r.Steps))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(data) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Caption("steps per input size"),
		))
	}
	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := "sortviz.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tSIZE\tSTEPS\tSEED\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			r.ID, r.Algorithm, r.Size, r.Steps, r.Seed, r.Timestamp.Format(time.DateTime))
	}
	return w.Flush()
}

func runExport(cmd *cobra.Command, args []string, write func(io.Writer, *experiment.Result) error) error {
	res, err := runExperiment(cmd.Context(), cmd, args)
	if err != nil {
		return err
	}

	if outPath == "" {
		return write(os.Stdout, res)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := write(f, res); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "exported %d steps to %s\n", len(res.Steps), outPath)
	return nil
}
