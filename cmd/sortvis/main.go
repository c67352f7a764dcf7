package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/convox/logger"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortvis/internal/array"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/experiment"
	"github.com/san-kum/sortvis/internal/export"
	"github.com/san-kum/sortvis/internal/metrics"
	"github.com/san-kum/sortvis/internal/sim"
	"github.com/san-kum/sortvis/internal/sorting"
	"github.com/san-kum/sortvis/internal/storage"
	"github.com/san-kum/sortvis/internal/tui"
	"github.com/san-kum/sortvis/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool
	size       int
	seed       int64
	order      string
	frameRate  int
	speed      int
	theme      string
	sameInput  bool
	plain      bool
	maxSteps   int
	// export-svg
	stepIndex  int
	outFile    string
	svgWidth   int
	svgHeight  int
	svgSeries  bool
	svgDots    bool
	benchSizes []int

	log = logger.NewWriter("ns=sortvis", io.Discard)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sortvis",
		Short: "step-by-step sorting algorithm visualizer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log = logger.NewWriter("ns=sortvis", os.Stderr)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, nil)
			if err != nil {
				return err
			}
			return runInteractive(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	runCmd := &cobra.Command{
		Use:   "run [algorithm...]",
		Short: "animate one or more algorithms side by side",
		RunE:  runAlgorithms,
	}
	addInputFlags(runCmd)
	addDisplayFlags(runCmd)
	runCmd.Flags().BoolVar(&plain, "plain", false, "plain ANSI output, one algorithm after another")

	recordCmd := &cobra.Command{
		Use:   "record [algorithm...]",
		Short: "run algorithms headless and store their traces",
		RunE:  recordRuns,
	}
	addInputFlags(recordCmd)
	recordCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop each run after this many steps (0 = no limit)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "replay a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}
	addDisplayFlags(replayCmd)
	replayCmd.Flags().BoolVar(&plain, "plain", false, "plain ANSI output")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot inversions per step of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run steps to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and steps to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render one step (or the inversions curve) of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&stepIndex, "step", -1, "step to render (-1 = last)")
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "image height")
	exportSVGCmd.Flags().BoolVar(&svgSeries, "series", false, "plot inversions per step instead of bars")
	exportSVGCmd.Flags().BoolVar(&svgDots, "dots", false, "render the step as braille dots")
	exportSVGCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	deleteCmd := &cobra.Command{
		Use:   "delete [run_id]",
		Short: "delete a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			if err := st.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "race every algorithm over several input sizes",
		RunE:  benchAlgorithms,
	}
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{10, 100, 500}, "input sizes")
	benchCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	benchCmd.Flags().StringVar(&order, "order", "random", "initial order (random, sorted, reversed, nearly-sorted)")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "describe the available algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tSTABLE\tIN-PLACE\tBEST\tAVERAGE\tWORST\tSPACE")
			for _, a := range sorting.Algorithms() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					a.Name, a.Title, yesNo(a.Stable), yesNo(a.InPlace), a.Best, a.Average, a.Worst, a.Space)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Println()
			for _, a := range sorting.Algorithms() {
				fmt.Printf("  %-10s %s\n", a.Name, a.Summary)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tSIZE\tORDER\tFPS\tSPEED\tTHEME")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%s\n",
					name, p.Size, p.Order, p.Display.FPS, p.Display.Speed, p.Display.Theme)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, recordCmd, listCmd, replayCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, deleteCmd, benchCmd, algorithmsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "number of values to sort")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	cmd.Flags().StringVar(&order, "order", "random", "initial order (random, sorted, reversed, nearly-sorted)")
	cmd.Flags().BoolVar(&sameInput, "same-input", false, "give every algorithm the same array")
}

func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frames per second")
	cmd.Flags().IntVar(&speed, "speed", config.DefaultSpeed, "steps per frame")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
}

// resolveConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("order") {
		cfg.Order = order
	}
	if flags.Changed("same-input") {
		cfg.SameInput = sameInput
	}
	if flags.Changed("fps") {
		cfg.Display.FPS = frameRate
	}
	if flags.Changed("speed") {
		cfg.Display.Speed = speed
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = theme
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if len(args) > 0 {
		cfg.Algorithms = args
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openStore(cmd *cobra.Command) (*storage.Store, error) {
	dir := dataDir
	if configFile != "" && !cmd.Flags().Changed("data") {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		dir = cfg.DataDir
	}
	st := storage.New(dir)
	st.SetLogger(log)
	return st, nil
}

func buildExperiments(cfg *config.Config) ([]*experiment.Experiment, error) {
	return experiment.Build(cfg.Algorithms, cfg.Size, cfg.Seed, cfg.Order, cfg.SameInput)
}

func viewOptions(cfg *config.Config) viz.Options {
	return viz.Options{
		FPS:     cfg.Display.FPS,
		Speed:   cfg.Display.Speed,
		Columns: cfg.Display.Columns,
		Height:  cfg.Display.Height,
		Theme:   cfg.Display.Theme,
	}
}

func runInteractive(cfg *config.Config) error {
	exps, err := buildExperiments(cfg)
	if err != nil {
		return err
	}

	panels := make([]*viz.Panel, 0, len(exps))
	for _, exp := range exps {
		p, err := viz.NewAlgorithmPanel(exp.Config().Algorithm, exp.Input())
		if err != nil {
			return err
		}
		panels = append(panels, p)
	}

	m := viz.NewModel(panels, viewOptions(cfg))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}

func runAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if !plain {
		return runInteractive(cfg)
	}

	exps, err := buildExperiments(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	for _, exp := range exps {
		alg, _ := sorting.Lookup(exp.Config().Algorithm)
		renderer := tui.NewLiveRenderer(os.Stdout, alg.Title, cfg.Display.FPS)
		pacer := tui.NewPacer(cfg.Display.FPS, cfg.Display.Speed)
		if err := exp.Setup(experiment.DefaultMetrics(exp.Input()), renderer, pacer); err != nil {
			return err
		}
		exp.GetRunner().SetLogger(log)

		renderer.Start()
		result, err := exp.Run(ctx, sim.Config{})
		renderer.Stop()
		if err != nil {
			return err
		}
		printMetrics(result)
	}
	return nil
}

func recordRuns(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	st.SetLogger(log)
	if err := st.Init(); err != nil {
		return err
	}

	exps, err := buildExperiments(cfg)
	if err != nil {
		return err
	}

	entries := make([]sim.Entry, 0, len(exps))
	for _, exp := range exps {
		if err := exp.Setup(nil); err != nil {
			return err
		}
		entries = append(entries, exp.Entry())
	}

	race := sim.NewRace(func(e sim.Entry) *sim.Runner {
		r := sim.New()
		r.SetLogger(log)
		for _, m := range experiment.DefaultMetrics(e.Initial) {
			r.AddMetric(m)
		}
		return r
	})
	race.SetLogger(log)

	fmt.Printf("recording %d runs of size %d...\n", len(entries), cfg.Size)
	results, err := race.Run(context.Background(), entries, sim.Config{KeepSteps: true, MaxSteps: maxSteps})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tSTEPS\tWRITES\tSORTED\tTIME")
	for i, result := range results {
		exp := exps[i]
		meta := &storage.RunMetadata{
			Algorithm: result.Algorithm,
			Seed:      exp.Config().Seed,
			Size:      cfg.Size,
			Order:     cfg.Order,
			Initial:   result.Initial,
			Metrics:   result.Metrics,
		}
		runID, err := st.Save(meta, result.Steps)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%v\n",
			runID,
			result.Algorithm,
			humanize.Comma(int64(result.StepsTaken)),
			humanize.Comma(int64(result.Metrics["writes"])),
			yesNo(result.Sorted()),
			result.Elapsed.Round(time.Microsecond),
		)
	}
	return w.Flush()
}

func printMetrics(result *sim.Result) {
	fmt.Printf("%s: %s steps in %v\n", result.Algorithm, humanize.Comma(int64(result.StepsTaken)), result.Elapsed.Round(time.Millisecond))
	for _, name := range []string{"writes", "inversions", "sortedness"} {
		if v, ok := result.Metrics[name]; ok {
			fmt.Printf("  %s: %s\n", name, humanize.Ftoa(v))
		}
	}
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
	fmt.Fprintln(w, "ID\tALGORITHM\tSIZE\tORDER\tSTEPS\tSEED\tRECORDED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Algorithm,
			run.Size,
			run.Order,
			humanize.Comma(int64(run.Steps)),
			run.Seed,
			humanize.Time(run.Timestamp),
		)
	}

	return w.Flush()
}

func loadRun(cmd *cobra.Command, runID string) (*storage.RunMetadata, []sorting.Step, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	steps, err := st.LoadSteps(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, steps, nil
}

// inversionSeries returns the inversion count of the initial array followed by
// one entry per step.
func inversionSeries(initial []int, steps []sorting.Step) []float64 {
	inv := metrics.NewInversions()
	inv.Observe(sorting.Step{Values: initial}, 0)
	for i, step := range steps {
		inv.Observe(step, i)
	}
	return inv.History()
}

func replayRun(cmd *cobra.Command, args []string) error {
	meta, steps, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	title := meta.Algorithm
	if alg, err := sorting.Lookup(meta.Algorithm); err == nil {
		title = alg.Title
	}

	if plain {
		renderer := tui.NewLiveRenderer(os.Stdout, title, cfg.Display.FPS)
		runner := sim.New()
		runner.SetLogger(log)
		runner.AddObserver(renderer)
		runner.AddObserver(tui.NewPacer(cfg.Display.FPS, cfg.Display.Speed))

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		renderer.Start()
		_, err := runner.Run(ctx, meta.Algorithm, sim.NewTrace(steps), meta.Initial, sim.Config{})
		renderer.Stop()
		return err
	}

	panel, err := viz.NewTracePanel(title, meta.Initial, steps)
	if err != nil {
		return err
	}
	opts := viewOptions(cfg)
	opts.Title = fmt.Sprintf("Replay: %s (%s)", title, meta.ID)
	m := viz.NewReplayModel(panel, inversionSeries(meta.Initial, steps), opts)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, steps, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Algorithm)
	fmt.Printf("size: %d  order: %s  steps: %s\n\n", meta.Size, meta.Order, humanize.Comma(int64(len(steps))))

	series := inversionSeries(meta.Initial, steps)
	graph := asciigraph.Plot(series,
		asciigraph.Height(15),
		asciigraph.Width(70),
		asciigraph.Caption("inversions per step"))
	fmt.Println(graph)
	return nil
}

func createOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func exportCSV(cmd *cobra.Command, args []string) error {
	_, steps, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	out, err := createOutput(outFile)
	if err != nil {
		return err
	}
	defer out.Close()
	return storage.ExportCSV(out, steps)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, steps, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	out, err := createOutput(outFile)
	if err != nil {
		return err
	}
	defer out.Close()
	return storage.ExportJSON(out, meta, steps)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	meta, steps, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	palette := viz.GetTheme(theme)

	var svg string
	switch {
	case svgSeries:
		svg = export.SeriesToSVG(inversionSeries(meta.Initial, steps), svgWidth, svgHeight, string(palette.Primary))
		if svg == "" {
			return fmt.Errorf("run %s has too few steps to plot", meta.ID)
		}
	default:
		step := sorting.Step{Values: meta.Initial}
		if len(steps) > 0 {
			k := stepIndex
			if k < 0 {
				k = len(steps) - 1
			}
			if k >= len(steps) {
				return fmt.Errorf("step %d out of range: run has %d steps", k, len(steps))
			}
			step = steps[k]
		}
		if svgDots {
			canvas := viz.NewCanvas(max(svgWidth/8, 1), max(svgHeight/16, 1))
			canvas.DrawBars(step.Values, max(meta.Size, 1))
			svg = export.CanvasToSVG(canvas, 4, string(palette.Bar))
		} else {
			svg = export.StepToSVG(step, svgWidth, svgHeight, palette)
		}
	}

	path := outFile
	if path == "" {
		path = meta.ID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	o, err := array.ParseOrder(order)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tALGORITHM\tSTEPS\tWRITES\tTIME\tSTEPS/SEC")

	for _, n := range benchSizes {
		input, err := array.Generate(n, o, rand.New(rand.NewSource(seed)))
		if err != nil {
			return err
		}

		race := sim.NewRace(func(e sim.Entry) *sim.Runner {
			r := sim.New()
			r.SetLogger(log)
			r.AddMetric(metrics.NewWrites(e.Initial))
			return r
		})
		race.SetLogger(log)

		results, err := race.RunAlgorithms(context.Background(), sorting.Names(), input, sim.Config{})
		if err != nil {
			return err
		}

		for _, result := range results {
			stepsPerSec := float64(result.StepsTaken) / max(result.Elapsed.Seconds(), 1e-9)
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\t%s\n",
				n,
				result.Algorithm,
				humanize.Comma(int64(result.StepsTaken)),
				humanize.Comma(int64(result.Metrics["writes"])),
				result.Elapsed.Round(time.Microsecond),
				humanize.SIWithDigits(stepsPerSec, 1, ""),
			)
		}
	}

	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
