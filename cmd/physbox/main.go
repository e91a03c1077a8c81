package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/michael-hamilton/physbox/internal/analysis"
	"github.com/michael-hamilton/physbox/internal/arena"
	"github.com/michael-hamilton/physbox/internal/config"
	"github.com/michael-hamilton/physbox/internal/gui"
	"github.com/michael-hamilton/physbox/internal/metrics"
	"github.com/michael-hamilton/physbox/internal/storage"
	"github.com/michael-hamilton/physbox/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	dt         float64
	duration   float64
	seed       int64
	substeps   int
	autoSpawn  bool
	audioOn    bool
	noFloor    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "physbox",
		Short: "rigid body sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the GUI when no command given
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".physbox", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	guiCmd := &cobra.Command{
		Use:   "gui [preset]",
		Short: "interactive 3d sandbox",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}
	addSimFlags(guiCmd)

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "terminal side view of the arena",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			return tui.RunLive(cfg)
		},
	}
	addSimFlags(liveCmd)

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "headless run, recorded to the data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "ascii plots of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a run's energy trace",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print a run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print a run's frame table as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Printf("%-8s boxes=%d spheres=%d capsules=%d auto=%v\n",
					name, p.Boxes, p.Spheres, p.Capsules, p.AutoSpawn)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, listCmd, plotCmd, analyzeCmd,
		exportCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (headless)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&substeps, "substeps", config.DefaultSubsteps, "physics substeps per tick")
	cmd.Flags().BoolVar(&autoSpawn, "auto", false, "start with auto-spawn on")
	cmd.Flags().BoolVar(&audioOn, "audio", false, "sonify impacts")
	cmd.Flags().BoolVar(&noFloor, "no-floor", false, "start without the floor")
}

// loadConfig merges the config file, preset argument, and flags. Flags win
// over the file only when set explicitly. An explicit --config that fails to
// load is an error, not a fallback.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Preset = args[0]
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("substeps") {
		cfg.Substeps = substeps
	}
	if cmd.Flags().Changed("audio") {
		cfg.Audio = audioOn
	}
	if cmd.Flags().Changed("no-floor") {
		cfg.Floor = !noFloor
	}

	return cfg, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	sb := arena.NewHeadless(cfg)
	if autoSpawn && !sb.Loop.AutoSpawnOn() {
		sb.Loop.ToggleAutoSpawn()
	}

	mets := []metrics.Metric{
		metrics.NewKineticEnergy(),
		metrics.NewPeakHeight(),
		metrics.NewSettleTime(0.1),
	}

	result := arena.RunHeadless(cmd.Context(), sb, cfg.Dt, cfg.Duration, mets)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		Preset:   cfg.Preset,
		Seed:     cfg.Seed,
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
		Substeps: cfg.Substeps,
		Metrics:  result.Metrics,
	}, result.Frames)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("frames: %d\n", len(result.Frames))
	for name, value := range result.Metrics {
		fmt.Printf("%s: %.4f\n", name, value)
	}
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

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tDT\tSUBSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Substeps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(frames))

	traces := []struct {
		caption string
		data    func(storage.Frame) float64
	}{
		{"kinetic energy", func(f storage.Frame) float64 { return f.Kinetic }},
		{"object count", func(f storage.Frame) float64 { return float64(f.Objects) }},
		{"max height", func(f storage.Frame) float64 { return f.MaxY }},
	}

	for _, trace := range traces {
		data := make([]float64, len(frames))
		for i, f := range frames {
			data[i] = trace.data(f)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(trace.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) < 4 {
		return fmt.Errorf("not enough samples to analyze")
	}

	ke := make([]float64, len(frames))
	for i, f := range frames {
		ke[i] = f.Kinetic
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(ke))
	fmt.Printf("mean kinetic energy: %.4f\n", analysis.Mean(ke))
	fmt.Printf("peak kinetic energy: %.4f\n", analysis.Peak(ke))
	fmt.Printf("dominant frequency: %.4f Hz\n", analysis.DominantFrequency(ke, meta.Dt))

	for name, value := range meta.Metrics {
		fmt.Printf("%s: %.4f\n", name, value)
	}
	return nil
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(*meta, frames)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, frames)
}
