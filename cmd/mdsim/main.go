package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mdsim/internal/analysis"
	"github.com/san-kum/mdsim/internal/barostat"
	"github.com/san-kum/mdsim/internal/config"
	"github.com/san-kum/mdsim/internal/cpu"
	"github.com/san-kum/mdsim/internal/cuda"
	"github.com/san-kum/mdsim/internal/engine"
	"github.com/san-kum/mdsim/internal/export"
	"github.com/san-kum/mdsim/internal/forces"
	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/metrics"
	"github.com/san-kum/mdsim/internal/platform"
	"github.com/san-kum/mdsim/internal/reference"
	"github.com/san-kum/mdsim/internal/simctx"
	"github.com/san-kum/mdsim/internal/storage"
	"github.com/san-kum/mdsim/internal/tui"
)

var (
	configFile   string
	preset       string
	platformName string
	steps        int
	seed         int64
	pressure     float64
	tension      float64
	temperature  float64
	frequency    int
	particles    int
	boxX         float64
	boxY         float64
	boxZ         float64
	xyMode       string
	zMode        string
	storeBackend string
	storePath    string
	logEvery     int
	svgPath      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mdsim",
		Short: "constant-pressure membrane ensemble sampler",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a barostat-controlled simulation",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with a live terminal view",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}
	listCmd.Flags().StringVar(&storeBackend, "store", "sqlite", "store backend (memory|sqlite)")
	listCmd.Flags().StringVar(&storePath, "db", "mdsim.db", "sqlite database path")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run's volume trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&storeBackend, "store", "sqlite", "store backend (memory|sqlite)")
	plotCmd.Flags().StringVar(&storePath, "db", "mdsim.db", "sqlite database path")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&storeBackend, "store", "sqlite", "store backend (memory|sqlite)")
	exportCmd.Flags().StringVar(&storePath, "db", "mdsim.db", "sqlite database path")
	exportCmd.Flags().StringVar(&svgPath, "svg", "", "write the volume trace as SVG to this path instead of JSON")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "print trace statistics for a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&storeBackend, "store", "sqlite", "store backend (memory|sqlite)")
	analyzeCmd.Flags().StringVar(&storePath, "db", "mdsim.db", "sqlite database path")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	platformsCmd := &cobra.Command{
		Use:   "platforms",
		Short: "list registered compute platforms",
		Run: func(cmd *cobra.Command, args []string) {
			reg := buildRegistry()
			for _, name := range reg.Names() {
				p, _ := reg.PlatformByName(name)
				fmt.Printf("%s: %v\n", name, p.KernelNames())
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, analyzeCmd, presetsCmd, platformsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&platformName, "platform", "", "compute platform (empty = first match)")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of ticks")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = OS-derived)")
	cmd.Flags().Float64Var(&pressure, "pressure", 0, "pressure in bar")
	cmd.Flags().Float64Var(&tension, "tension", 0, "surface tension in bar*nm")
	cmd.Flags().Float64Var(&temperature, "temp", 0, "temperature in K")
	cmd.Flags().IntVar(&frequency, "freq", 0, "ticks between trials")
	cmd.Flags().IntVar(&particles, "particles", 0, "number of particles")
	cmd.Flags().Float64Var(&boxX, "box-x", 0, "box x length in nm")
	cmd.Flags().Float64Var(&boxY, "box-y", 0, "box y length in nm")
	cmd.Flags().Float64Var(&boxZ, "box-z", 0, "box z length in nm")
	cmd.Flags().StringVar(&xyMode, "xy-mode", "", "lateral coupling (isotropic|anisotropic)")
	cmd.Flags().StringVar(&zMode, "z-mode", "", "normal axis mode (free|fixed|constant-volume)")
	cmd.Flags().StringVar(&storeBackend, "store", "", "store backend (memory|sqlite)")
	cmd.Flags().StringVar(&storePath, "db", "", "sqlite database path")
	cmd.Flags().IntVar(&logEvery, "log-every", 1000, "progress log interval (0 = quiet)")
}

func buildRegistry() *platform.Registry {
	reg := platform.NewRegistry()
	reference.Register(reg)
	cpu.Register(reg)
	cuda.Register(reg)
	return reg
}

func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("platform") {
		cfg.Platform = platformName
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("pressure") {
		cfg.Barostat.Pressure = pressure
	}
	if cmd.Flags().Changed("tension") {
		cfg.Barostat.SurfaceTension = tension
	}
	if cmd.Flags().Changed("temp") {
		cfg.Barostat.Temperature = temperature
	}
	if cmd.Flags().Changed("freq") {
		cfg.Barostat.Frequency = frequency
	}
	if cmd.Flags().Changed("particles") {
		cfg.System.Particles = particles
	}
	if cmd.Flags().Changed("box-x") {
		cfg.System.BoxX = boxX
	}
	if cmd.Flags().Changed("box-y") {
		cfg.System.BoxY = boxY
	}
	if cmd.Flags().Changed("box-z") {
		cfg.System.BoxZ = boxZ
	}
	if cmd.Flags().Changed("xy-mode") {
		cfg.Barostat.XYMode = xyMode
	}
	if cmd.Flags().Changed("z-mode") {
		cfg.Barostat.ZMode = zMode
	}
	if cmd.Flags().Changed("store") {
		cfg.Store.Backend = storeBackend
	}
	if cmd.Flags().Changed("db") {
		cfg.Store.Path = storePath
	}
	return cfg, nil
}

type simulation struct {
	cfg  *config.Config
	ctx  *simctx.Context
	ctrl *barostat.Controller
	eng  *engine.Engine
}

func buildSimulation(cfg *config.Config) (*simulation, error) {
	reg := buildRegistry()

	var plat *platform.Platform
	var err error
	if cfg.Platform != "" {
		plat, err = reg.PlatformByName(cfg.Platform)
	} else {
		plat, err = reg.FindPlatform(platform.ApplyMonteCarloBarostatKernel)
	}
	if err != nil {
		return nil, err
	}

	var model forces.EnergyModel
	switch cfg.Energy.Model {
	case "", "ideal":
		model = forces.Ideal{}
	case "softsphere":
		model = forces.NewSoftSphere(cfg.Energy.Epsilon, cfg.Energy.Sigma)
	default:
		return nil, fmt.Errorf("unknown energy model: %s", cfg.Energy.Model)
	}

	box := md.NewBox(cfg.System.BoxX, cfg.System.BoxY, cfg.System.BoxZ)
	sys, positions := simctx.BuildLattice(cfg.System.Particles, box, cfg.System.MassAmu)

	sctx := simctx.New(sys, model, plat)
	if err := sctx.SetPeriodicBoxVectors(box[0], box[1], box[2]); err != nil {
		return nil, err
	}
	if err := sctx.SetPositions(positions); err != nil {
		return nil, err
	}

	bcfg, err := cfg.BarostatConfig()
	if err != nil {
		return nil, err
	}
	for name, value := range bcfg.DefaultParameters() {
		sctx.SetParameter(name, value)
	}

	ctrl := barostat.New(bcfg)
	if err := ctrl.Initialize(sctx, plat); err != nil {
		return nil, err
	}

	eng := engine.New(ctrl)
	eng.AddMetric(metrics.NewVolume())
	eng.AddMetric(metrics.NewDensity())
	eng.AddMetric(metrics.NewLateralArea())
	eng.AddMetric(metrics.NewAcceptanceRate(ctrl))
	return &simulation{cfg: cfg, ctx: sctx, ctrl: ctrl, eng: eng}, nil
}

func saveRun(cfg *config.Config, result *engine.Result) (string, error) {
	store, err := storage.NewStore(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return "", err
	}
	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		return "", err
	}
	defer storage.CloseIfSupported(store)

	run := storage.Run{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
		Platform:       cfg.Platform,
		Steps:          result.Steps,
		Seed:           cfg.Seed,
		Pressure:       cfg.Barostat.Pressure,
		SurfaceTension: cfg.Barostat.SurfaceTension,
		Temperature:    cfg.Barostat.Temperature,
		Frequency:      cfg.Barostat.Frequency,
		Metrics:        result.Metrics,
		Volumes:        result.Volumes,
	}
	if err := store.SaveRun(ctx, run); err != nil {
		return "", err
	}
	return run.ID, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sim, err := buildSimulation(cfg)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	sim.eng.SetLogger(logger)

	fmt.Printf("running %d ticks on %s...\n", cfg.Steps, sim.ctx.Platform().Name())
	start := time.Now()
	result, err := sim.eng.Run(context.Background(), sim.ctx, engine.Config{
		Steps:    cfg.Steps,
		LogEvery: logEvery,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := saveRun(cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("trials: %d attempted, %d accepted\n", result.Attempted, result.Accepted)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sim, err := buildSimulation(cfg)
	if err != nil {
		return err
	}
	sim.eng.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))

	feed := tui.NewFeed(sim.ctrl)
	sim.eng.AddObserver(feed)

	errCh := make(chan error, 1)
	go func() {
		_, err := sim.eng.Run(context.Background(), sim.ctx, engine.Config{Steps: cfg.Steps})
		feed.Close()
		errCh <- err
	}()

	title := fmt.Sprintf("mdsim — %s, P=%.1f bar, γ=%.1f bar·nm, T=%.1f K",
		sim.ctx.Platform().Name(), cfg.Barostat.Pressure, cfg.Barostat.SurfaceTension, cfg.Barostat.Temperature)
	p := tea.NewProgram(tui.NewModel(feed, title))
	if _, err := p.Run(); err != nil {
		return err
	}
	return <-errCh
}

func listRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.NewStore(storeBackend, storePath)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		return err
	}
	defer storage.CloseIfSupported(store)

	runs, err := store.ListRuns(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tPLATFORM\tSTEPS\tP(bar)\tT(K)")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%.1f\n",
			run.ID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.Platform,
			run.Steps,
			run.Pressure,
			run.Temperature,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	run, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(run.Volumes) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", run.ID)
	fmt.Printf("platform: %s  P=%.2f bar  γ=%.2f bar·nm  T=%.1f K\n\n",
		run.Platform, run.Pressure, run.SurfaceTension, run.Temperature)

	graph := asciigraph.Plot(run.Volumes,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("volume (nm³) vs tick"),
	)
	fmt.Println(graph)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	run, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if svgPath != "" {
		svg := export.TraceToSVG(run.Volumes, 800, 300, "#00ff00")
		if svg == "" {
			return fmt.Errorf("not enough data to plot")
		}
		return os.WriteFile(svgPath, []byte(svg), 0644)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	run, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(run.Volumes) == 0 {
		return fmt.Errorf("no data to analyze")
	}

	stats := analysis.TraceStats(run.Volumes)
	tau := analysis.IntegratedCorrelationTime(run.Volumes)
	blockSize := int(4 * tau)
	if blockSize < 1 {
		blockSize = 1
	}
	se := analysis.BlockStandardError(run.Volumes, blockSize)

	fmt.Printf("run: %s\n", run.ID)
	fmt.Printf("platform: %s  P=%.2f bar  γ=%.2f bar·nm  T=%.1f K\n\n",
		run.Platform, run.Pressure, run.SurfaceTension, run.Temperature)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "samples\t%d\n", stats.Samples)
	fmt.Fprintf(w, "mean volume (nm³)\t%.6f\n", stats.Mean)
	fmt.Fprintf(w, "std dev\t%.6f\n", stats.StdDev)
	fmt.Fprintf(w, "min / max\t%.6f / %.6f\n", stats.Min, stats.Max)
	fmt.Fprintf(w, "correlation time (ticks)\t%.1f\n", tau)
	if se > 0 {
		fmt.Fprintf(w, "standard error of mean\t%.6f\n", se)
	}
	return w.Flush()
}

func loadRun(id string) (storage.Run, error) {
	store, err := storage.NewStore(storeBackend, storePath)
	if err != nil {
		return storage.Run{}, err
	}
	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		return storage.Run{}, err
	}
	defer storage.CloseIfSupported(store)

	run, ok, err := store.GetRun(ctx, id)
	if err != nil {
		return storage.Run{}, err
	}
	if !ok {
		return storage.Run{}, fmt.Errorf("run not found: %s", id)
	}
	return run, nil
}
