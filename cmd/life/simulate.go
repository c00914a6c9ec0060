package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	simulateFlags mapFlags
	flagSteps     int
	flagEvery     int
	flagQuiet     bool
	flagNoRecord  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Advance a map headlessly and print the result",
	Long: `Generate a map and step it without a UI. The simulation stops after
--steps generations or as soon as no living cells remain.

The final grid is printed with '#' for living and '.' for dead cells,
followed by the counters. Runs are recorded in the history database
unless --no-record is given.

Examples:
  life simulate --seed 42 --steps 200
  life simulate --seed none --pattern glider --width 10 --height 10 --steps 8
  life simulate --seed 7 --rule B36/S23 --every 50 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateFlags.register(simulateCmd)
	simulateCmd.Flags().IntVar(&flagSteps, "steps", 100, "Maximum number of generations")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 0, "Log the counters every N generations (0 = never)")
	simulateCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Print only the counters, not the grid")
	simulateCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record the run in history")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	cfg, err := simulateFlags.load(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagSteps < 0 {
		fmt.Fprintln(os.Stderr, "Error: --steps must not be negative")
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, "life")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setup, err := registry.Setup(cfg.Pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'life patterns' to see available patterns.")
		os.Exit(1)
	}

	opts := append(cfg.EngineOptions(), life.WithLogger(logger))
	if flagEvery > 0 {
		opts = append(opts, life.WithChangedListener(func(ev life.Changed) {
			if ev.Running && ev.Steps > 0 && ev.Steps%flagEvery == 0 {
				logger.Info("generation", "steps", ev.Steps, "living", ev.Living, "dead", ev.Dead)
			}
		}))
	}

	ctrl := life.NewController(life.ControllerConfig{
		Width:   cfg.Grid.Width,
		Height:  cfg.Grid.Height,
		Source:  life.StaticSource{SeedValue: cfg.SeedValue(), Probability: cfg.LivingProbability},
		Setup:   setup,
		Options: opts,
	})

	engine := ctrl.Engine()
	engine.Start()
	for engine.Running() && engine.Stats().Steps < flagSteps {
		engine.Step()
	}
	if engine.Running() {
		engine.Pause()
	}

	stats := engine.Stats()
	if !flagQuiet {
		fmt.Println(engine.Grid().String())
		fmt.Println()
	}
	printStats(cfg, stats, engine)

	if !flagNoRecord && stats.Steps > 0 {
		recordRun(cfg, stats)
	}
}

func printStats(cfg config.LifeConfig, stats life.Stats, engine *life.Engine) {
	fmt.Printf("Seed:        %s\n", cfg.SeedValue())
	fmt.Printf("Grid:        %dx%d\n", cfg.Grid.Width, cfg.Grid.Height)
	fmt.Printf("Probability: %.2f\n", cfg.LivingProbability)
	fmt.Printf("Rule:        %s\n", engine.Rule())
	fmt.Printf("Steps:       %d\n", stats.Steps)
	fmt.Printf("Living:      %d\n", stats.Living)
	fmt.Printf("Dead:        %d\n", stats.Dead)
	if r, ok := engine.Bounds(); ok {
		fmt.Printf("Bounds:      %dx%d at (%d,%d)\n", r.W, r.H, r.X, r.Y)
	}
}

func recordRun(cfg config.LifeConfig, stats life.Stats) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return
	}
	defer store.Close()

	run := storage.Run{
		Seed:        cfg.SeedValue(),
		Width:       cfg.Grid.Width,
		Height:      cfg.Grid.Height,
		Probability: cfg.LivingProbability,
		Rule:        cfg.ParsedRule().String(),
		Steps:       stats.Steps,
		Living:      stats.Living,
	}
	if _, err := store.SaveRun(run); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record run: %v\n", err)
	}
}
