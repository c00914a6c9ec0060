package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	runFlags    mapFlags
	flagFPS     int
	flagLogFile string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive simulation",
	Long: `Open the simulation in the terminal.

Controls:
  Arrows/hjkl  - Move the cursor
  Space        - Toggle the cell under the cursor
  Enter/P      - Start or pause
  N            - Advance a single generation
  R            - Regenerate the map from its seed
  G            - Pick a random seed and regenerate
  /            - Type a seed
  [ ]          - Lower or raise the living probability
  + -          - Faster or slower
  B            - Show the bounds of the living cells
  H/Tab        - Run history
  ?            - Full help
  Q/Ctrl+C     - Quit

The grid shrinks to fit the terminal unless --width or --height is given.
Logs are discarded while the simulation owns the screen; use --log-file
to keep them.

Examples:
  life run
  life run --seed 42 --probability 0.3
  life run --seed none --pattern r-pentomino
  life run --rule B36/S23 --speed very-fast`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runFlags.register(runCmd)
	runCmd.Flags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	runCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runRun(cmd *cobra.Command, _ []string) {
	cfg, err := runFlags.load(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if !runFlags.sized(cmd) {
		cfg = tui.FitToScreen(cfg, rt.ScreenW, rt.ScreenH)
	}

	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out, "life")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// History is optional; the simulation runs without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting simulation",
		"width", cfg.Grid.Width, "height", cfg.Grid.Height,
		"seed", cfg.SeedValue(), "rule", cfg.ParsedRule())

	if err := tui.Run(cfg, store, logger, rt); err != nil {
		logger.Error("simulation failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		os.Exit(1)
	}
}
