// life runs Conway's Game of Life and friends in the terminal.
//
// Usage:
//
//	life run                 - Run the interactive simulation
//	life simulate            - Advance a map headlessly and print the result
//	life patterns [id]       - List the built-in patterns or show one
//	life history             - Show recorded runs
//	life serve               - Start SSH server for remote sessions
//
// Global flags:
//
//	--config <path>     - Custom life config YAML
//	--db <path>         - Set database path (default: ~/.life/runs.db)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import patterns to register them
	_ "github.com/vovakirdan/tui-life/internal/patterns"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Life - cellular automata in your terminal",
	Long: `Life simulates two-state cellular automata on a bounded grid.
Maps are generated from a seed, so the same seed, size and living
probability always produce the same starting generation.

Available commands:
  run       - Interactive simulation
  simulate  - Headless simulation for a fixed number of steps
  patterns  - Show the built-in patterns
  history   - View recorded runs
  serve     - Start SSH server for remote sessions

Examples:
  life run --seed 42
  life run --pattern glider --speed fast
  life simulate --seed 7 --steps 500
  life history --recent
  life serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom life config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
