package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns [id]",
	Short: "List the built-in patterns or show one",
	Long: `Without arguments, list every built-in pattern.
With a pattern ID, draw it.

Examples:
  life patterns
  life patterns glider`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPatterns,
}

func runPatterns(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		showPattern(args[0])
		return
	}

	patterns := registry.List()
	if len(patterns) == 0 {
		fmt.Println("No patterns registered.")
		return
	}

	fmt.Println("Available patterns:")
	fmt.Println()
	fmt.Printf("  %-14s  %-14s  %-11s  %-6s  %s\n", "ID", "Title", "Kind", "Period", "Cells")
	fmt.Printf("  %-14s  %-14s  %-11s  %-6s  %s\n", "--", "-----", "----", "------", "-----")
	for _, p := range patterns {
		period := "-"
		if p.Period > 0 {
			period = fmt.Sprint(p.Period)
		}
		fmt.Printf("  %-14s  %-14s  %-11s  %-6s  %d\n", p.ID, p.Title, p.Kind, period, p.Cells)
	}
	fmt.Println()
	fmt.Println("Stamp one with: life run --pattern <id>")
}

func showPattern(id string) {
	p, err := registry.Get(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'life patterns' to see available patterns.")
		os.Exit(1)
	}

	w, h := p.Size()
	g := life.Generate(w, h)
	g.Place(p.Cells, core.C(0, 0))

	fmt.Printf("%s (%s)\n", p.Title, p.Kind)
	fmt.Println()
	fmt.Println(g.String())
}
