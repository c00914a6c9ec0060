package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/life"
)

// mapFlags are the map and engine overrides shared by run, simulate and serve.
type mapFlags struct {
	width       int
	height      int
	seed        string
	probability float64
	speed       string
	rule        string
	pattern     string
}

func (f *mapFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "Grid width in cells")
	cmd.Flags().IntVar(&f.height, "height", 0, "Grid height in cells")
	cmd.Flags().StringVar(&f.seed, "seed", "", `Map seed ("none" for a blank map)`)
	cmd.Flags().Float64Var(&f.probability, "probability", 0, "Chance that a generated cell starts alive (0-1)")
	cmd.Flags().StringVar(&f.speed, "speed", "", "Speed: "+speedChoices())
	cmd.Flags().StringVar(&f.rule, "rule", "", "Rule in B/S notation (e.g. B3/S23)")
	cmd.Flags().StringVar(&f.pattern, "pattern", "", "Built-in pattern stamped at the grid center")
}

// speedChoices lists the speed names in order, slowest first.
func speedChoices() string {
	speeds := life.Speeds()
	names := make([]string, len(speeds))
	for i, s := range speeds {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}

// sized reports whether the user set the size explicitly.
func (f *mapFlags) sized(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("width") || cmd.Flags().Changed("height")
}

// load reads the life config and applies the flags the user actually set.
func (f *mapFlags) load(cmd *cobra.Command) (config.LifeConfig, error) {
	cfg, err := config.LoadLife(flagConfig)
	if err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("width") {
		cfg.Grid.Width = f.width
	}
	if changed("height") {
		cfg.Grid.Height = f.height
	}
	if changed("seed") {
		cfg.SetSeed(life.ParseSeed(f.seed))
	}
	if changed("probability") {
		cfg.LivingProbability = f.probability
	}
	if changed("speed") {
		cfg.Speed = f.speed
	}
	if changed("rule") {
		cfg.Rule = f.rule
	}
	if changed("pattern") {
		cfg.Pattern = f.pattern
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds a logger honoring --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
