package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

func TestSpeedHelpNamesParse(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var f mapFlags
	f.register(cmd)

	usage := cmd.Flags().Lookup("speed").Usage
	list, ok := strings.CutPrefix(usage, "Speed: ")
	if !ok {
		t.Fatalf("unexpected --speed usage %q", usage)
	}

	names := strings.Split(list, ", ")
	if len(names) != len(life.Speeds()) {
		t.Fatalf("usage lists %d speeds, expected %d: %q", len(names), len(life.Speeds()), usage)
	}
	for _, name := range names {
		if _, err := life.ParseSpeed(name); err != nil {
			t.Errorf("advertised speed %q does not parse: %v", name, err)
		}
	}
}

func TestCommandExamplesUseValidSpeeds(t *testing.T) {
	for _, cmd := range []*cobra.Command{runCmd, simulateCmd, serveCmd} {
		fields := strings.Fields(cmd.Long)
		for i, field := range fields {
			if field != "--speed" || i+1 >= len(fields) {
				continue
			}
			if _, err := life.ParseSpeed(fields[i+1]); err != nil {
				t.Errorf("%s example uses unknown speed %q", cmd.Name(), fields[i+1])
			}
		}
	}
}

func TestMapFlagsOverrideOnlyChanged(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cmd := &cobra.Command{Use: "test"}
	var f mapFlags
	f.register(cmd)
	if err := cmd.Flags().Parse([]string{"--speed", "fastest", "--seed", "none", "--width", "12"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cfg, err := f.load(cmd)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ParsedSpeed() != life.SpeedVeryFast {
		t.Errorf("speed = %v, expected very-fast", cfg.ParsedSpeed())
	}
	if cfg.SeedValue().Valid {
		t.Errorf("seed = %v, expected none", cfg.SeedValue())
	}
	if cfg.Grid.Width != 12 {
		t.Errorf("width = %d, expected 12", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 32 {
		t.Errorf("height = %d, expected default 32", cfg.Grid.Height)
	}
	if !f.sized(cmd) {
		t.Error("sized should report an explicit width")
	}
}

func TestDescribeBest(t *testing.T) {
	got := describeBest(storage.Run{
		Seed:        life.SeedOf(42),
		Width:       20,
		Height:      10,
		Probability: 0.35,
		Rule:        "B3/S23",
		Steps:       118,
	})
	want := "Best: 118 steps (seed 42, 20x10, p 0.35, B3/S23)"
	if got != want {
		t.Errorf("describeBest = %q, expected %q", got, want)
	}
}
