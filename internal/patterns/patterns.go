// Package patterns registers the built-in pattern presets.
package patterns

import (
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/registry"
)

func init() {
	registry.Register("block", registry.Pattern{
		Title:  "Block",
		Kind:   registry.KindStillLife,
		Period: 1,
		Cells: cells(
			"##",
			"##",
		),
	})
	registry.Register("blinker", registry.Pattern{
		Title:  "Blinker",
		Kind:   registry.KindOscillator,
		Period: 2,
		Cells:  cells("###"),
	})
	registry.Register("toad", registry.Pattern{
		Title:  "Toad",
		Kind:   registry.KindOscillator,
		Period: 2,
		Cells: cells(
			".###",
			"###.",
		),
	})
	registry.Register("beacon", registry.Pattern{
		Title:  "Beacon",
		Kind:   registry.KindOscillator,
		Period: 2,
		Cells: cells(
			"##..",
			"##..",
			"..##",
			"..##",
		),
	})
	registry.Register("glider", registry.Pattern{
		Title:  "Glider",
		Kind:   registry.KindSpaceship,
		Period: 4,
		Cells: cells(
			".#.",
			"..#",
			"###",
		),
	})
	registry.Register("lwss", registry.Pattern{
		Title:  "Lightweight Spaceship",
		Kind:   registry.KindSpaceship,
		Period: 4,
		Cells: cells(
			"#..#.",
			"....#",
			"#...#",
			".####",
		),
	})
	registry.Register("r-pentomino", registry.Pattern{
		Title: "R-pentomino",
		Kind:  registry.KindMethuselah,
		Cells: cells(
			".##",
			"##.",
			".#.",
		),
	})
}

// cells converts rows of '#' (alive) and '.' (dead) into offsets.
func cells(rows ...string) []core.Coord {
	var out []core.Coord
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				out = append(out, core.C(x, y))
			}
		}
	}
	return out
}
