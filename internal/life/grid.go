package life

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-life/internal/core"
)

// neighborOffsets lists the 8-neighborhood: left, right, up, down, then diagonals.
var neighborOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// Grid is a fixed-size board of cells stored in row-major order: index = y*W + x.
// Its shape never changes after construction.
type Grid struct {
	w, h  int
	cells []Cell
}

func newGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("life: invalid grid size %dx%d", w, h))
	}
	g := &Grid{w: w, h: h, cells: make([]Cell, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := &g.cells[y*w+x]
			c.x, c.y = x, y
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y), or nil when out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[y*g.w+x]
}

// Alive reports whether the cell at (x, y) is alive. Out of bounds is dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y*g.w+x].alive
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// Neighbors returns the coordinates of the existing neighbors of (x, y).
// There is no wraparound: corners have 3, edges 5, interior cells 8.
func (g *Grid) Neighbors(x, y int) []core.Coord {
	out := make([]core.Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, core.C(nx, ny))
		}
	}
	return out
}

// LiveNeighbors counts living neighbors of (x, y).
func (g *Grid) LiveNeighbors(x, y int) int {
	n := 0
	for _, d := range neighborOffsets {
		if g.Alive(x+d[0], y+d[1]) {
			n++
		}
	}
	return n
}

// CountLiving scans the whole grid. Engines keep this number incrementally;
// the full scan is the reference value.
func (g *Grid) CountLiving() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].alive {
			n++
		}
	}
	return n
}

// Place makes every listed cell alive, offset by origin, using the toggle
// path so subscribers see each birth. Cells that are already alive or fall
// outside the grid are skipped. Returns the number of cells brought to life.
func (g *Grid) Place(cells []core.Coord, origin core.Coord) int {
	placed := 0
	for _, c := range cells {
		cell := g.At(origin.X+c.X, origin.Y+c.Y)
		if cell == nil || cell.alive {
			continue
		}
		cell.Toggle()
		placed++
	}
	return placed
}

// Snapshot returns the alive flags in row-major order.
func (g *Grid) Snapshot() []bool {
	out := make([]bool, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].alive
	}
	return out
}

// String draws the grid with '#' for alive and '.' for dead, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.h)
	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.w; x++ {
			if g.cells[y*g.w+x].alive {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
