package life

import (
	"testing"

	"github.com/vovakirdan/tui-life/internal/core"
)

func TestGenerateAllDead(t *testing.T) {
	g := Generate(6, 4)

	if g.Width() != 6 || g.Height() != 4 {
		t.Errorf("expected 6x4 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.Len() != 24 {
		t.Errorf("expected 24 cells, got %d", g.Len())
	}
	if n := g.CountLiving(); n != 0 {
		t.Errorf("fresh grid should be dead, got %d living", n)
	}
}

func TestGenerateInvalidSizePanics(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Generate(%d, %d) should panic", tc.w, tc.h)
				}
			}()
			Generate(tc.w, tc.h)
		})
	}
}

func TestGridNeighborCounts(t *testing.T) {
	g := Generate(5, 5)

	tests := []struct {
		name     string
		x, y     int
		expected int
	}{
		{"top-left corner", 0, 0, 3},
		{"top-right corner", 4, 0, 3},
		{"bottom-left corner", 0, 4, 3},
		{"bottom-right corner", 4, 4, 3},
		{"top edge", 2, 0, 5},
		{"left edge", 0, 2, 5},
		{"right edge", 4, 2, 5},
		{"bottom edge", 2, 4, 5},
		{"interior", 2, 2, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nbrs := g.Neighbors(tc.x, tc.y)
			if len(nbrs) != tc.expected {
				t.Errorf("Neighbors(%d, %d) = %d cells, expected %d", tc.x, tc.y, len(nbrs), tc.expected)
			}
			for _, n := range nbrs {
				if !g.InBounds(n.X, n.Y) {
					t.Errorf("neighbor %v out of bounds", n)
				}
				if dx, dy := n.X-tc.x, n.Y-tc.y; dx*dx > 1 || dy*dy > 1 {
					t.Errorf("neighbor %v wraps around from (%d,%d)", n, tc.x, tc.y)
				}
			}
		})
	}
}

func TestGridLiveNeighborsNoWraparound(t *testing.T) {
	g := Generate(5, 5)
	// Cells on the far edges would count for (0,0) only with wraparound.
	g.At(4, 0).SetAlive(true)
	g.At(0, 4).SetAlive(true)
	g.At(4, 4).SetAlive(true)

	if n := g.LiveNeighbors(0, 0); n != 0 {
		t.Errorf("LiveNeighbors(0,0) = %d, expected 0", n)
	}

	g.At(1, 1).SetAlive(true)
	if n := g.LiveNeighbors(0, 0); n != 1 {
		t.Errorf("LiveNeighbors(0,0) = %d, expected 1", n)
	}
}

func TestGridPlace(t *testing.T) {
	g := Generate(5, 5)
	g.At(2, 2).SetAlive(true)

	var births int
	g.Each(func(c *Cell) {
		c.Subscribe(func(ch CellChange) {
			if ch.Alive {
				births++
			}
		})
	})

	cells := []core.Coord{core.C(0, 0), core.C(1, 1), core.C(10, 10)}
	placed := g.Place(cells, core.C(1, 1))

	// (1,1)->(2,2) already alive, (10,10)->(11,11) outside
	if placed != 1 {
		t.Errorf("Place returned %d, expected 1", placed)
	}
	if births != 1 {
		t.Errorf("expected 1 birth notification, got %d", births)
	}
	if !g.Alive(1, 1) || !g.Alive(2, 2) {
		t.Error("placed cells should be alive")
	}
}

func TestGridString(t *testing.T) {
	g := Generate(3, 2)
	g.At(0, 0).SetAlive(true)
	g.At(2, 1).SetAlive(true)

	expected := "#..\n..#"
	if got := g.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestGridAtOutOfBounds(t *testing.T) {
	g := Generate(2, 2)
	if g.At(-1, 0) != nil || g.At(2, 0) != nil || g.At(0, 2) != nil {
		t.Error("At should return nil out of bounds")
	}
	if g.Alive(5, 5) {
		t.Error("Alive out of bounds should be false")
	}
}
