package life

import "github.com/vovakirdan/tui-life/internal/core"

// CellChange is delivered to cell subscribers on every SetAlive call.
type CellChange struct {
	Alive bool
	X, Y  int
}

// Cell is a single binary-state unit at a fixed grid position.
// Cells live inside a Grid and must not be copied once subscribed to.
type Cell struct {
	x, y      int
	alive     bool
	observers listeners[CellChange]
}

// X returns the cell's column.
func (c *Cell) X() int { return c.x }

// Y returns the cell's row.
func (c *Cell) Y() int { return c.y }

// Coord returns the cell's position.
func (c *Cell) Coord() core.Coord { return core.C(c.x, c.y) }

// Alive reports the current state.
func (c *Cell) Alive() bool { return c.alive }

// SetAlive stores the state and notifies every subscriber, even when the
// value did not change. Callers that need an edge trigger compare themselves.
func (c *Cell) SetAlive(alive bool) {
	c.alive = alive
	c.observers.emit(CellChange{Alive: alive, X: c.x, Y: c.y})
}

// Toggle flips the state through SetAlive.
func (c *Cell) Toggle() {
	c.SetAlive(!c.alive)
}

// Subscribe registers fn for state-change notifications.
// Subscribers are called synchronously in registration order.
func (c *Cell) Subscribe(fn func(CellChange)) (unsubscribe func()) {
	return c.observers.add(fn)
}
