package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// Simulation screen layout.
const (
	headerRows = 2 // title and stats lines above the board
	boardTop   = headerRows
)

const (
	runeAlive  = '█'
	runeDead   = '·'
	runeCursor = '+'
)

// simFrame is a snapshot of everything drawn on the simulation screen.
type simFrame struct {
	grid      *life.Grid
	stats     life.Stats
	running   bool
	header    string
	cursor    core.Coord
	bounds    core.Rect
	hasBounds bool
	status    string
}

// drawSimulation renders f into dst. The board is framed by a box; cells
// that do not fit on screen are clipped.
func drawSimulation(dst *core.Screen, f simFrame) {
	dst.Clear()

	dst.DrawTextColored(0, 0, "LIFE ", core.ColorLabel)
	dst.DrawTextColored(5, 0, f.header, core.ColorValue)

	state, color := "PAUSED", core.ColorPaused
	if f.running {
		state, color = "RUNNING", core.ColorRunning
	}
	dst.DrawTextColored(dst.Width()-len(state), 0, state, color)

	dst.DrawTextColored(0, 1, fmt.Sprintf("total %d  living %d  dead %d  steps %d",
		f.stats.Total, f.stats.Living, f.stats.Dead, f.stats.Steps), core.ColorValue)

	w, h := f.grid.Width(), f.grid.Height()
	dst.DrawBox(core.NewRect(0, boardTop, w+2, h+2), core.ColorDead)

	f.grid.Each(func(c *life.Cell) {
		sx, sy := c.X()+1, c.Y()+boardTop+1
		switch {
		case c.Alive():
			dst.SetColored(sx, sy, runeAlive, core.ColorAlive)
		case f.hasBounds && f.bounds.Contains(c.X(), c.Y()):
			dst.SetColored(sx, sy, runeDead, core.ColorBounds)
		default:
			dst.SetColored(sx, sy, runeDead, core.ColorDead)
		}
	})

	cursorRune := runeCursor
	if f.grid.Alive(f.cursor.X, f.cursor.Y) {
		cursorRune = runeAlive
	}
	dst.SetColored(f.cursor.X+1, f.cursor.Y+boardTop+1, cursorRune, core.ColorCursor)

	if f.status != "" {
		dst.DrawTextColored(0, boardTop+h+2, f.status, core.ColorLabel)
	}
}
