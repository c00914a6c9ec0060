// Package life implements a Conway-style cellular automaton: cells with change
// notifications, fixed-size grids with seeded generation, and an engine that
// steps generations while keeping live/dead counts incrementally.
//
// The package is UI-agnostic and single-threaded. Hosts that call into an
// Engine from several goroutines must serialize those calls.
package life

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
)

// Option configures an Engine.
type Option func(*Engine)

// WithRule replaces the default B3/S23 rule.
func WithRule(r Rule) Option {
	return func(e *Engine) {
		e.rule = r
		e.hasRule = true
	}
}

// WithLogger sets the logger used for degenerate-state reports.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithBoundsTracking enables the live-region bounding box.
func WithBoundsTracking() Option {
	return func(e *Engine) {
		e.trackBounds = true
	}
}

// WithInitializedListener registers fn before the first Initialize so it
// sees the engine's initial counts.
func WithInitializedListener(fn func(Initialized)) Option {
	return func(e *Engine) {
		e.initialized.add(fn)
	}
}

// WithChangedListener registers fn before the first Initialize.
func WithChangedListener(fn func(Changed)) Option {
	return func(e *Engine) {
		e.changed.add(fn)
	}
}

// Engine owns a grid and advances it one generation at a time.
//
// A zero Engine is uninitialized; Start, Pause and Step panic until
// Initialize binds a grid. New returns an engine that is already initialized.
type Engine struct {
	grid    *Grid
	rule    Rule
	hasRule bool
	logger  *log.Logger

	states   []bool // mirror of cell states, used as the pre-step snapshot
	living   int
	steps    int
	running  bool
	stepping bool
	births   int
	deaths   int
	flips    []int

	cellSubs []func()

	trackBounds bool
	bounds      core.Rect
	boundsDirty bool

	initialized listeners[Initialized]
	changed     listeners[Changed]
}

// New creates an engine bound to g.
func New(g *Grid, opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	e.Initialize(g)
	return e
}

// Initialize binds the engine to g, replacing any previous grid and its
// subscriptions. Counts come from a full scan, the step counter restarts at
// zero and the engine is paused.
func (e *Engine) Initialize(g *Grid) {
	if g == nil {
		panic("life: Initialize called with nil grid")
	}
	if !e.hasRule {
		e.rule = Conway
		e.hasRule = true
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	for _, unsubscribe := range e.cellSubs {
		unsubscribe()
	}
	e.cellSubs = e.cellSubs[:0]

	e.grid = g
	e.states = g.Snapshot()
	g.Each(func(c *Cell) {
		e.cellSubs = append(e.cellSubs, c.Subscribe(e.onCellChanged))
	})

	e.living = g.CountLiving()
	e.steps = 0
	e.running = false
	e.stepping = false
	if e.trackBounds {
		e.recomputeBounds()
	}

	e.logger.Debug("simulation initialized",
		"width", g.Width(),
		"height", g.Height(),
		"living", e.living,
		"rule", e.rule.String(),
	)

	stats := e.Stats()
	e.initialized.emit(Initialized{
		Total:  stats.Total,
		Dead:   stats.Dead,
		Living: stats.Living,
		Steps:  stats.Steps,
	})
}

// Reset pauses the engine and re-initializes it with g.
func (e *Engine) Reset(g *Grid) {
	if e.grid != nil {
		e.Pause()
	}
	e.Initialize(g)
}

// Start marks the engine as running.
func (e *Engine) Start() {
	e.mustBeInitialized("Start")
	e.running = true
	e.emitChanged()
}

// Pause marks the engine as not running.
func (e *Engine) Pause() {
	e.mustBeInitialized("Pause")
	e.running = false
	e.emitChanged()
}

// Step applies the rule to every cell against the previous generation and
// then flips all cells whose state changes. With no living cells the step
// is a no-op and the engine pauses itself.
func (e *Engine) Step() StepResult {
	e.mustBeInitialized("Step")

	if e.living == 0 {
		e.logger.Info("simulation step not completed as there aren't any living cells", "steps", e.steps)
		if e.running {
			e.running = false
			e.emitChanged()
		}
		return StepResult{Steps: e.steps}
	}

	w, h := e.grid.w, e.grid.h
	flips := e.flips[:0]
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			idx := y*w + x
			alive := e.states[idx]
			if e.rule.Next(alive, e.liveNeighbors(x, y)) != alive {
				flips = append(flips, idx)
			}
		}
	}
	e.flips = flips

	e.stepping = true
	e.births, e.deaths = 0, 0
	for _, idx := range flips {
		e.grid.cells[idx].Toggle()
	}
	e.stepping = false

	e.steps++
	result := StepResult{
		Advanced: true,
		Births:   e.births,
		Deaths:   e.deaths,
		Steps:    e.steps,
	}
	e.emitChanged()
	return result
}

// Stats returns the current counters.
func (e *Engine) Stats() Stats {
	if e.grid == nil {
		return Stats{}
	}
	total := e.grid.Len()
	return Stats{
		Total:  total,
		Living: e.living,
		Dead:   total - e.living,
		Steps:  e.steps,
	}
}

// Running reports whether the engine is running.
func (e *Engine) Running() bool {
	return e.running
}

// Grid returns the bound grid, or nil before Initialize.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Rule returns the active rule.
func (e *Engine) Rule() Rule {
	if !e.hasRule {
		return Conway
	}
	return e.rule
}

// OnInitialized subscribes fn to Initialized events.
func (e *Engine) OnInitialized(fn func(Initialized)) (unsubscribe func()) {
	return e.initialized.add(fn)
}

// OnChanged subscribes fn to Changed events.
func (e *Engine) OnChanged(fn func(Changed)) (unsubscribe func()) {
	return e.changed.add(fn)
}

// Bounds returns the smallest rectangle containing every living cell.
// ok is false when bounds tracking is off or nothing is alive.
func (e *Engine) Bounds() (r core.Rect, ok bool) {
	if !e.trackBounds || e.grid == nil {
		return core.Rect{}, false
	}
	if e.boundsDirty {
		e.recomputeBounds()
	}
	return e.bounds, !e.bounds.Empty()
}

func (e *Engine) mustBeInitialized(op string) {
	if e.grid == nil {
		panic("life: " + op + " called before Initialize")
	}
}

// onCellChanged keeps the counters in step with the grid. Notifications are
// not deduplicated by cells, so the mirror decides whether anything flipped.
func (e *Engine) onCellChanged(ch CellChange) {
	idx := ch.Y*e.grid.w + ch.X
	if e.states[idx] != ch.Alive {
		e.states[idx] = ch.Alive
		if ch.Alive {
			e.living++
			e.births++
			if e.trackBounds && !e.boundsDirty {
				e.bounds = e.bounds.Extend(ch.X, ch.Y)
			}
		} else {
			e.living--
			e.deaths++
			if e.trackBounds && e.bounds.OnEdge(ch.X, ch.Y) {
				e.boundsDirty = true
			}
		}
	}

	if !e.stepping {
		e.emitChanged()
	}
}

func (e *Engine) liveNeighbors(x, y int) int {
	w, h := e.grid.w, e.grid.h
	n := 0
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			continue
		}
		if e.states[ny*w+nx] {
			n++
		}
	}
	return n
}

func (e *Engine) recomputeBounds() {
	e.bounds = core.Rect{}
	e.boundsDirty = false
	w := e.grid.w
	for idx, alive := range e.states {
		if alive {
			e.bounds = e.bounds.Extend(idx%w, idx/w)
		}
	}
}

func (e *Engine) emitChanged() {
	stats := e.Stats()
	e.changed.emit(Changed{
		Dead:    stats.Dead,
		Living:  stats.Living,
		Steps:   stats.Steps,
		Running: e.running,
	})
}
