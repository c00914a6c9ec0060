package life

import "github.com/vovakirdan/tui-life/internal/core"

// Source supplies generation inputs each time the map is (re)built.
type Source interface {
	Seed() Seed
	LivingProbability() float64
}

// StaticSource is a Source with fixed values.
type StaticSource struct {
	SeedValue   Seed
	Probability float64
}

// Seed returns the fixed seed.
func (s StaticSource) Seed() Seed { return s.SeedValue }

// LivingProbability returns the fixed probability.
func (s StaticSource) LivingProbability() float64 { return s.Probability }

// ControllerConfig describes how a Controller builds its maps.
type ControllerConfig struct {
	Width  int
	Height int
	Source Source

	// Setup, when set, runs on every freshly generated grid before the
	// engine binds to it (used to stamp patterns).
	Setup func(g *Grid)

	Options []Option
}

// Controller wires a Source, the generator and an Engine together:
// every Reset pulls fresh inputs from the source and rebuilds the map.
type Controller struct {
	cfg    ControllerConfig
	engine *Engine
}

// NewController generates the first map and initializes the engine.
func NewController(cfg ControllerConfig) *Controller {
	if cfg.Source == nil {
		cfg.Source = StaticSource{}
	}
	c := &Controller{cfg: cfg}
	c.engine = New(c.generate(), cfg.Options...)
	return c
}

// Engine returns the controlled engine.
func (c *Controller) Engine() *Engine {
	return c.engine
}

// Reset pauses, regenerates the map from the source and re-initializes.
func (c *Controller) Reset() {
	c.engine.Reset(c.generate())
}

// Toggle starts a paused engine or pauses a running one and reports the
// new running state.
func (c *Controller) Toggle() bool {
	if c.engine.Running() {
		c.engine.Pause()
	} else {
		c.engine.Start()
	}
	return c.engine.Running()
}

// NewSeed returns a random seed for the host to offer the user.
func (c *Controller) NewSeed() int64 {
	return RandomSeed()
}

// ToggleCell flips the cell at (x, y); out-of-range positions are ignored.
func (c *Controller) ToggleCell(x, y int) bool {
	cell := c.engine.Grid().At(x, y)
	if cell == nil {
		return false
	}
	cell.Toggle()
	return true
}

// Center returns the middle cell of the current grid.
func (c *Controller) Center() core.Coord {
	g := c.engine.Grid()
	return core.C(core.NewRect(0, 0, g.Width(), g.Height()).Center())
}

func (c *Controller) generate() *Grid {
	src := c.cfg.Source
	p := core.ClampF(src.LivingProbability(), 0, 1)
	g := GenerateMap(c.cfg.Width, c.cfg.Height, src.Seed(), p)
	if c.cfg.Setup != nil {
		c.cfg.Setup(g)
	}
	return g
}
