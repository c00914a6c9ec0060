package tui

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// probabilityStep is how much [ and ] change the living probability.
const probabilityStep = 0.05

// session holds the simulation state behind a Model. Bubble Tea copies
// models by value, so everything the engine's listeners write lives here.
type session struct {
	controller *life.Controller
	clock      *life.Clock
	store      *storage.Store
	logger     *log.Logger
	rule       string

	// Pending generation inputs, read by the controller on every reset.
	seed        life.Seed
	probability float64

	// Inputs the current map was generated from.
	mapSeed        life.Seed
	mapProbability float64

	stats   life.Stats
	running bool
}

// newSession builds the controller and engine for cfg.
func newSession(cfg config.LifeConfig, store *storage.Store, logger *log.Logger) (*session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &session{
		clock:       life.NewClock(cfg.ParsedSpeed()),
		store:       store,
		logger:      logger,
		rule:        cfg.ParsedRule().String(),
		seed:        cfg.SeedValue(),
		probability: cfg.LivingProbability,
	}

	setup, err := registry.Setup(cfg.Pattern)
	if err != nil {
		return nil, err
	}

	// Bounds are always tracked so they can be shown on demand.
	opts := append(cfg.EngineOptions(),
		life.WithBoundsTracking(),
		life.WithLogger(logger),
		life.WithInitializedListener(s.onInitialized),
		life.WithChangedListener(s.onChanged),
	)

	s.markGenerated()
	s.controller = life.NewController(life.ControllerConfig{
		Width:   cfg.Grid.Width,
		Height:  cfg.Grid.Height,
		Source:  s,
		Setup:   setup,
		Options: opts,
	})
	return s, nil
}

// Seed implements life.Source.
func (s *session) Seed() life.Seed {
	return s.seed
}

// LivingProbability implements life.Source.
func (s *session) LivingProbability() float64 {
	return s.probability
}

func (s *session) engine() *life.Engine {
	return s.controller.Engine()
}

func (s *session) onInitialized(ev life.Initialized) {
	s.stats = life.Stats{
		Total:  ev.Total,
		Living: ev.Living,
		Dead:   ev.Dead,
		Steps:  ev.Steps,
	}
	s.running = false
}

func (s *session) onChanged(ev life.Changed) {
	s.stats.Living = ev.Living
	s.stats.Dead = ev.Dead
	s.stats.Steps = ev.Steps
	s.running = ev.Running
}

func (s *session) markGenerated() {
	s.mapSeed = s.seed
	s.mapProbability = s.probability
}

// reset records the finished run and regenerates the map from the
// pending seed and probability.
func (s *session) reset() {
	s.record()
	s.markGenerated()
	s.controller.Reset()
}

// randomSeed picks a fresh seed and regenerates.
func (s *session) randomSeed() int64 {
	v := s.controller.NewSeed()
	s.seed = life.SeedOf(v)
	s.reset()
	return v
}

// adjustProbability moves the pending probability by delta, keeping two
// decimals. It takes effect on the next reset.
func (s *session) adjustProbability(delta float64) float64 {
	p := core.ClampF(s.probability+delta, 0, 1)
	s.probability = math.Round(p*100) / 100
	return s.probability
}

// record saves the current run to the history store. Runs that never
// advanced are skipped.
func (s *session) record() {
	if s.store == nil || s.stats.Steps == 0 {
		return
	}
	g := s.engine().Grid()
	run := storage.Run{
		Seed:        s.mapSeed,
		Width:       g.Width(),
		Height:      g.Height(),
		Probability: s.mapProbability,
		Rule:        s.rule,
		Steps:       s.stats.Steps,
		Living:      s.stats.Living,
	}
	if _, err := s.store.SaveRun(run); err != nil {
		s.logger.Warn("could not record run", "error", err)
		return
	}
	s.logger.Debug("run recorded", "seed", run.Seed, "steps", run.Steps)
}

// describe returns the one-line summary shown in the header.
func (s *session) describe() string {
	return fmt.Sprintf("seed %s  p %.2f  speed %s  rule %s",
		s.mapSeed, s.mapProbability, s.clock.Speed(), s.rule)
}
