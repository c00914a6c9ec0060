package life

import (
	"testing"

	"github.com/vovakirdan/tui-life/internal/core"
)

type mutableSource struct {
	seed Seed
	p    float64
}

func (m *mutableSource) Seed() Seed                 { return m.seed }
func (m *mutableSource) LivingProbability() float64 { return m.p }

func TestControllerGeneratesFromSource(t *testing.T) {
	c := NewController(ControllerConfig{
		Width:  8,
		Height: 6,
		Source: StaticSource{SeedValue: SeedOf(42), Probability: 0.5},
	})

	want := GenerateFromSeed(8, 6, 42, 0.5)
	if got := c.Engine().Grid().String(); got != want.String() {
		t.Errorf("controller map differs from generator:\n%s\n---\n%s", got, want)
	}
	if c.Engine().Stats().Living != want.CountLiving() {
		t.Error("engine counts do not match generated map")
	}
}

func TestControllerDefaultSourceIsBlank(t *testing.T) {
	c := NewController(ControllerConfig{Width: 4, Height: 4})
	if n := c.Engine().Stats().Living; n != 0 {
		t.Errorf("expected blank map, got %d living", n)
	}
}

func TestControllerResetPullsFreshInputs(t *testing.T) {
	src := &mutableSource{}
	c := NewController(ControllerConfig{Width: 10, Height: 10, Source: src})
	e := c.Engine()

	if e.Stats().Living != 0 {
		t.Fatal("no seed should give a blank map")
	}

	src.seed = SeedOf(7)
	src.p = 1
	c.Toggle()
	c.Reset()

	if e.Running() {
		t.Error("Reset should pause")
	}
	if st := e.Stats(); st.Living != 100 || st.Steps != 0 {
		t.Errorf("stats after reset = %+v", st)
	}
	if c.Engine() != e {
		t.Error("Reset should keep the same engine")
	}
}

func TestControllerClampsProbability(t *testing.T) {
	c := NewController(ControllerConfig{
		Width:  5,
		Height: 5,
		Source: StaticSource{SeedValue: SeedOf(1), Probability: 3},
	})
	if n := c.Engine().Stats().Living; n != 25 {
		t.Errorf("probability above 1 should fill the map, got %d", n)
	}
}

func TestControllerToggle(t *testing.T) {
	c := NewController(ControllerConfig{Width: 3, Height: 3})

	if !c.Toggle() {
		t.Error("first Toggle should start")
	}
	if c.Toggle() {
		t.Error("second Toggle should pause")
	}
}

func TestControllerToggleCell(t *testing.T) {
	c := NewController(ControllerConfig{Width: 3, Height: 3})

	if !c.ToggleCell(1, 1) {
		t.Error("ToggleCell in range should succeed")
	}
	if c.ToggleCell(5, 5) {
		t.Error("ToggleCell out of range should fail")
	}
	if n := c.Engine().Stats().Living; n != 1 {
		t.Errorf("living = %d, expected 1", n)
	}
}

func TestControllerSetupRunsOnEveryReset(t *testing.T) {
	var calls int
	c := NewController(ControllerConfig{
		Width:  7,
		Height: 7,
		Setup: func(g *Grid) {
			calls++
			g.Place([]core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, core.C(3, 3))
		},
	})
	c.Reset()

	if calls != 2 {
		t.Errorf("Setup called %d times, expected 2", calls)
	}
	if n := c.Engine().Stats().Living; n != 4 {
		t.Errorf("living = %d, expected 4", n)
	}
	if center := c.Center(); center != core.C(3, 3) {
		t.Errorf("Center() = %v, expected (3,3)", center)
	}
}

func TestControllerOptionsReachEngine(t *testing.T) {
	var initialized int
	c := NewController(ControllerConfig{
		Width:   4,
		Height:  4,
		Options: []Option{WithInitializedListener(func(Initialized) { initialized++ })},
	})
	c.Reset()

	if initialized != 2 {
		t.Errorf("Initialized emitted %d times, expected 2", initialized)
	}
}

func TestListenersLenTracksUnsubscribe(t *testing.T) {
	var l listeners[int]
	un := l.add(func(int) {})
	l.add(func(int) {})
	if len(l.subs) != 2 {
		t.Fatalf("subscribers = %d, expected 2", len(l.subs))
	}
	un()
	un()
	if len(l.subs) != 1 {
		t.Errorf("subscribers = %d after unsubscribe, expected 1", len(l.subs))
	}
}
