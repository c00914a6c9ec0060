// Package registry provides a global registry for pattern presets.
// Patterns register themselves in init() functions, allowing the CLI and
// TUI to discover and stamp them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// Kind classifies a pattern by how it behaves over time.
type Kind string

const (
	KindStillLife  Kind = "still life"
	KindOscillator Kind = "oscillator"
	KindSpaceship  Kind = "spaceship"
	KindMethuselah Kind = "methuselah"
)

// Pattern is a named arrangement of living cells.
type Pattern struct {
	// Title returns a human-readable name for display (e.g., "Glider").
	Title string

	Kind Kind

	// Period is the number of generations after which the shape repeats,
	// or 0 when it never settles into a cycle on its own.
	Period int

	// Cells are offsets from the pattern's top-left corner.
	Cells []core.Coord
}

// Size returns the width and height of the pattern's bounding box.
func (p Pattern) Size() (w, h int) {
	for _, c := range p.Cells {
		w = core.Max(w, c.X+1)
		h = core.Max(h, c.Y+1)
	}
	return w, h
}

// Stamp brings the pattern to life on g with its center at center.
// Cells falling outside g are dropped. Returns the number of cells placed.
func (p Pattern) Stamp(g *life.Grid, center core.Coord) int {
	w, h := p.Size()
	origin := center.Add(-w/2, -h/2)
	return g.Place(p.Cells, origin)
}

// PatternInfo contains metadata about a registered pattern.
type PatternInfo struct {
	ID     string
	Title  string
	Kind   Kind
	Period int
	Cells  int
}

var (
	patterns = make(map[string]Pattern)
	mu       sync.RWMutex
)

// Register adds a pattern to the registry.
// Typically called from an init() function.
// Panics if a pattern with the same ID is already registered.
func Register(id string, p Pattern) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := patterns[id]; exists {
		panic(fmt.Sprintf("registry: pattern %q already registered", id))
	}
	if len(p.Cells) == 0 {
		panic(fmt.Sprintf("registry: pattern %q has no cells", id))
	}

	patterns[id] = p
}

// List returns information about all registered patterns, sorted by ID.
func List() []PatternInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PatternInfo, 0, len(patterns))
	for id, p := range patterns {
		result = append(result, PatternInfo{
			ID:     id,
			Title:  p.Title,
			Kind:   p.Kind,
			Period: p.Period,
			Cells:  len(p.Cells),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a pattern by its ID.
// Returns an error if the pattern ID is not registered.
func Get(id string) (Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := patterns[id]
	if !ok {
		return Pattern{}, fmt.Errorf("registry: unknown pattern %q", id)
	}

	return p, nil
}

// Exists checks if a pattern with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := patterns[id]
	return ok
}

// Setup returns a grid setup function that stamps pattern id at the grid
// center, for use as life.ControllerConfig.Setup. An empty id returns nil.
func Setup(id string) (func(g *life.Grid), error) {
	if id == "" {
		return nil, nil
	}
	p, err := Get(id)
	if err != nil {
		return nil, err
	}
	return func(g *life.Grid) {
		p.Stamp(g, core.C(g.Width()/2, g.Height()/2))
	}, nil
}
