package life

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// Seed is an optional seed value. The zero Seed means "no seed".
type Seed struct {
	Value int64
	Valid bool
}

// NoSeed generates a blank map.
var NoSeed = Seed{}

// SeedOf wraps a concrete seed value.
func SeedOf(v int64) Seed {
	return Seed{Value: v, Valid: true}
}

// ParseSeed reads a base-10 integer. Anything unparsable, including the
// empty string, yields NoSeed.
func ParseSeed(s string) Seed {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return NoSeed
	}
	return SeedOf(v)
}

// String returns the seed as text, or "none".
func (s Seed) String() string {
	if !s.Valid {
		return "none"
	}
	return strconv.FormatInt(s.Value, 10)
}

// RandomSeed returns a fresh, non-deterministic seed in the signed 32-bit range.
func RandomSeed() int64 {
	return int64(int32(rand.Uint32()))
}

// newRNG creates a deterministic generator for seeded fills.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Generate creates a w×h grid with every cell dead.
// Non-positive dimensions panic.
func Generate(w, h int) *Grid {
	return newGrid(w, h)
}

// GenerateFromSeed creates a grid and fills it from a PCG stream seeded with
// seed. One value r in [0,1) is drawn per cell, x ascending in the outer loop
// and y ascending in the inner loop; the cell is made alive when
// r >= 1-livingProbability. A probability <= 0 returns a blank grid without
// drawing any values.
func GenerateFromSeed(w, h int, seed int64, livingProbability float64) *Grid {
	g := Generate(w, h)
	if livingProbability <= 0 {
		return g
	}

	rng := newRNG(seed)
	threshold := 1 - livingProbability
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if rng.Float64() >= threshold {
				g.cells[y*w+x].Toggle()
			}
		}
	}
	return g
}

// GenerateMap picks between a blank and a seeded map depending on seed.
func GenerateMap(w, h int, seed Seed, livingProbability float64) *Grid {
	if !seed.Valid {
		return Generate(w, h)
	}
	return GenerateFromSeed(w, h, seed.Value, livingProbability)
}
