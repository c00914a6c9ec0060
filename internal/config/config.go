// Package config provides YAML-based simulation configuration loading
// for the life CLI and TUI.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// LifeConfig contains all configuration for a simulation.
type LifeConfig struct {
	Grid              GridConfig `yaml:"grid"`
	Seed              *int64     `yaml:"seed"` // nil means blank map
	LivingProbability float64    `yaml:"living_probability"`
	Speed             string     `yaml:"speed"`
	Rule              string     `yaml:"rule"`
	TrackBounds       bool       `yaml:"track_bounds"`
	Pattern           string     `yaml:"pattern"` // optional preset stamped at the center
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate clamps the living probability to [0,1] and rejects values
// the simulation cannot run with.
func (c *LifeConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	c.LivingProbability = core.ClampF(c.LivingProbability, 0, 1)
	if _, err := life.ParseSpeed(c.Speed); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := life.ParseRule(c.Rule); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SeedValue returns the configured seed as a life.Seed.
func (c LifeConfig) SeedValue() life.Seed {
	if c.Seed == nil {
		return life.NoSeed
	}
	return life.SeedOf(*c.Seed)
}

// SetSeed replaces the seed; an invalid s clears it.
func (c *LifeConfig) SetSeed(s life.Seed) {
	if !s.Valid {
		c.Seed = nil
		return
	}
	v := s.Value
	c.Seed = &v
}

// ParsedSpeed returns the speed level, falling back to medium.
// Call Validate first to surface bad names.
func (c LifeConfig) ParsedSpeed() life.Speed {
	s, err := life.ParseSpeed(c.Speed)
	if err != nil {
		return life.SpeedMedium
	}
	return s
}

// ParsedRule returns the rule, falling back to Conway.
func (c LifeConfig) ParsedRule() life.Rule {
	r, err := life.ParseRule(c.Rule)
	if err != nil {
		return life.Conway
	}
	return r
}

// EngineOptions translates the config into engine options.
func (c LifeConfig) EngineOptions() []life.Option {
	opts := []life.Option{life.WithRule(c.ParsedRule())}
	if c.TrackBounds {
		opts = append(opts, life.WithBoundsTracking())
	}
	return opts
}
