package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the default simulation configuration.
func DefaultLifeConfig() LifeConfig {
	seed := int64(42)
	return LifeConfig{
		Grid: GridConfig{
			Width:  64,
			Height: 32,
		},
		Seed:              &seed,
		LivingProbability: 0.35,
		Speed:             "medium",
		Rule:              "B3/S23",
		TrackBounds:       true,
	}
}

// base is the starting point for parsed files: defaults without a seed,
// so a file that leaves the seed out gets a blank map.
func base() LifeConfig {
	cfg := DefaultLifeConfig()
	cfg.Seed = nil
	return cfg
}
