package config

import (
	_ "embed"
)

//go:embed defaults/stardodge.yaml
var defaultYAML []byte

// Default returns the default game configuration.
func Default() Config {
	return Config{
		Ship: ShipConfig{
			X:      50,
			Width:  40,
			Height: 40,
			Speed:  20,
		},
		Obstacles: ObstacleConfig{
			Width:    30,
			Height:   30,
			MinSpeed: 3.0,
			MaxSpeed: 5.0,
		},
		Power: PowerConfig{
			Start:            100,
			CollisionPenalty: 10,
			DecayPerFrame:    0.02,
		},
	}
}
