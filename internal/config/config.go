// Package config provides YAML-based game configuration loading.
package config

// Config contains all tunable parameters for the game.
// The spawn cadence is deliberately not here: it is a fixed property
// of the game, see game.SpawnInterval.
type Config struct {
	Ship      ShipConfig     `yaml:"ship"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Power     PowerConfig    `yaml:"power"`
}

// ShipConfig defines the player ship parameters, in virtual pixels.
type ShipConfig struct {
	X      float64 `yaml:"x"`      // Fixed horizontal position
	Width  float64 `yaml:"width"`  // Hull width
	Height float64 `yaml:"height"` // Hull height
	Speed  float64 `yaml:"speed"`  // Pixels moved per input trigger
}

// ObstacleConfig defines obstacle size and the speed range sampled at
// spawn time.
type ObstacleConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MinSpeed float64 `yaml:"min_speed"` // Pixels per frame, inclusive
	MaxSpeed float64 `yaml:"max_speed"` // Pixels per frame, exclusive
}

// PowerConfig defines the power resource: starting level, the penalty
// paid per collision, and the continuous per-frame drain.
type PowerConfig struct {
	Start            float64 `yaml:"start"`
	CollisionPenalty float64 `yaml:"collision_penalty"`
	DecayPerFrame    float64 `yaml:"decay_per_frame"`
}
