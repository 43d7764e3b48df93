package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the observable session state exposed to the
// presentation layer: score, remaining power, and the one-way
// game-over flag.
type GameState struct {
	Score    int     // Frames survived, +1 per executed frame
	Power    float64 // Remaining power in [0, 100]
	GameOver bool    // Set when power reaches zero; never cleared
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
