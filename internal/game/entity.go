package game

import (
	"github.com/vovakirdan/stardodge/internal/core"
)

// Ship is the player-controlled vessel. A single instance exists per
// session; it is never destroyed, only reset. Position is mutated by
// the input triggers, power by the physics step.
type Ship struct {
	X, Y  float64 // Top-left corner in virtual pixels
	W, H  float64 // Fixed size
	Speed float64 // Pixels moved per input trigger
	Power float64 // Combined health/fuel in [0, 100]; drives draw intensity
}

// Bounds returns the ship's collision rectangle.
func (s Ship) Bounds() core.RectF {
	return core.NewRectF(s.X, s.Y, s.W, s.H)
}

// Obstacle is a transient hazard moving leftward at a constant
// per-instance speed. It is removed from the live set when it scrolls
// past the left edge or collides with the ship, never both.
type Obstacle struct {
	X, Y  float64 // Top-left corner in virtual pixels
	W, H  float64 // Fixed size
	Speed float64 // Leftward pixels per frame, randomized at spawn
}

// Bounds returns the obstacle's collision rectangle.
func (o Obstacle) Bounds() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}
