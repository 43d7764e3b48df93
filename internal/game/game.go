// Package game implements the dodge-'em simulation: a starship holds a
// fixed column on the left of the viewport and dodges debris drifting
// in from the right, losing power on contact and continuously over
// time. Power zero ends the session.
//
// The simulation runs in a virtual pixel space derived from the screen
// size, so physics constants are independent of terminal cell geometry.
package game

import (
	"time"

	"github.com/vovakirdan/stardodge/internal/config"
	"github.com/vovakirdan/stardodge/internal/core"
)

// Virtual pixels per terminal cell. Cells are roughly twice as tall as
// they are wide, so the vertical scale doubles the horizontal one.
const (
	CellPxW = 8
	CellPxH = 16
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game holds one session of the dodge simulation. It owns the ship,
// the live obstacle set, and the session state (score, power,
// game-over), exposed read-only through State.
type Game struct {
	ship      Ship
	obstacles []Obstacle
	spawner   *Spawner
	score     int
	gameOver  bool

	viewportW float64 // Virtual pixel dimensions, mutable on resize
	viewportH float64

	runtime core.RuntimeConfig
	cfg     config.Config
}

// New creates a new game instance. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "stardodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Stardodge"
}

// Reset initializes or restarts the session: full power, zero score,
// empty obstacle set, reseeded spawner.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = cfg

	g.viewportW = float64(runtime.ScreenW * CellPxW)
	g.viewportH = float64(runtime.ScreenH * CellPxH)

	g.ship = Ship{
		X:     cfg.Ship.X,
		Y:     (g.viewportH - cfg.Ship.Height) / 2,
		W:     cfg.Ship.Width,
		H:     cfg.Ship.Height,
		Speed: cfg.Ship.Speed,
		Power: cfg.Power.Start,
	}

	g.obstacles = g.obstacles[:0]
	g.score = 0
	g.gameOver = false

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, cfg.Obstacles)
	} else {
		g.spawner.UpdateConfig(cfg.Obstacles)
		g.spawner.Reset(runtime.Seed)
	}
}

// Resize updates the viewport dimensions without restarting the
// session. The ship is re-clamped into the new bounds; obstacles keep
// flying and are culled by the usual left-edge rule.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.viewportW = float64(screenW * CellPxW)
	g.viewportH = float64(screenH * CellPxH)
	g.ship.Y = core.ClampF(g.ship.Y, 0, g.viewportH-g.ship.H)
}

// MoveUp shifts the ship up by one speed step, stopping at the top
// edge. A no-op at the boundary. Safe to call at any time relative to
// the frame clock; each trigger applies exactly one step.
func (g *Game) MoveUp() {
	g.ship.Y = core.ClampF(g.ship.Y-g.ship.Speed, 0, g.viewportH-g.ship.H)
}

// MoveDown shifts the ship down by one speed step, stopping at the
// bottom edge. A no-op at the boundary.
func (g *Game) MoveDown() {
	g.ship.Y = core.ClampF(g.ship.Y+g.ship.Speed, 0, g.viewportH-g.ship.H)
}

// Step advances the session by one frame: spawner check, obstacle
// physics and collision, continuous power drain, then score. The
// timestamp comes from the frame clock and gates the spawner. The
// frame on which power reaches zero still counts toward the score;
// once the game is over further calls are no-ops.
func (g *Game) Step(now time.Time) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if o, ok := g.spawner.MaybeSpawn(now, g.viewportW, g.viewportH); ok {
		g.obstacles = append(g.obstacles, o)
	}

	g.advanceObstacles()

	// Continuous fuel drain, independent of obstacle contact.
	if !g.gameOver {
		g.drainPower(g.cfg.Power.DecayPerFrame)
	}

	g.score++

	return core.StepResult{State: g.State()}
}

// State returns the observable session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Power:    g.ship.Power,
		GameOver: g.gameOver,
	}
}

// Ship returns a copy of the player ship.
func (g *Game) Ship() Ship {
	return g.ship
}

// Obstacles returns the live obstacle set. The slice is owned by the
// game; callers must not retain it across frames.
func (g *Game) Obstacles() []Obstacle {
	return g.obstacles
}

// Viewport returns the current viewport size in virtual pixels.
func (g *Game) Viewport() (w, h float64) {
	return g.viewportW, g.viewportH
}
