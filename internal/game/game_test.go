package game

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/stardodge/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newTestGame returns a reset game on an 80x24 screen, which maps to a
// 640x384 virtual pixel viewport.
func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(testRuntime(seed))
	return g
}

// muzzle pushes the spawn window past now so a Step at now spawns
// nothing, keeping the obstacle set under test control.
func (g *Game) muzzle(now time.Time) {
	g.spawner.lastSpawn = now
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMoveClampsToBounds(t *testing.T) {
	g := newTestGame(1)
	_, viewportH := g.Viewport()
	maxY := viewportH - g.ship.H

	for i := 0; i < 100; i++ {
		g.MoveUp()
	}
	if g.ship.Y != 0 {
		t.Errorf("MoveUp should clamp at 0, got %v", g.ship.Y)
	}

	// Boundary trigger is an idempotent no-op
	g.MoveUp()
	if g.ship.Y != 0 {
		t.Errorf("MoveUp at top edge should be a no-op, got %v", g.ship.Y)
	}

	for i := 0; i < 100; i++ {
		g.MoveDown()
	}
	if g.ship.Y != maxY {
		t.Errorf("MoveDown should clamp at %v, got %v", maxY, g.ship.Y)
	}

	g.MoveDown()
	if g.ship.Y != maxY {
		t.Errorf("MoveDown at bottom edge should be a no-op, got %v", g.ship.Y)
	}
}

func TestMoveAppliesOneStepPerTrigger(t *testing.T) {
	g := newTestGame(1)
	startY := g.ship.Y

	g.MoveUp()
	if g.ship.Y != startY-g.ship.Speed {
		t.Errorf("MoveUp should apply exactly one speed step, got %v from %v", g.ship.Y, startY)
	}

	g.MoveUp()
	g.MoveDown()
	g.MoveDown()
	if g.ship.Y != startY {
		t.Errorf("Paired triggers should cancel out, got %v from %v", g.ship.Y, startY)
	}
}

func TestObstaclesMoveByExactlyTheirSpeed(t *testing.T) {
	g := newTestGame(1)
	now := time.Unix(0, 0)
	g.muzzle(now)

	g.obstacles = []Obstacle{
		{X: 600, Y: 0, W: 30, H: 30, Speed: 3.5},
		{X: 500, Y: 300, W: 30, H: 30, Speed: 4.25},
	}

	g.Step(now)

	if len(g.obstacles) != 2 {
		t.Fatalf("Both obstacles should survive, got %d", len(g.obstacles))
	}
	if !approx(g.obstacles[0].X, 600-3.5) {
		t.Errorf("Obstacle 0 x = %v, expected %v", g.obstacles[0].X, 600-3.5)
	}
	if !approx(g.obstacles[1].X, 500-4.25) {
		t.Errorf("Obstacle 1 x = %v, expected %v", g.obstacles[1].X, 500-4.25)
	}
}

func TestObstacleEscapesWithoutPowerEffect(t *testing.T) {
	g := newTestGame(1)
	now := time.Unix(0, 0)
	g.muzzle(now)

	// Right edge goes negative this frame
	g.obstacles = []Obstacle{{X: -28, Y: 0, W: 30, H: 30, Speed: 4}}

	g.Step(now)

	if len(g.obstacles) != 0 {
		t.Errorf("Escaped obstacle should be removed, %d left", len(g.obstacles))
	}
	// Only the continuous decay applies
	if !approx(g.ship.Power, 100-0.02) {
		t.Errorf("Escape should not cost power, got %v", g.ship.Power)
	}
}

func TestCollisionConsumesObstacleAndPower(t *testing.T) {
	g := newTestGame(1)
	now := time.Unix(0, 0)
	g.muzzle(now)

	// Ship sits at (50, 172, 40, 40); place debris overlapping it
	g.obstacles = []Obstacle{{X: 64, Y: g.ship.Y, W: 30, H: 30, Speed: 4}}

	result := g.Step(now)

	if len(g.obstacles) != 0 {
		t.Errorf("Collided obstacle should be removed, %d left", len(g.obstacles))
	}
	// Penalty of 10, then the frame's continuous decay
	if !approx(g.ship.Power, 100-10-0.02) {
		t.Errorf("Power after collision = %v, expected %v", g.ship.Power, 100-10-0.02)
	}
	if result.State.GameOver {
		t.Error("A single collision at full power should not end the game")
	}
	if result.State.Score != 1 {
		t.Errorf("Frame should still score, got %d", result.State.Score)
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	g := newTestGame(1)
	now := time.Unix(0, 0)
	g.muzzle(now)

	// After moving 4px left the obstacle's left edge lands exactly on
	// the ship's right edge (x=90): touching, not colliding.
	g.obstacles = []Obstacle{{X: 94, Y: g.ship.Y, W: 30, H: 30, Speed: 4}}

	g.Step(now)

	if len(g.obstacles) != 1 {
		t.Fatalf("Touching obstacle should survive, got %d obstacles", len(g.obstacles))
	}
	if !approx(g.ship.Power, 100-0.02) {
		t.Errorf("Touching should not cost power, got %v", g.ship.Power)
	}
}

func TestTenCollisionsEndGame(t *testing.T) {
	g := newTestGame(1)
	now := time.Unix(0, 0)

	for i := 0; i < 10; i++ {
		now = now.Add(16 * time.Millisecond)
		g.muzzle(now)
		g.obstacles = append(g.obstacles, Obstacle{X: 64, Y: g.ship.Y, W: 30, H: 30, Speed: 4})

		result := g.Step(now)

		if i < 9 && result.State.GameOver {
			t.Fatalf("Game over after %d collisions, expected 10", i+1)
		}
	}

	state := g.State()
	if !state.GameOver {
		t.Error("Ten collisions should end the game")
	}
	if state.Power != 0 {
		t.Errorf("Power should be 0 at game over, got %v", state.Power)
	}
	if state.Score != 10 {
		t.Errorf("The final frame should still score, got %d", state.Score)
	}
}

func TestGameOverIsOneWay(t *testing.T) {
	g := newTestGame(1)
	now := time.Unix(0, 0)
	g.muzzle(now)

	g.ship.Power = 0.01
	g.Step(now) // Decay drives power to zero

	if !g.gameOver {
		t.Fatal("Decay should be able to end the game")
	}

	scoreAtEnd := g.score
	for i := 0; i < 5; i++ {
		now = now.Add(16 * time.Millisecond)
		result := g.Step(now)
		if !result.State.GameOver {
			t.Error("Game-over flag must never clear within a session")
		}
	}
	if g.score != scoreAtEnd {
		t.Errorf("Steps after game over should not score, got %d vs %d", g.score, scoreAtEnd)
	}
}

func TestScoreIncrementsOncePerFrame(t *testing.T) {
	g := newTestGame(1)
	now := time.Unix(0, 0)

	for i := 0; i < 50; i++ {
		now = now.Add(16 * time.Millisecond)
		g.muzzle(now)
		g.Step(now)
	}

	if g.score != 50 {
		t.Errorf("Score = %d after 50 frames, expected 50", g.score)
	}
}

func TestPowerDecaysEveryFrame(t *testing.T) {
	g := newTestGame(1)
	now := time.Unix(0, 0)

	for i := 0; i < 100; i++ {
		now = now.Add(16 * time.Millisecond)
		g.muzzle(now)
		g.Step(now)
	}

	want := 100 - 0.02*100
	if math.Abs(g.ship.Power-want) > 1e-6 {
		t.Errorf("Power = %v after 100 frames, expected %v", g.ship.Power, want)
	}
}

func TestPowerMonotonicallyNonIncreasing(t *testing.T) {
	g := newTestGame(99)
	now := time.Unix(0, 0)

	prev := g.State().Power
	for i := 0; i < 3000 && !g.State().GameOver; i++ {
		now = now.Add(16 * time.Millisecond)
		result := g.Step(now)
		if result.State.Power > prev {
			t.Fatalf("Power increased from %v to %v at frame %d", prev, result.State.Power, i)
		}
		prev = result.State.Power
	}
}

func TestDeterminism(t *testing.T) {
	run := func() core.GameState {
		g := newTestGame(12345)
		now := time.Unix(0, 0)
		var state core.GameState
		for i := 0; i < 2000; i++ {
			now = now.Add(16 * time.Millisecond)
			result := g.Step(now)
			state = result.State
			if state.GameOver {
				break
			}
		}
		return state
	}

	s1 := run()
	s2 := run()

	if s1 != s2 {
		t.Errorf("Determinism failed: %+v vs %+v", s1, s2)
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(42)
	now := time.Unix(0, 0)

	for i := 0; i < 100; i++ {
		now = now.Add(16 * time.Millisecond)
		g.Step(now)
		g.MoveUp()
	}

	g.Reset(testRuntime(42))

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.gameOver {
		t.Error("Reset should clear gameOver flag")
	}
	if g.ship.Power != 100 {
		t.Errorf("Reset should restore full power, got %v", g.ship.Power)
	}
	if len(g.obstacles) != 0 {
		t.Errorf("Reset should clear obstacles, got %d", len(g.obstacles))
	}
}

func TestResizeKeepsShipInBounds(t *testing.T) {
	g := newTestGame(1)

	for i := 0; i < 100; i++ {
		g.MoveDown()
	}

	g.Resize(40, 12) // Viewport shrinks to 320x192
	_, viewportH := g.Viewport()

	if viewportH != 192 {
		t.Errorf("Viewport height = %v, expected 192", viewportH)
	}
	if g.ship.Y > viewportH-g.ship.H {
		t.Errorf("Ship y=%v outside shrunk viewport", g.ship.Y)
	}
	if g.gameOver || g.score != 0 {
		t.Error("Resize should not reset the session")
	}
}

func TestRenderDrawsShipAndObstacles(t *testing.T) {
	g := newTestGame(1)
	now := time.Unix(0, 0)
	g.muzzle(now)
	g.obstacles = []Obstacle{{X: 400, Y: 64, W: 30, H: 30, Speed: 4}}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	found := map[rune]bool{}
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			found[screen.Get(x, y)] = true
		}
	}

	if !found[ShipNose] {
		t.Error("Render should draw the ship nose")
	}
	if !found[ShipBody] {
		t.Error("Render should draw the ship body")
	}
	if !found[ObstacleBody] {
		t.Error("Render should draw the obstacle")
	}
}

func TestRenderLeavesFadingTrail(t *testing.T) {
	g := newTestGame(1)
	now := time.Unix(0, 0)
	g.muzzle(now)
	g.obstacles = []Obstacle{{X: 400, Y: 64, W: 30, H: 30, Speed: 4}}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Obstacle occupies columns 50.. at row 4; remember one body cell
	cx, cy := 50, 4
	if screen.Get(cx, cy) != ObstacleBody {
		t.Fatalf("Expected obstacle body at (%d,%d), got %q", cx, cy, screen.Get(cx, cy))
	}

	// Move the obstacle far away and render again: the old cell should
	// hold a dimmed afterimage rather than be cleared.
	g.obstacles[0].X = 100
	g.Render(screen)

	c := screen.GetCell(cx, cy)
	if c.Rune != ObstacleBody {
		t.Errorf("Old position should keep a trail rune, got %q", c.Rune)
	}
	if c.Color != core.ColorRed {
		t.Errorf("Trail should be dimmed to ColorRed, got %v", c.Color)
	}
}
