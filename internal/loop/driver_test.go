package loop

import (
	"testing"
	"time"

	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/game"
)

// manualScheduler is a deterministic Scheduler for tests. Frames fire
// only when the test calls fire, with a synthetic timestamp.
type manualScheduler struct {
	pending  func(now time.Time)
	overlaps int // ScheduleNext calls that found a callback still pending
	canceled int
}

func (s *manualScheduler) ScheduleNext(fn func(now time.Time)) {
	if s.pending != nil {
		s.overlaps++
	}
	s.pending = fn
}

func (s *manualScheduler) CancelPending() {
	if s.pending != nil {
		s.canceled++
		s.pending = nil
	}
}

// fire invokes the pending callback, clearing it first the way a real
// one-shot clock does. Returns false if nothing was pending.
func (s *manualScheduler) fire(now time.Time) bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn(now)
	return true
}

func newTestDriver(seed int64) (*Driver, *game.Game, *manualScheduler) {
	g := game.New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	sched := &manualScheduler{}
	return NewDriver(g, sched), g, sched
}

func TestDriverRunsFramesSequentially(t *testing.T) {
	d, g, sched := newTestDriver(1)

	frames := 0
	d.OnFrame(func(core.GameState) { frames++ })

	d.Start()
	if sched.pending == nil {
		t.Fatal("Start should schedule the first frame")
	}

	now := time.Unix(0, 0)
	for i := 0; i < 10; i++ {
		now = now.Add(16 * time.Millisecond)
		if !sched.fire(now) {
			t.Fatalf("No pending frame at iteration %d", i)
		}
	}

	if frames != 10 {
		t.Errorf("Executed %d frames, expected 10", frames)
	}
	if g.State().Score != 10 {
		t.Errorf("Score = %d, expected 10", g.State().Score)
	}
	if sched.overlaps != 0 {
		t.Errorf("Driver held more than one pending callback %d times", sched.overlaps)
	}
}

func TestDriverStopsSchedulingAfterGameOver(t *testing.T) {
	d, g, sched := newTestDriver(314)

	var last core.GameState
	frames := 0
	d.OnFrame(func(s core.GameState) {
		last = s
		frames++
	})

	d.Start()

	// Power decays 0.02 per frame from 100, plus any collisions, so the
	// session must end within 5000 frames.
	now := time.Unix(0, 0)
	for i := 0; i < 6000 && sched.pending != nil; i++ {
		now = now.Add(16 * time.Millisecond)
		sched.fire(now)
	}

	if !last.GameOver {
		t.Fatal("Session should have ended")
	}
	if sched.pending != nil {
		t.Error("No frame may be scheduled after game over")
	}
	if d.Running() {
		t.Error("Driver should report not running after game over")
	}
	// The final frame still did its work
	if last.Score != frames {
		t.Errorf("Final score %d != executed frames %d", last.Score, frames)
	}
	if g.State().Score != frames {
		t.Errorf("Game score %d != executed frames %d", g.State().Score, frames)
	}
}

func TestDriverStopCancelsPendingFrame(t *testing.T) {
	d, g, sched := newTestDriver(1)

	d.Start()
	now := time.Unix(0, 16_000_000)
	sched.fire(now)

	scoreBefore := g.State().Score

	// Keep a handle to the pending callback, the way a torn-down host
	// might still deliver an already-fired timer.
	stale := sched.pending

	d.Stop()
	if sched.canceled != 1 {
		t.Errorf("Stop should cancel the pending callback, canceled=%d", sched.canceled)
	}
	if d.Running() {
		t.Error("Driver should not be running after Stop")
	}

	// A stray late callback must not advance the torn-down session.
	if stale != nil {
		stale(now.Add(16 * time.Millisecond))
	}
	if g.State().Score != scoreBefore {
		t.Errorf("Stray frame ran after Stop: score %d -> %d", scoreBefore, g.State().Score)
	}
}

func TestDriverStartIsIdempotent(t *testing.T) {
	d, _, sched := newTestDriver(1)

	d.Start()
	d.Start()

	if sched.overlaps != 0 {
		t.Errorf("Double Start should not schedule twice, overlaps=%d", sched.overlaps)
	}
	if !d.Running() {
		t.Error("Driver should be running after Start")
	}
}

func TestTimerSchedulerCancelPreventsFire(t *testing.T) {
	s := NewTimerScheduler(60)

	fired := make(chan struct{}, 1)
	s.ScheduleNext(func(time.Time) {
		fired <- struct{}{}
	})
	s.CancelPending()

	select {
	case <-fired:
		t.Error("Canceled callback should not fire")
	case <-time.After(100 * time.Millisecond):
	}
}
