// Package loop implements the frame-driven game loop. The driver asks
// a Scheduler for one callback at a time, runs a full simulation frame
// in it, and only then schedules the next, so frames execute strictly
// sequentially and never overlap. In the interactive TUI the Bubble
// Tea runtime fills the scheduler role; this package is the headless
// form of the same loop.
package loop

import (
	"sync"
	"time"

	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/game"
)

// Scheduler is the frame clock abstraction: it invokes the callback
// once with a monotonically increasing timestamp, and can revoke a
// callback that has not fired yet. The driver holds at most one
// pending callback at a time.
type Scheduler interface {
	ScheduleNext(fn func(now time.Time))
	CancelPending()
}

// TimerScheduler is a wall-clock Scheduler backed by time.AfterFunc,
// firing at the configured tick rate.
type TimerScheduler struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
}

// NewTimerScheduler creates a scheduler firing tickRate times per second.
func NewTimerScheduler(tickRate int) *TimerScheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TimerScheduler{interval: time.Second / time.Duration(tickRate)}
}

// ScheduleNext arms the timer for the next frame, replacing any
// pending callback.
func (s *TimerScheduler) ScheduleNext(fn func(now time.Time)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, func() {
		fn(time.Now())
	})
}

// CancelPending revokes the pending callback, if any.
func (s *TimerScheduler) CancelPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Driver orchestrates the game loop: one Step per scheduled callback
// while the session runs. The transition to game over is terminal; the
// final frame still does its full work, and no further frame is
// scheduled after it. Stop revokes the pending callback so no stray
// frame runs against a torn-down session.
type Driver struct {
	mu      sync.Mutex
	game    *game.Game
	sched   Scheduler
	running bool
	onFrame func(core.GameState)
}

// NewDriver creates a driver for the given game and scheduler.
func NewDriver(g *game.Game, sched Scheduler) *Driver {
	return &Driver{game: g, sched: sched}
}

// OnFrame registers an observer invoked after every executed frame
// with the session state. Must be set before Start.
func (d *Driver) OnFrame(fn func(core.GameState)) {
	d.onFrame = fn
}

// Start begins the loop by scheduling the first frame. Starting an
// already-running driver is a no-op.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}
	d.running = true
	d.sched.ScheduleNext(d.tick)
}

// Stop halts the loop and revokes any pending callback.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = false
	d.sched.CancelPending()
}

// Running reports whether the loop is still scheduling frames.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// tick executes one frame. All state mutations complete before the
// next callback is scheduled.
func (d *Driver) tick(now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return
	}

	result := d.game.Step(now)
	if d.onFrame != nil {
		d.onFrame(result.State)
	}

	if result.State.GameOver {
		d.running = false
		return
	}
	d.sched.ScheduleNext(d.tick)
}
