package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/stardodge/internal/config"
)

// SpawnInterval is the fixed obstacle spawn cadence. The last-spawn
// timestamp is set to the triggering frame's timestamp rather than
// advanced by the interval, so cadence drifts with the frame clock;
// that is accepted.
const SpawnInterval = time.Second

// Spawner is a timestamp-gated obstacle factory. Randomness comes from
// an injected seed so spawn behavior is deterministically testable.
type Spawner struct {
	rng       *rand.Rand
	lastSpawn time.Time
	cfg       config.ObstacleConfig
}

// NewSpawner creates a spawner with the given RNG seed and obstacle
// parameters.
func NewSpawner(seed int64, cfg config.ObstacleConfig) *Spawner {
	s := &Spawner{cfg: cfg}
	s.Reset(seed)
	return s
}

// Reset reseeds the RNG and clears the spawn timer. The first frame
// after a reset always spawns.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.lastSpawn = time.Time{}
}

// UpdateConfig replaces the obstacle parameters.
func (s *Spawner) UpdateConfig(cfg config.ObstacleConfig) {
	s.cfg = cfg
}

// MaybeSpawn creates exactly one obstacle when more than SpawnInterval
// has elapsed since the last spawn, regardless of how far past the
// interval the frame lands. The obstacle appears just off the right
// edge at a uniformly random height, with a speed drawn uniformly from
// [MinSpeed, MaxSpeed).
func (s *Spawner) MaybeSpawn(now time.Time, viewportW, viewportH float64) (Obstacle, bool) {
	if !s.lastSpawn.IsZero() && now.Sub(s.lastSpawn) <= SpawnInterval {
		return Obstacle{}, false
	}
	s.lastSpawn = now

	yRange := viewportH - s.cfg.Height
	if yRange < 0 {
		yRange = 0
	}

	return Obstacle{
		X:     viewportW,
		Y:     s.rng.Float64() * yRange,
		W:     s.cfg.Width,
		H:     s.cfg.Height,
		Speed: s.cfg.MinSpeed + s.rng.Float64()*(s.cfg.MaxSpeed-s.cfg.MinSpeed),
	}, true
}
