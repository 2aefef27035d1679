package sim

import (
	"math/rand"

	"flaptty/internal/config"
	"flaptty/internal/core"
)

// Obstacle is a vertical pipe pair with a gap the bird must pass through.
// X is the left edge and decreases as the world scrolls. GapTop is fixed
// at spawn. Passed latches true once the bird has cleared the pipe and is
// never reset within a round.
type Obstacle struct {
	X      float64
	GapTop float64
	Passed bool
}

// TopRect returns the collision rectangle of the pipe above the gap.
func (o Obstacle) TopRect(width float64) core.RectF {
	return core.NewRectF(o.X, 0, width, o.GapTop)
}

// BottomRect returns the collision rectangle of the pipe below the gap,
// reaching down to the ground line.
func (o Obstacle) BottomRect(width, gap, groundY float64) core.RectF {
	top := o.GapTop + gap
	return core.NewRectF(o.X, top, width, groundY-top)
}

// ObstacleManager owns the obstacle sequence: spawning, scrolling, and
// recycling. The sequence is ordered by ascending X (oldest first); spawns
// append on the right, removal happens at the left end only, so the order
// never changes mid-round.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.GameConfig
}

// NewObstacleManager creates a manager with a deterministic RNG stream.
// The stream is seeded once and continues across round resets, so a fixed
// seed reproduces a whole session, not just its first round.
func NewObstacleManager(seed int64, cfg config.GameConfig) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
	}
}

// Reset clears all obstacles for a new round.
func (m *ObstacleManager) Reset() {
	m.obstacles = m.obstacles[:0]
}

// Advance scrolls every obstacle left by dx world units.
func (m *ObstacleManager) Advance(dx float64) {
	for i := range m.obstacles {
		m.obstacles[i].X -= dx
	}
}

// Trim removes obstacles that have fully left the screen. Removal is from
// the low-X end and preserves the order of the remainder.
func (m *ObstacleManager) Trim() {
	alive := m.obstacles[:0]
	for _, o := range m.obstacles {
		if o.X+m.cfg.Obstacles.Width > 0 {
			alive = append(alive, o)
		}
	}
	m.obstacles = alive
}

// SpawnIfNeeded appends a new obstacle when the field calls for one: the
// first obstacle of a round spawns early, at first_spawn_ratio of the world
// width, so the pre-input idle time is not wasted; after that a spawn
// happens whenever the rightmost obstacle has scrolled a full spacing in
// from the right edge.
func (m *ObstacleManager) SpawnIfNeeded() {
	if len(m.obstacles) == 0 {
		m.spawnAt(m.cfg.World.Width * m.cfg.Obstacles.FirstSpawnRatio)
		return
	}
	if m.obstacles[len(m.obstacles)-1].X < m.cfg.World.Width-m.cfg.Obstacles.Spacing {
		m.spawnAt(m.cfg.World.Width)
	}
}

// spawnAt appends an obstacle at x with a uniformly random gap position.
// The gap always fits between min_margin of solid pipe at the top and the
// same margin above the ground.
func (m *ObstacleManager) spawnAt(x float64) {
	minTop := m.cfg.Obstacles.MinMargin
	maxTop := m.cfg.GroundY() - m.cfg.Obstacles.Gap - m.cfg.Obstacles.MinMargin
	if maxTop < minTop {
		maxTop = minTop // Degenerate worlds collapse to a fixed gap position
	}

	gapTop := minTop + m.rng.Float64()*(maxTop-minTop)

	m.obstacles = append(m.obstacles, Obstacle{
		X:      x,
		GapTop: gapTop,
	})
}

// Obstacles returns the live obstacle sequence, ordered by ascending X.
// The slice is owned by the manager; callers must not retain it.
func (m *ObstacleManager) Obstacles() []Obstacle {
	return m.obstacles
}

// Collides reports whether the given hitbox overlaps any pipe.
func (m *ObstacleManager) Collides(hitbox core.RectF) bool {
	width := m.cfg.Obstacles.Width
	gap := m.cfg.Obstacles.Gap
	groundY := m.cfg.GroundY()

	for _, o := range m.obstacles {
		if hitbox.Intersects(o.TopRect(width)) || hitbox.Intersects(o.BottomRect(width, gap, groundY)) {
			return true
		}
	}
	return false
}
