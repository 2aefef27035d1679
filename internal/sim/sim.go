// Package sim implements the flappy game world: bird physics, obstacle
// flow, collision detection, scoring, and the session phase machine.
//
// The package is pure logic. It knows nothing about terminals, clocks, or
// key codes; the platform layer drives it by reporting elapsed wall time
// and primary-input signals, and reads the world back as snapshots. All
// positions are in world units on a fixed canvas whose size comes from the
// game configuration, so behavior is identical at every terminal size.
package sim

import (
	"math"

	"flaptty/internal/config"
	"flaptty/internal/core"
)

// nominalFrameMs is the frame duration the tuning constants are calibrated
// for. Updates scale their physics steps by elapsed/nominal, so the world
// moves at the same real-time speed regardless of the actual frame rate.
const nominalFrameMs = 1000.0 / 60.0

// Bird is the player avatar. X and Y locate the sprite center; X never
// changes after New. Vel is vertical velocity in world units per nominal
// frame, positive downward. Rotation is a cosmetic pitch angle in degrees
// derived from Vel each step.
type Bird struct {
	X        float64
	Y        float64
	Vel      float64
	Rotation float64
}

// Bounds returns the full sprite rectangle.
func (b Bird) Bounds(cfg config.BirdConfig) core.RectF {
	return core.NewRectF(b.X-cfg.Width/2, b.Y-cfg.Height/2, cfg.Width, cfg.Height)
}

// Hitbox returns the collision rectangle: the sprite bounds shrunk by the
// configured inset so near-misses that look clear on screen stay clear.
func (b Bird) Hitbox(cfg config.BirdConfig) core.RectF {
	return b.Bounds(cfg).Inset(cfg.HitboxInset)
}

// RenderState is an immutable snapshot of everything a renderer needs for
// one frame. The obstacle slice is a copy and safe to retain.
type RenderState struct {
	Bird         Bird
	Obstacles    []Obstacle
	Phase        Phase
	Score        int
	HighScore    int
	NewHighScore bool
}

// Sim is a single game session: one bird, one obstacle field, one score.
// It is not safe for concurrent use; the platform serializes input and
// frame updates onto one goroutine.
type Sim struct {
	cfg       config.GameConfig
	bird      Bird
	obstacles *ObstacleManager
	phase     Phase
	score     int
	highScore int
	newHigh   bool
	store     ScoreStore
}

// New creates a session in the splash phase. The seed fixes the obstacle
// sequence for the whole session. store may be nil, in which case the high
// score lives only as long as the session; a store that fails to load is
// treated the same way.
func New(cfg config.GameConfig, seed int64, store ScoreStore) *Sim {
	s := &Sim{
		cfg:       cfg,
		obstacles: NewObstacleManager(seed, cfg),
		phase:     PhaseSplash,
		store:     store,
	}
	if store != nil {
		if high, err := store.Load(); err == nil && high > 0 {
			s.highScore = high
		}
	}
	s.placeBird()
	return s
}

// PrimaryInput applies the single player signal. Its meaning depends on
// the phase: it advances the splash screen, starts a round with an initial
// flap, flaps mid-flight, or resets after a game over. Flapping sets the
// velocity rather than adding to it, so mashing the input is no stronger
// than tapping it.
func (s *Sim) PrimaryInput() {
	switch s.phase {
	case PhaseSplash:
		s.phase = PhaseReady
	case PhaseReady:
		s.phase = PhaseActive
		s.flap()
	case PhaseActive:
		s.flap()
	case PhaseEnded:
		s.resetRound()
	}
}

// Update advances the world by elapsedMs of wall time. Outside the active
// phase it does nothing. Nonsensical elapsed values (negative, NaN) freeze
// the frame, and very long frames are capped so a stall after resume does
// not teleport the bird through obstacles.
func (s *Sim) Update(elapsedMs float64) {
	if s.phase != PhaseActive {
		return
	}
	if math.IsNaN(elapsedMs) || elapsedMs < 0 {
		elapsedMs = 0
	}
	if elapsedMs > s.cfg.Physics.MaxFrameMs {
		elapsedMs = s.cfg.Physics.MaxFrameMs
	}
	s.step(elapsedMs / nominalFrameMs)
}

// step runs one simulation step scaled to the given fraction of a nominal
// frame: integrate the bird, scroll the field, score cleared obstacles,
// recycle and spawn, then check for collisions.
func (s *Sim) step(scale float64) {
	s.bird.Vel += s.cfg.Physics.Gravity * scale
	if s.bird.Vel > s.cfg.Physics.MaxFallSpeed {
		s.bird.Vel = s.cfg.Physics.MaxFallSpeed
	}
	s.bird.Y += s.bird.Vel * scale
	s.bird.Rotation = core.ClampF(
		s.bird.Vel*s.cfg.Bird.RotationGain,
		s.cfg.Bird.MinRotation,
		s.cfg.Bird.MaxRotation,
	)

	s.obstacles.Advance(s.cfg.Physics.ScrollSpeed * scale)
	s.scorePassed()
	s.obstacles.Trim()
	s.obstacles.SpawnIfNeeded()

	if s.collides() {
		s.phase = PhaseEnded
	}
}

// flap kicks the bird upward by setting its velocity to the configured
// flap strength.
func (s *Sim) flap() {
	s.bird.Vel = s.cfg.Physics.FlapStrength
}

// scorePassed awards a point for every obstacle whose trailing edge has
// scrolled past the bird center this step. Passed latches so each obstacle
// scores exactly once no matter how often it is re-examined.
func (s *Sim) scorePassed() {
	obs := s.obstacles.Obstacles()
	for i := range obs {
		if obs[i].Passed {
			continue
		}
		if obs[i].X+s.cfg.Obstacles.Width < s.bird.X {
			obs[i].Passed = true
			s.score++
			s.recordHighScore()
		}
	}
}

// recordHighScore promotes the current score to the high score when it has
// been beaten, persists it, and raises the new-high flag for the round.
// Persistence is best-effort: a failed save is dropped and the next new
// high score tries again.
func (s *Sim) recordHighScore() {
	if s.score <= s.highScore {
		return
	}
	s.highScore = s.score
	s.newHigh = true
	if s.store != nil {
		//nolint:errcheck // Best-effort save, the round continues regardless
		s.store.Save(s.highScore)
	}
}

// collides reports whether the bird hit the ground, the top of the world,
// or a pipe.
func (s *Sim) collides() bool {
	hitbox := s.bird.Hitbox(s.cfg.Bird)
	if hitbox.Bottom() > s.cfg.GroundY() || hitbox.Y < 0 {
		return true
	}
	return s.obstacles.Collides(hitbox)
}

// placeBird puts the bird at its start position, mid-height at the
// configured horizontal ratio, falling from rest.
func (s *Sim) placeBird() {
	s.bird = Bird{
		X: s.cfg.BirdX(),
		Y: s.cfg.World.Height / 2,
	}
}

// resetRound prepares the next round after a game over: fresh bird, empty
// field, zero score. The high score and the RNG stream carry over.
func (s *Sim) resetRound() {
	s.placeBird()
	s.obstacles.Reset()
	s.score = 0
	s.newHigh = false
	s.phase = PhaseReady
}

// RenderState captures the current world for rendering or persistence
// decisions. The snapshot does not alias simulation state.
func (s *Sim) RenderState() RenderState {
	obs := s.obstacles.Obstacles()
	snapshot := make([]Obstacle, len(obs))
	copy(snapshot, obs)
	return RenderState{
		Bird:         s.bird,
		Obstacles:    snapshot,
		Phase:        s.phase,
		Score:        s.score,
		HighScore:    s.highScore,
		NewHighScore: s.newHigh,
	}
}
