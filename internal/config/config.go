// Package config provides YAML-based tuning for the simulation.
// All values are in world units (abstract pixels on a fixed virtual
// canvas); the renderer projects them onto whatever terminal it gets.
package config

// GameConfig contains all tuning for a round.
type GameConfig struct {
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Bird      BirdConfig     `yaml:"bird"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
}

// WorldConfig defines the virtual canvas the simulation runs on.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Height of the ground strip at the bottom
}

// PhysicsConfig defines per-nominal-frame physics parameters.
// A nominal frame is 1000/60 ms; the simulation scales every delta by
// elapsed/nominal so the values below hold at any real frame rate.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration per frame
	FlapStrength float64 `yaml:"flap_strength"`  // Velocity set on flap (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
	ScrollSpeed  float64 `yaml:"scroll_speed"`   // How fast obstacles move left per frame
	MaxFrameMs   float64 `yaml:"max_frame_ms"`   // Elapsed-time clamp for suspended frames
}

// BirdConfig defines the bird's extent, anchor, and cosmetic rotation.
type BirdConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	XRatio       float64 `yaml:"x_ratio"`       // Fixed horizontal anchor as a fraction of world width
	HitboxInset  float64 `yaml:"hitbox_inset"`  // Collision box shrink on all sides, for fairness
	RotationGain float64 `yaml:"rotation_gain"` // Degrees of tilt per unit of vertical velocity
	MinRotation  float64 `yaml:"min_rotation"`  // Steepest upward tilt, degrees
	MaxRotation  float64 `yaml:"max_rotation"`  // Steepest downward tilt, degrees
}

// ObstacleConfig defines pipe geometry and spawn cadence.
type ObstacleConfig struct {
	Width           float64 `yaml:"width"`
	Gap             float64 `yaml:"gap"`               // Vertical opening the bird flies through
	Spacing         float64 `yaml:"spacing"`           // Horizontal distance between consecutive spawns
	MinMargin       float64 `yaml:"min_margin"`        // Minimum solid pipe above and below the gap
	FirstSpawnRatio float64 `yaml:"first_spawn_ratio"` // First pipe of a round spawns at this fraction of world width
}

// GroundY returns the y-coordinate of the ground line.
func (c GameConfig) GroundY() float64 {
	return c.World.Height - c.World.GroundOffset
}

// BirdX returns the bird's fixed horizontal center for this world.
func (c GameConfig) BirdX() float64 {
	return c.World.Width * c.Bird.XRatio
}
