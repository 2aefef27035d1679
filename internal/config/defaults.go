package config

import (
	_ "embed"
)

//go:embed defaults/flaptty.yaml
var defaultYAML []byte

// Default returns the built-in tuning: a 400x600 world with physics that
// matches the classic feel at 60 frames per second.
func Default() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:        400,
			Height:       600,
			GroundOffset: 80,
		},
		Physics: PhysicsConfig{
			Gravity:      0.45,
			FlapStrength: -7.5,
			MaxFallSpeed: 12.0,
			ScrollSpeed:  2.0,
			MaxFrameMs:   100,
		},
		Bird: BirdConfig{
			Width:        34,
			Height:       24,
			XRatio:       0.25,
			HitboxInset:  2,
			RotationGain: 6.0,
			MinRotation:  -28,
			MaxRotation:  90,
		},
		Obstacles: ObstacleConfig{
			Width:           52,
			Gap:             140,
			Spacing:         220,
			MinMargin:       40,
			FirstSpawnRatio: 0.65,
		},
	}
}

