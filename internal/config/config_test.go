package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultLeavesRoomForGap(t *testing.T) {
	cfg := Default()

	// The random gap placement range [min_margin, H-ground-gap-min_margin]
	// must be non-empty, or spawning degenerates.
	low := cfg.Obstacles.MinMargin
	high := cfg.World.Height - cfg.World.GroundOffset - cfg.Obstacles.Gap - cfg.Obstacles.MinMargin
	if high <= low {
		t.Fatalf("gap placement range [%v, %v] is empty", low, high)
	}

	if cfg.GroundY() != cfg.World.Height-cfg.World.GroundOffset {
		t.Errorf("GroundY() = %v, expected %v", cfg.GroundY(), cfg.World.Height-cfg.World.GroundOffset)
	}
	if cfg.BirdX() <= 0 || cfg.BirdX() >= cfg.World.Width {
		t.Errorf("BirdX() = %v, expected inside (0, %v)", cfg.BirdX(), cfg.World.Width)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML GameConfig
	if err := yaml.Unmarshal(defaultYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if fromYAML != Default() {
		t.Errorf("embedded default %+v diverged from Default() %+v", fromYAML, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	data := []byte("world:\n  width: 800\n  height: 600\n  ground_offset: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.World.Width != 800 {
		t.Errorf("World.Width = %v, expected 800", cfg.World.Width)
	}

	// A missing explicit path is an error, unlike the implicit search path.
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}
