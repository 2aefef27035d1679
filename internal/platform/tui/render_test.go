package tui

import (
	"strings"
	"testing"

	"flaptty/internal/config"
	"flaptty/internal/core"
	"flaptty/internal/sim"
)

const frameMs = 1000.0 / 60.0

func TestViewportProjection(t *testing.T) {
	cfg := config.Default()
	screen := core.NewScreen(100, 30)
	v := newViewport(screen, cfg)

	if got := v.x(0); got != 0 {
		t.Errorf("left world edge should project to column 0, got %d", got)
	}
	if got := v.x(cfg.World.Width / 2); got != 50 {
		t.Errorf("world midpoint should project to the middle column, got %d", got)
	}
	if got := v.y(cfg.World.Height / 2); got != 15 {
		t.Errorf("world midpoint should project to the middle row, got %d", got)
	}
}

func TestDrawWorldHasContent(t *testing.T) {
	cfg := config.Default()
	s := sim.New(cfg, 1, nil)
	screen := core.NewScreen(80, 24)

	drawWorld(screen, cfg, s.RenderState(), false, 0)

	// Check that screen has content (not all spaces)
	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("drawWorld should draw something to the screen")
	}

	// Check that ground is drawn at the projected ground row
	v := newViewport(screen, cfg)
	groundRow := v.y(cfg.GroundY())
	if screen.Get(0, groundRow) != '=' {
		t.Errorf("ground should be drawn at row %d, got %q", groundRow, screen.Get(0, groundRow))
	}
}

func TestDrawWorldShowsHUD(t *testing.T) {
	cfg := config.Default()
	s := sim.New(cfg, 1, nil)
	screen := core.NewScreen(80, 24)

	drawWorld(screen, cfg, s.RenderState(), false, 0)

	hud := screen.Row(0)
	if !strings.Contains(hud, "SCORE 0") {
		t.Errorf("HUD should show the score, got %q", hud)
	}
	if !strings.Contains(hud, "BEST") {
		t.Errorf("HUD should show the best score, got %q", hud)
	}
}

func TestPhaseOverlays(t *testing.T) {
	cfg := config.Default()
	s := sim.New(cfg, 1, nil)
	screen := core.NewScreen(80, 24)

	drawWorld(screen, cfg, s.RenderState(), false, 0)
	if !strings.Contains(screen.String(), "F L A P T T Y") {
		t.Error("splash overlay should show the title")
	}

	s.PrimaryInput()
	drawWorld(screen, cfg, s.RenderState(), false, 0)
	if !strings.Contains(screen.String(), "GET READY") {
		t.Error("ready overlay should show after the splash")
	}

	s.PrimaryInput()
	drawWorld(screen, cfg, s.RenderState(), true, 0)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused badge should show over an active round")
	}
}

func TestSplashPromptPulses(t *testing.T) {
	cfg := config.Default()
	s := sim.New(cfg, 1, nil)
	screen := core.NewScreen(80, 24)

	drawWorld(screen, cfg, s.RenderState(), false, 0)
	if !strings.Contains(screen.String(), "press space to start") {
		t.Error("start prompt should be visible on the even pulse")
	}

	drawWorld(screen, cfg, s.RenderState(), false, 30)
	if strings.Contains(screen.String(), "press space to start") {
		t.Error("start prompt should be hidden on the odd pulse")
	}
}

func TestGameOverOverlay(t *testing.T) {
	cfg := config.Default()
	s := sim.New(cfg, 1, nil)
	screen := core.NewScreen(80, 24)

	s.PrimaryInput()
	s.PrimaryInput()
	for i := 0; i < 200 && s.RenderState().Phase != sim.PhaseEnded; i++ {
		s.Update(frameMs)
	}
	state := s.RenderState()
	if state.Phase != sim.PhaseEnded {
		t.Fatal("bird should fall to the ground without input")
	}

	drawWorld(screen, cfg, state, false, 0)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("ended round should show the game over panel")
	}
	if !strings.Contains(out, "space to retry") {
		t.Error("game over panel should show the retry hint")
	}
}

func TestRenderScreenLineCount(t *testing.T) {
	cfg := config.Default()
	s := sim.New(cfg, 1, nil)
	screen := core.NewScreen(40, 12)

	drawWorld(screen, cfg, s.RenderState(), false, 0)
	out := RenderScreen(screen)

	if lines := strings.Split(out, "\n"); len(lines) != screen.Height() {
		t.Errorf("rendered output should have %d lines, got %d", screen.Height(), len(lines))
	}
}
