package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flaptty/internal/config"
	"flaptty/internal/sim"
	"flaptty/internal/storage"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	updated, _ := m.Update(keyMsg(key))
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update should return a Model, got %T", updated)
	}
	return next
}

func frame(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	updated, _ := m.Update(FrameMsg(at))
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update should return a Model, got %T", updated)
	}
	return next
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"quit on q", keyMsg("q"), ActionQuit},
		{"quit on ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"flap on space", tea.KeyMsg{Type: tea.KeySpace}, ActionPrimary},
		{"flap on up", tea.KeyMsg{Type: tea.KeyUp}, ActionPrimary},
		{"flap on w", keyMsg("w"), ActionPrimary},
		{"flap on enter", tea.KeyMsg{Type: tea.KeyEnter}, ActionPrimary},
		{"restart on r", keyMsg("r"), ActionPrimary},
		{"pause on p", keyMsg("p"), ActionPause},
		{"pause on esc", tea.KeyMsg{Type: tea.KeyEsc}, ActionPause},
		{"screenshot on ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, ActionScreenshot},
		{"ignore other keys", keyMsg("x"), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestResizeKeepsRoundRunning(t *testing.T) {
	m := NewModel(config.Default(), Options{Width: 80, Height: 24, FPS: 60, Seed: 1}, nil)
	m = press(t, m, " ")
	m = press(t, m, " ")

	t0 := time.Now()
	m = frame(t, m, t0)
	m = frame(t, m, t0.Add(16*time.Millisecond))
	before := m.sim.RenderState()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	after := m.sim.RenderState()
	if after.Phase != sim.PhaseActive {
		t.Errorf("resize should not end or reset the round, phase = %v", after.Phase)
	}
	if after.Bird != before.Bird {
		t.Errorf("resize should not move the bird: %+v != %+v", after.Bird, before.Bird)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen should track the terminal size, got %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestMouseClickIsPrimaryInput(t *testing.T) {
	m := NewModel(config.Default(), Options{Width: 80, Height: 24, Seed: 1}, nil)

	updated, _ := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = updated.(Model)

	if got := m.sim.RenderState().Phase; got != sim.PhaseReady {
		t.Errorf("left click should advance the splash screen, phase = %v", got)
	}

	// Motion and release events are not inputs
	updated, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionMotion})
	m = updated.(Model)
	if got := m.sim.RenderState().Phase; got != sim.PhaseReady {
		t.Errorf("mouse motion should not count as input, phase = %v", got)
	}
}

func TestPauseOnlyDuringActiveRound(t *testing.T) {
	m := NewModel(config.Default(), Options{Width: 80, Height: 24, Seed: 1}, nil)

	m = press(t, m, "p")
	if m.paused {
		t.Error("pause should be ignored on the splash screen")
	}

	m = press(t, m, " ")
	m = press(t, m, "p")
	if m.paused {
		t.Error("pause should be ignored in the ready phase")
	}
}

func TestPauseFreezesFrames(t *testing.T) {
	m := NewModel(config.Default(), Options{Width: 80, Height: 24, FPS: 60, Seed: 1}, nil)
	m = press(t, m, " ")
	m = press(t, m, " ")

	t0 := time.Now()
	m = frame(t, m, t0)
	m = frame(t, m, t0.Add(16*time.Millisecond))
	before := m.sim.RenderState().Bird
	if before.Vel == 0 {
		t.Fatal("active round should be under gravity")
	}

	m = press(t, m, "p")
	if !m.paused {
		t.Fatal("p should pause an active round")
	}

	m = frame(t, m, t0.Add(500*time.Millisecond))
	if got := m.sim.RenderState().Bird; got != before {
		t.Errorf("paused frame should not advance the world: %+v != %+v", got, before)
	}

	m = press(t, m, "p")
	m = frame(t, m, t0.Add(516*time.Millisecond))
	after := m.sim.RenderState().Bird
	if after == before {
		t.Error("resumed frame should advance the world again")
	}
	// Only the 16ms since resume may be applied, never the pause itself.
	if after.Y-before.Y > 5 {
		t.Errorf("resume applied the paused time as one step, bird moved %.1f", after.Y-before.Y)
	}
}

func TestPrimaryIgnoredWhilePaused(t *testing.T) {
	m := NewModel(config.Default(), Options{Width: 80, Height: 24, Seed: 1}, nil)
	m = press(t, m, " ")
	m = press(t, m, " ")

	t0 := time.Now()
	m = frame(t, m, t0)
	m = frame(t, m, t0.Add(16*time.Millisecond))
	m = press(t, m, "p")

	before := m.sim.RenderState().Bird.Vel
	m = press(t, m, " ")
	if got := m.sim.RenderState().Bird.Vel; got != before {
		t.Errorf("flap should be ignored while paused, velocity %.2f -> %.2f", before, got)
	}
}

func TestZeroScoreRoundNotRecorded(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	m := NewModel(config.Default(), Options{Width: 80, Height: 24, Seed: 1}, store)
	m = press(t, m, " ")
	m = press(t, m, " ")

	now := time.Now()
	m = frame(t, m, now)
	for i := 0; i < 200 && m.sim.RenderState().Phase != sim.PhaseEnded; i++ {
		now = now.Add(17 * time.Millisecond)
		m = frame(t, m, now)
	}
	if m.sim.RenderState().Phase != sim.PhaseEnded {
		t.Fatal("bird should fall to the ground without input")
	}
	if !m.roundSaved {
		t.Error("ended round should be marked as handled")
	}

	rounds, err := store.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("a zero-score round should not be recorded, got %d rounds", len(rounds))
	}
}

func TestViewRendersSplash(t *testing.T) {
	m := NewModel(config.Default(), Options{Width: 80, Height: 24, Seed: 1}, nil)

	if !strings.Contains(m.View(), "F L A P T T Y") {
		t.Error("initial view should show the splash screen")
	}

	m = press(t, m, "q")
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}
