// Package tui provides the Bubble Tea integration: the terminal UI loop,
// input mapping, rendering of simulation snapshots, the scoreboard, and
// SSH serving via Wish.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flaptty/internal/config"
	"flaptty/internal/core"
	"flaptty/internal/sim"
	"flaptty/internal/storage"
)

// Options configures a game session.
type Options struct {
	// Width and Height are the terminal size in cells.
	Width  int
	Height int

	// FPS is the frame rate to drive rendering at. The simulation does
	// not depend on it; frames just arrive more or less often.
	FPS int

	// Seed fixes the obstacle sequence. 0 means seed from the clock.
	Seed int64
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	sim        *sim.Sim
	screen     *core.Screen
	store      *storage.Store
	cfg        config.GameConfig
	fps        int
	frames     int
	lastFrame  time.Time
	roundStart time.Time
	paused     bool
	roundSaved bool
	quitting   bool
}

// NewModel creates a session model. store may be nil; the game then runs
// without any persistence.
func NewModel(cfg config.GameConfig, opts Options, store *storage.Store) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	var scores sim.ScoreStore
	if store != nil {
		scores = storage.NewHighScores(store, nil)
	}

	return Model{
		sim:    sim.New(cfg, opts.Seed, scores),
		screen: core.NewScreen(opts.Width, opts.Height),
		store:  store,
		cfg:    cfg,
		fps:    opts.FPS,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(MapKey(msg))

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.handleAction(ActionPrimary)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The simulation runs on a fixed world canvas; a resize only
		// changes the projection, mid-round play survives it.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleAction applies a platform action.
func (m Model) handleAction(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionScreenshot:
		m.saveScreenshot()

	case ActionPause:
		if m.sim.RenderState().Phase == sim.PhaseActive {
			m.paused = !m.paused
		}

	case ActionPrimary:
		if m.paused {
			return m, nil
		}
		before := m.sim.RenderState().Phase
		m.sim.PrimaryInput()
		if before == sim.PhaseReady {
			m.roundStart = time.Now()
			m.roundSaved = false
		}
	}

	return m, nil
}

// handleFrame advances the simulation by the real time since the last
// frame. While paused the clock keeps being sampled but no time is
// applied, so resuming never delivers the pause as one giant step.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed float64
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame).Seconds() * 1000
	}
	m.lastFrame = now
	m.frames++

	if !m.paused {
		m.sim.Update(elapsed)

		state := m.sim.RenderState()
		if state.Phase == sim.PhaseEnded && !m.roundSaved {
			if m.store != nil && state.Score > 0 {
				//nolint:errcheck // Best-effort save, the session continues regardless
				m.store.SaveRound(state.Score, now.Sub(m.roundStart))
			}
			m.roundSaved = true
		}
	}

	return m, frameCmd(m.fps)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	drawWorld(m.screen, m.cfg, m.sim.RenderState(), m.paused, m.frames)

	dir := filepath.Join(os.Getenv("HOME"), ".flaptty", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("flaptty_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawWorld(m.screen, m.cfg, m.sim.RenderState(), m.paused, m.frames)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local game session.
func Run(cfg config.GameConfig, opts Options, store *storage.Store) error {
	p := tea.NewProgram(
		NewModel(cfg, opts, store),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Click to flap
	)

	_, err := p.Run()
	return err
}
