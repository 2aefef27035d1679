package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flaptty/internal/config"
	"flaptty/internal/core"
	"flaptty/internal/sim"
)

// viewport projects fixed world coordinates onto the current terminal
// size. Each axis scales independently; the simulation never sees cells.
type viewport struct {
	scaleX, scaleY float64
}

func newViewport(s *core.Screen, cfg config.GameConfig) viewport {
	return viewport{
		scaleX: float64(s.Width()) / cfg.World.Width,
		scaleY: float64(s.Height()) / cfg.World.Height,
	}
}

func (v viewport) x(wx float64) int { return int(wx * v.scaleX) }
func (v viewport) y(wy float64) int { return int(wy * v.scaleY) }

// drawWorld renders a simulation snapshot onto the screen buffer.
// frames is the platform's frame counter, used only for cosmetic pulses;
// simulation state never depends on it.
func drawWorld(s *core.Screen, cfg config.GameConfig, state sim.RenderState, paused bool, frames int) {
	s.Clear()
	if s.Width() <= 0 || s.Height() <= 0 {
		return
	}

	v := newViewport(s, cfg)
	groundRow := v.y(cfg.GroundY())

	s.DrawHLine(0, groundRow, s.Width(), '=', core.ColorGray)
	for y := groundRow + 1; y < s.Height(); y++ {
		s.DrawHLine(0, y, s.Width(), '░', core.ColorGray)
	}

	for _, o := range state.Obstacles {
		drawObstacle(s, v, o, cfg, groundRow)
	}

	drawBird(s, v, cfg.Bird, state.Bird)

	s.DrawTextColored(1, 0, fmt.Sprintf("SCORE %d", state.Score), core.ColorBrightWhite)
	best := fmt.Sprintf("BEST %d", state.HighScore)
	s.DrawTextColored(s.Width()-len(best)-1, 0, best, core.ColorYellow)

	switch state.Phase {
	case sim.PhaseSplash:
		drawSplash(s, frames)
	case sim.PhaseReady:
		drawReady(s)
	case sim.PhaseEnded:
		drawGameOver(s, state)
	}

	if paused {
		s.DrawTextCentered(s.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}
}

// drawObstacle fills the pipe pair above and below the gap.
func drawObstacle(s *core.Screen, v viewport, o sim.Obstacle, cfg config.GameConfig, groundRow int) {
	left := v.x(o.X)
	width := v.x(o.X+cfg.Obstacles.Width) - left
	if width < 1 {
		width = 1
	}

	gapTop := v.y(o.GapTop)
	gapBottom := v.y(o.GapTop + cfg.Obstacles.Gap)

	s.FillRect(left, 0, width, gapTop, '█', core.ColorGreen)
	s.FillRect(left, gapBottom, width, groundRow-gapBottom, '█', core.ColorGreen)

	// Gap-facing cap rows
	if gapTop > 0 {
		s.DrawHLine(left, gapTop-1, width, '█', core.ColorBrightGreen)
	}
	if gapBottom < groundRow {
		s.DrawHLine(left, gapBottom, width, '█', core.ColorBrightGreen)
	}
}

// drawBird fills the bird's projected sprite rectangle with a head glyph
// that follows the pitch: climbing, level, or diving.
func drawBird(s *core.Screen, v viewport, cfg config.BirdConfig, b sim.Bird) {
	left := v.x(b.X - cfg.Width/2)
	top := v.y(b.Y - cfg.Height/2)
	width := v.x(b.X+cfg.Width/2) - left
	height := v.y(b.Y+cfg.Height/2) - top
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	s.FillRect(left, top, width, height, '▓', core.ColorBrightYellow)

	head := '@'
	switch {
	case b.Rotation <= -15:
		head = '^'
	case b.Rotation >= 60:
		head = 'v'
	}
	s.SetCell(left+width-1, top+height/2, head, core.ColorBrightYellow)
}

// drawSplash renders the title card. The start prompt pulses on a
// half-second cadence at 60 FPS.
func drawSplash(s *core.Screen, frames int) {
	cy := s.Height() / 2
	s.DrawTextCentered(cy-2, "F L A P T T Y", core.ColorBrightYellow)
	s.DrawTextCentered(cy, "a terminal flappy bird", core.ColorGray)
	if frames/30%2 == 0 {
		s.DrawTextCentered(cy+2, "press space to start", core.ColorWhite)
	}
}

func drawReady(s *core.Screen) {
	cy := s.Height() / 3
	s.DrawTextCentered(cy, "GET READY", core.ColorBrightCyan)
	s.DrawTextCentered(cy+1, "space to flap / p to pause / q to quit", core.ColorGray)
}

// drawGameOver renders the end-of-round panel over the frozen world.
func drawGameOver(s *core.Screen, state sim.RenderState) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("score %d   best %d", state.Score, state.HighScore),
	}
	if state.NewHighScore {
		lines = append(lines, "NEW BEST!")
	}
	lines = append(lines, "space to retry / q to quit")

	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	width += 6
	height := len(lines) + 4

	x := (s.Width() - width) / 2
	y := s.Height()/2 - height/2

	s.FillRect(x+1, y+1, width-2, height-2, ' ', core.ColorDefault)
	s.DrawBox(x, y, width, height, core.ColorWhite)

	for i, l := range lines {
		c := core.ColorWhite
		if l == "NEW BEST!" {
			c = core.ColorBrightYellow
		}
		s.DrawTextCentered(y+2+i, l, c)
	}
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
