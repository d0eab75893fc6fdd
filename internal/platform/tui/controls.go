package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

// Screen layout, top to bottom: arena border, arena cells, arena border,
// status line, button row (three lines with borders), hint, help.
const (
	arenaLeft    = 1 // first arena column, after the left border
	chromeCols   = 2
	chromeRows   = 8
	minCols      = 20
	minRows      = 6
	maxCols      = 100
	cellAspect   = 0.5 // terminal cells are about twice as tall as wide
	buttonHeight = 3
	buttonGap    = 1
)

const (
	reloadLabel = "Play again"
	pauseLabel  = "Pause"
	resumeLabel = "Resume"
	hintText    = "Mouse moves platform • Press any key to pause"
)

// layout is the terminal geometry derived from the window size.
type layout struct {
	cols       int // arena width in cells
	rows       int // arena height in cells
	buttonsTop int // first terminal row of the button bar
}

// computeLayout fits the arena into the terminal, keeping its aspect ratio.
func computeLayout(termW, termH int, arenaW, arenaH float64) layout {
	ratio := arenaH / arenaW * cellAspect

	cols := core.Min(termW-chromeCols, maxCols)
	rows := int(math.Round(float64(cols) * ratio))
	if avail := termH - chromeRows; rows > avail {
		rows = avail
		cols = int(math.Round(float64(rows) / ratio))
	}
	cols = core.Max(cols, minCols)
	rows = core.Max(rows, minRows)

	return layout{
		cols:       cols,
		rows:       rows,
		buttonsTop: rows + 3,
	}
}

// button identifies a clickable control.
type button int

const (
	buttonNone button = iota
	buttonReload
	buttonToggle
)

// toggleLabel returns the pause button text for the given phase.
func toggleLabel(phase brickbreaker.Phase) string {
	if phase == brickbreaker.PhasePaused {
		return resumeLabel
	}
	return pauseLabel
}

// renderButtons draws the button bar. The button that gets the player
// moving again is highlighted.
func renderButtons(theme Theme, phase brickbreaker.Phase) string {
	reload, toggle := theme.Button, theme.Button
	switch phase {
	case brickbreaker.PhaseGameOver:
		reload = theme.ButtonActive
	case brickbreaker.PhasePaused:
		toggle = theme.ButtonActive
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		reload.Render(reloadLabel),
		strings.Repeat(" ", buttonGap),
		toggle.Render(toggleLabel(phase)),
	)
}

// buttonAt hit-tests a terminal position against the button bar.
func buttonAt(theme Theme, lay layout, phase brickbreaker.Phase, x, y int) button {
	reloadW := lipgloss.Width(theme.Button.Render(reloadLabel))
	toggleW := lipgloss.Width(theme.Button.Render(toggleLabel(phase)))

	reload := core.NewRect(0, lay.buttonsTop, reloadW, buttonHeight)
	toggle := core.NewRect(reload.Right()+buttonGap, lay.buttonsTop, toggleW, buttonHeight)

	switch {
	case reload.Contains(x, y):
		return buttonReload
	case toggle.Contains(x, y):
		return buttonToggle
	}
	return buttonNone
}

// renderStatus draws the score and the game over indicator.
func renderStatus(theme Theme, state core.GameState) string {
	status := theme.Score.Render(fmt.Sprintf("Score: %d", state.Score))
	if state.GameOver {
		status += "  " + theme.GameOver.Render("Game Over")
	}
	return status
}

// bannerText returns the text shown over a stopped arena.
func bannerText(phase brickbreaker.Phase) string {
	switch phase {
	case brickbreaker.PhasePaused:
		return "PAUSED"
	case brickbreaker.PhaseGameOver:
		return "GAME OVER"
	}
	return ""
}

// drawBanner writes text on a blank band across the middle of the screen.
// The next frame or redraw paints over it.
func drawBanner(s *core.Screen, text string) {
	w := utf8.RuneCountInString(text) + 2
	band := core.NewRect((s.Width()-w)/2, s.Height()/2, w, 1)
	s.DrawRect(band, ' ', core.ColorDefault)
	s.DrawText(band.X+1, band.Y, text, core.ColorWhite)
}
