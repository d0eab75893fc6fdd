package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	game := brickbreaker.New(config.DefaultBrickBreakerConfig())
	m := NewModel(game, Options{Runtime: core.DefaultConfig()})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should schedule the first frame")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// pendingFrame returns the id of the only scheduled frame.
func pendingFrame(t *testing.T, m Model) brickbreaker.FrameID {
	t.Helper()
	id := m.Arena().Pending()
	if id == 0 {
		t.Fatal("no frame scheduled")
	}
	return id
}

func TestModelInitMountsArena(t *testing.T) {
	m := newTestModel(t)

	if !m.Arena().Mounted() {
		t.Error("arena should be mounted after Init")
	}
	if m.sched.Pending() != 1 {
		t.Errorf("pending frames = %d, expected 1", m.sched.Pending())
	}
	if m.canvas.Screen().Width() != 53 || m.canvas.Screen().Height() != 16 {
		t.Errorf("canvas = %dx%d, expected 53x16", m.canvas.Screen().Width(), m.canvas.Screen().Height())
	}
}

func TestModelFrameMessage(t *testing.T) {
	m := newTestModel(t)
	id := pendingFrame(t, m)

	m, cmd := update(t, m, FrameMsg{ID: id})
	if m.Arena().Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", m.Arena().Frames())
	}
	if cmd == nil {
		t.Error("frame should schedule the next one")
	}
	if m.Arena().Pending() == id {
		t.Error("next frame should have a new id")
	}

	// Replaying the old id is a stale frame.
	m, cmd = update(t, m, FrameMsg{ID: id})
	if m.Arena().Frames() != 1 {
		t.Errorf("stale frame ran, Frames() = %d", m.Arena().Frames())
	}
	if cmd != nil {
		t.Error("stale frame should not schedule anything")
	}
}

func TestModelAnyKeyTogglesPause(t *testing.T) {
	m := newTestModel(t)
	id := pendingFrame(t, m)

	m, _ = update(t, m, runeKey('p'))
	if m.Arena().Game().Phase() != brickbreaker.PhasePaused {
		t.Fatalf("phase = %s, expected paused", m.Arena().Game().Phase())
	}

	if row := m.canvas.Screen().Row(8); !strings.Contains(row, " PAUSED ") {
		t.Errorf("paused arena should show a banner, middle row = %q", row)
	}

	// The frame requested before pausing arrives but must not run.
	m, _ = update(t, m, FrameMsg{ID: id})
	if m.Arena().Frames() != 0 {
		t.Errorf("cancelled frame ran, Frames() = %d", m.Arena().Frames())
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Arena().Game().Phase() != brickbreaker.PhaseRunning {
		t.Errorf("phase = %s, expected running", m.Arena().Game().Phase())
	}
	if cmd == nil {
		t.Error("resuming should schedule a frame")
	}
}

func TestModelReloadKey(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, FrameMsg{ID: pendingFrame(t, m)})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	want := brickbreaker.Ball{X: 200, Y: 150, DX: 0.4, DY: -1, Radius: 10}
	if got := m.Arena().Game().Ball(); got != want {
		t.Errorf("ball after reload = %+v, expected %+v", got, want)
	}
	if m.Arena().Game().Phase() != brickbreaker.PhaseRunning {
		t.Errorf("phase = %s, expected running", m.Arena().Game().Phase())
	}
	if m.sched.Pending() != 1 {
		t.Errorf("pending frames = %d, expected 1", m.sched.Pending())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.Arena().Mounted() {
		t.Error("arena should be unmounted on quit")
	}
	if m.sched.Pending() != 0 {
		t.Error("quit should cancel the pending frame")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelPointerMovesPaddle(t *testing.T) {
	m := newTestModel(t)

	// Column 26 of 53 is centered on x = 250.
	m, _ = update(t, m, tea.MouseMsg{X: arenaLeft + 26, Y: 5, Action: tea.MouseActionMotion})

	if got := m.Arena().Game().PointerX(); math.Abs(got-250) > 1e-9 {
		t.Errorf("PointerX() = %v, expected 250", got)
	}
	if got := m.Arena().Game().Paddle().X; math.Abs(got-212.5) > 1e-9 {
		t.Errorf("paddle X = %v, expected 212.5", got)
	}
}

func TestModelButtons(t *testing.T) {
	m := newTestModel(t)
	top := m.layout.buttonsTop

	m, _ = update(t, m, leftClick(16, top+1))
	if m.Arena().Game().Phase() != brickbreaker.PhasePaused {
		t.Fatalf("phase = %s, expected paused after pause click", m.Arena().Game().Phase())
	}

	m, _ = update(t, m, tea.MouseMsg{X: 16, Y: top + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if m.Arena().Game().Phase() != brickbreaker.PhasePaused {
		t.Error("right click should be ignored")
	}

	m, _ = update(t, m, leftClick(2, top))
	if m.Arena().Game().Phase() != brickbreaker.PhaseRunning {
		t.Errorf("phase = %s, expected running after play again", m.Arena().Game().Phase())
	}
	if m.sched.Pending() != 1 {
		t.Errorf("pending frames = %d, expected 1", m.sched.Pending())
	}
}

func TestModelGameOverAndPlayAgain(t *testing.T) {
	m := newTestModel(t)
	game := m.Arena().Game()

	snap := game.Snapshot()
	snap.PointerX = 0
	snap.BallX, snap.BallY = 250, 289
	snap.BallDX, snap.BallDY = 0, 1
	game.ApplySnapshot(snap)

	m, cmd := update(t, m, FrameMsg{ID: pendingFrame(t, m)})
	if game.Phase() != brickbreaker.PhaseGameOver {
		t.Fatalf("phase = %s, expected gameover", game.Phase())
	}
	if cmd != nil || m.sched.Pending() != 0 {
		t.Error("no frame should be scheduled after game over")
	}
	if view := m.View(); !strings.Contains(view, "Game Over") {
		t.Error("view should show the game over indicator")
	}

	// Neither keys nor the pause button leave game over.
	m, _ = update(t, m, runeKey('x'))
	m, _ = update(t, m, leftClick(16, m.layout.buttonsTop))
	if game.Phase() != brickbreaker.PhaseGameOver {
		t.Fatalf("phase = %s, expected gameover", game.Phase())
	}

	m, cmd = update(t, m, leftClick(0, m.layout.buttonsTop))
	if game.Phase() != brickbreaker.PhaseRunning {
		t.Errorf("phase = %s, expected running after play again", game.Phase())
	}
	if cmd == nil {
		t.Error("play again should restart the frame loop")
	}
	if game.Score() != 0 {
		t.Errorf("score = %d after play again", game.Score())
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	ball := m.Arena().Game().Ball()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 60})

	if m.canvas.Screen().Width() != 100 || m.canvas.Screen().Height() != 30 {
		t.Errorf("canvas = %dx%d, expected 100x30", m.canvas.Screen().Width(), m.canvas.Screen().Height())
	}
	if m.layout.buttonsTop != 33 {
		t.Errorf("buttonsTop = %d, expected 33", m.layout.buttonsTop)
	}
	if m.Arena().Game().Ball() != ball {
		t.Error("resize should not advance the game")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	for _, want := range []string{"Score: 0", "Play again", "Pause", hintText} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !strings.Contains(view, string(pixelGlyph)) {
		t.Error("view should contain the drawn arena")
	}
}
