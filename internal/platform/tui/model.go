package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

// Options configures the terminal host.
type Options struct {
	Runtime    core.RuntimeConfig
	Monochrome bool
	Logger     *log.Logger // nil discards
}

// Model is the Bubble Tea model hosting a Brick Breaker arena.
type Model struct {
	arena    *brickbreaker.Arena
	sched    *FrameScheduler
	canvas   *CellCanvas
	keys     KeyMap
	help     help.Model
	theme    Theme
	config   core.RuntimeConfig
	layout   layout
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for the given game. The arena is mounted in Init.
func NewModel(game *brickbreaker.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	theme := DefaultTheme()
	if opts.Monochrome {
		theme = MonochromeTheme()
	}

	sched := NewFrameScheduler(opts.Runtime.TickRate)
	arenaW, arenaH := game.ArenaSize()
	lay := computeLayout(opts.Runtime.ScreenW, opts.Runtime.ScreenH, arenaW, arenaH)

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		arena:  brickbreaker.NewArena(game, sched, logger),
		sched:  sched,
		canvas: NewCellCanvas(lay.cols, lay.rows, arenaW, arenaH),
		keys:   DefaultKeyMap(),
		help:   h,
		theme:  theme,
		config: opts.Runtime,
		layout: lay,
		logger: logger,
	}
}

// Init mounts the arena, which starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.arena.Mount(m.canvas)
	return m.sched.Flush()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		if !m.sched.Fire(msg.ID) {
			m.logger.Debug("stale frame dropped", "id", msg.ID)
		}
		m.drawOverlay()
		return m, m.sched.Flush()
	}

	return m, nil
}

// handleKey processes keyboard input. Keys without a host binding go to
// the arena.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.arena.Unmount()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reload):
		m.arena.Reload()
	default:
		m.arena.OnKeyDown()
	}
	m.drawOverlay()
	return m, m.sched.Flush()
}

// handleMouse moves the paddle and presses buttons.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.arena.OnPointerMove(m.canvas.ArenaX(msg.X - arenaLeft))
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch buttonAt(m.theme, m.layout, m.arena.Game().Phase(), msg.X, msg.Y) {
		case buttonReload:
			m.arena.Reload()
		case buttonToggle:
			m.arena.TogglePause()
		}
	}
	m.drawOverlay()
	return m, m.sched.Flush()
}

// handleResize refits the canvas. The game keeps its state; only the
// rasterization changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	arenaW, arenaH := m.arena.Game().ArenaSize()
	m.layout = computeLayout(msg.Width, msg.Height, arenaW, arenaH)
	m.canvas.Resize(m.layout.cols, m.layout.rows)
	m.arena.Redraw()
	m.drawOverlay()
	m.help.Width = msg.Width

	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height,
		"cols", m.layout.cols, "rows", m.layout.rows)
	return m, nil
}

// drawOverlay marks a stopped arena. The canvas keeps the last frame
// while no frames run, so the banner stays until play resumes.
func (m Model) drawOverlay() {
	if text := bannerText(m.arena.Game().Phase()); text != "" {
		drawBanner(m.canvas.Screen(), text)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	game := m.arena.Game()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.ArenaBorder.Render(RenderScreen(m.canvas.Screen())),
		renderStatus(m.theme, game.State()),
		renderButtons(m.theme, game.Phase()),
		m.theme.Hint.Render(hintText),
		m.help.View(m.keys),
	)
}

// Arena returns the hosted arena.
func (m Model) Arena() *brickbreaker.Arena {
	return m.arena
}

// Run starts the Bubble Tea program for the given game and blocks until
// the player quits.
func Run(game *brickbreaker.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // paddle follows the pointer without a button held
	)

	_, err := p.Run()
	model.arena.Unmount()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
