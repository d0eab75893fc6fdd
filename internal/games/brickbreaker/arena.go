package brickbreaker

import (
	"io"

	"github.com/charmbracelet/log"
)

// FrameID identifies a scheduled frame. Zero means no frame.
type FrameID uint64

// Scheduler runs callbacks at the next display refresh.
// Implementations must call callbacks on the same goroutine that drives the
// Arena, and must never run a callback whose frame was cancelled.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Arena owns a Game and drives it: it receives input, runs the frame loop
// while the game is running, and draws onto the mounted surface.
//
// All methods must be called from one goroutine.
type Arena struct {
	game    *Game
	sched   Scheduler
	surface Surface
	mounted bool
	pending FrameID
	frames  int
	logger  *log.Logger
}

// NewArena creates an unmounted arena. A nil logger discards output.
func NewArena(game *Game, sched Scheduler, logger *log.Logger) *Arena {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Arena{
		game:   game,
		sched:  sched,
		logger: logger,
	}
}

// Mount attaches the drawing surface, enables input handling and starts
// the frame loop if the game is running.
func (a *Arena) Mount(s Surface) {
	a.surface = s
	a.mounted = true
	a.logger.Debug("arena mounted", "phase", a.game.Phase())
	a.Redraw()
	a.start()
}

// Unmount stops the frame loop, disables input handling and detaches the surface.
func (a *Arena) Unmount() {
	if !a.mounted {
		return
	}
	a.stop()
	a.mounted = false
	a.surface = nil
	a.logger.Debug("arena unmounted", "frames", a.frames, "score", a.game.Score())
}

// Mounted reports whether the arena is attached to a surface.
func (a *Arena) Mounted() bool {
	return a.mounted
}

// OnPointerMove records the pointer's x position in arena units, relative to
// the arena's left edge. The paddle follows it on the next frame.
func (a *Arena) OnPointerMove(x float64) {
	if !a.mounted {
		return
	}
	a.game.SetPointerX(x)
}

// OnKeyDown handles any key press by toggling pause.
func (a *Arena) OnKeyDown() {
	if !a.mounted {
		return
	}
	a.TogglePause()
}

// TogglePause flips between running and paused and starts or stops the
// frame loop to match. Ignored after game over.
func (a *Arena) TogglePause() {
	if !a.game.TogglePause() {
		return
	}
	a.logger.Debug("pause toggled", "phase", a.game.Phase())
	if a.game.Phase() == PhaseRunning {
		a.start()
	} else {
		a.stop()
	}
}

// Reload restarts the game from scratch and restarts the frame loop.
// This is the only way out of game over.
func (a *Arena) Reload() {
	a.stop()
	a.game.Reload()
	a.logger.Info("game reloaded")
	a.start()
}

// Redraw draws the current state without advancing the simulation.
// Used when the surface changes while the loop is stopped.
func (a *Arena) Redraw() {
	if a.surface == nil {
		return
	}
	a.game.Render(a.surface, a.game.Paddle())
}

// Game returns the game driven by this arena.
func (a *Arena) Game() *Game {
	return a.game
}

// Pending returns the currently scheduled frame, or zero.
func (a *Arena) Pending() FrameID {
	return a.pending
}

// Frames returns the number of frames simulated since creation.
func (a *Arena) Frames() int {
	return a.frames
}

// start schedules a frame if the loop should be running and is not already.
func (a *Arena) start() {
	if !a.mounted || a.pending != 0 || a.game.Phase() != PhaseRunning {
		return
	}
	a.pending = a.sched.RequestFrame(a.frame)
}

// stop cancels the scheduled frame, if any.
func (a *Arena) stop() {
	if a.pending == 0 {
		return
	}
	a.sched.CancelFrame(a.pending)
	a.pending = 0
}

// frame renders the current state, advances the simulation by one tick and
// schedules the next frame while the game keeps running.
func (a *Arena) frame() {
	a.pending = 0
	if a.game.Phase() != PhaseRunning {
		return
	}
	if a.surface == nil {
		return
	}

	paddle := a.game.Paddle()
	a.game.Render(a.surface, paddle)

	res := a.game.Step(paddle)
	a.frames++
	if res.BricksHit > 0 {
		a.logger.Debug("bricks hit", "count", res.BricksHit, "score", a.game.Score())
	}
	if res.GameOver {
		a.logger.Info("game over",
			"score", a.game.Score(),
			"bricks_left", a.game.Bricks().CountAlive(),
			"ticks", a.game.tickCount,
		)
		return
	}

	a.pending = a.sched.RequestFrame(a.frame)
}
