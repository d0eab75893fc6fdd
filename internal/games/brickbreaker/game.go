// Package brickbreaker implements the brick-breaker simulation: ball
// kinematics, the pointer-driven paddle, the brick grid, scoring and the
// game phase. The package draws through the Surface interface and is driven
// by an Arena, so it has no terminal dependencies.
package brickbreaker

import (
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Phase is the game lifecycle state.
type Phase int

const (
	PhaseRunning  Phase = iota // Ball in play
	PhasePaused                // Frozen until toggled back
	PhaseGameOver              // Ball lost; only Reload leaves this phase
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// StepResult describes what happened during one tick.
type StepResult struct {
	WallBounce bool
	Vertical   CollisionSide
	BricksHit  int
	GameOver   bool
}

// Game holds the simulation state.
type Game struct {
	cfg     config.BrickBreakerConfig
	palette config.Palette

	ball      Ball
	bricks    *Grid
	pointerX  float64
	score     int
	phase     Phase
	tickCount int
}

// New creates a game in its mount-time state: fresh bricks, zero score,
// running, and the ball launched with the mount velocity.
func New(cfg config.BrickBreakerConfig) *Game {
	g := &Game{
		cfg:     cfg,
		palette: cfg.Colors.Palette(),
		bricks: NewGrid(cfg.Bricks.Rows, cfg.Bricks.Columns, BrickLayout{
			Width:   cfg.Bricks.Width,
			Height:  cfg.Bricks.Height,
			Padding: cfg.Bricks.Padding,
		}),
	}
	g.restart(cfg.Ball.MountVelocity)
	return g
}

// Reload resets ball, bricks and score and resumes play.
// The ball restarts with the reload velocity, which differs from the
// mount-time one.
func (g *Game) Reload() {
	g.restart(g.cfg.Ball.ReloadVelocity)
}

// restart puts the game into a fresh running state with the given launch velocity.
func (g *Game) restart(velocity config.Vec2) {
	g.ball = Ball{
		X:      g.cfg.Ball.Start.X,
		Y:      g.cfg.Ball.Start.Y,
		DX:     velocity.X,
		DY:     velocity.Y,
		Radius: g.cfg.Ball.Radius,
	}
	g.bricks.Reset()
	g.score = 0
	g.phase = PhaseRunning
	g.tickCount = 0
}

// SetPointerX records the pointer position relative to the arena's left edge.
// No clamping happens here; see Paddle.
func (g *Game) SetPointerX(x float64) {
	g.pointerX = x
}

// TogglePause flips between running and paused.
// Has no effect after game over. Returns true if the phase changed.
func (g *Game) TogglePause() bool {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhaseRunning
	default:
		return false
	}
	return true
}

// Paddle returns the paddle for the current pointer position.
func (g *Game) Paddle() Paddle {
	return PaddleAt(g.pointerX, g.cfg.Paddle.Width, g.cfg.Paddle.Height, g.cfg.Arena.Width)
}

// Step advances the simulation by one tick using the paddle of this frame.
// Does nothing unless the game is running.
func (g *Game) Step(paddle Paddle) StepResult {
	var res StepResult
	if g.phase != PhaseRunning {
		return res
	}

	g.tickCount++
	ball := &g.ball

	ball.Move()

	res.WallBounce = CheckWallCollision(ball, g.cfg.Arena.Width)

	res.Vertical = CheckVerticalCollision(ball, paddle, g.cfg.Arena.Height)
	if res.Vertical == CollisionFloor {
		g.phase = PhaseGameOver
		res.GameOver = true
		return res
	}

	// Every overlapping brick counts, so two hits in one tick cancel
	// the bounce but both score.
	for row := range g.bricks.Rows {
		for col := range g.bricks.Cols {
			if !g.bricks.Alive(row, col) {
				continue
			}
			if g.bricks.Bounds(row, col).ContainsStrict(ball.X, ball.Y) {
				ball.BounceY()
				g.bricks.Kill(row, col)
				g.score++
				res.BricksHit++
			}
		}
	}

	return res
}

// Render draws the frame: background, paddle, ball and the standing bricks.
func (g *Game) Render(dst Surface, paddle Paddle) {
	w, h := g.cfg.Arena.Width, g.cfg.Arena.Height

	dst.Clear()
	dst.SetFill(g.palette.Background)
	dst.FillRect(0, 0, w, h)

	dst.SetFill(g.palette.Paddle)
	dst.FillRect(paddle.X, h-paddle.Height, paddle.Width, paddle.Height)

	dst.SetFill(g.palette.Ball)
	dst.FillCircle(g.ball.X, g.ball.Y, g.ball.Radius)

	for row := range g.bricks.Rows {
		for col := range g.bricks.Cols {
			if !g.bricks.Alive(row, col) {
				continue
			}
			b := g.bricks.Bounds(row, col)
			dst.SetFill(g.brickColor(row, col))
			dst.FillRect(b.X, b.Y, b.W, b.H)
		}
	}
}

// brickColor cycles through the palette diagonally.
func (g *Game) brickColor(row, col int) core.Color {
	return g.palette.Bricks[(row+col)%len(g.palette.Bricks)]
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Bricks returns the brick grid. Callers must not modify it.
func (g *Game) Bricks() *Grid {
	return g.bricks
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the number of bricks destroyed since the last restart.
func (g *Game) Score() int {
	return g.score
}

// PointerX returns the last recorded pointer position.
func (g *Game) PointerX() float64 {
	return g.pointerX
}

// ArenaSize returns the arena dimensions.
func (g *Game) ArenaSize() (w, h float64) {
	return g.cfg.Arena.Width, g.cfg.Arena.Height
}

// State returns the presentation view of the game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}
