package brickbreaker

import "math"

// Snapshot contains the complete simulation state for replay and tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     int
	Phase    Phase
	Score    int
	PointerX float64

	BallX, BallY   float64
	BallDX, BallDY float64
	BallRadius     float64

	// Brick states, flattened row-major: row*cols + col
	Rows, Cols int
	Bricks     []bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]bool, 0, g.bricks.Total())
	for row := range g.bricks.Rows {
		for col := range g.bricks.Cols {
			bricks = append(bricks, g.bricks.Alive(row, col))
		}
	}

	return Snapshot{
		Tick:       g.tickCount,
		Phase:      g.phase,
		Score:      g.score,
		PointerX:   g.pointerX,
		BallX:      g.ball.X,
		BallY:      g.ball.Y,
		BallDX:     g.ball.DX,
		BallDY:     g.ball.DY,
		BallRadius: g.ball.Radius,
		Rows:       g.bricks.Rows,
		Cols:       g.bricks.Cols,
		Bricks:     bricks,
	}
}

// ApplySnapshot restores game state from a snapshot.
// Brick data is ignored if the grid shape does not match.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = snap.Tick
	g.phase = snap.Phase
	g.score = snap.Score
	g.pointerX = snap.PointerX
	g.ball = Ball{
		X:      snap.BallX,
		Y:      snap.BallY,
		DX:     snap.BallDX,
		DY:     snap.BallDY,
		Radius: snap.BallRadius,
	}

	if snap.Rows != g.bricks.Rows || snap.Cols != g.bricks.Cols || len(snap.Bricks) != g.bricks.Total() {
		return
	}
	for row := range g.bricks.Rows {
		for col := range g.bricks.Cols {
			g.bricks.alive[row][col] = snap.Bricks[row*g.bricks.Cols+col]
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PointerX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)
	h = h*31 + math.Float64bits(snap.BallRadius)

	for _, alive := range snap.Bricks {
		h *= 31
		if alive {
			h++
		}
	}

	return h
}
