package brickbreaker

import "github.com/vovakirdan/brickbreaker/internal/core"

// BrickLayout describes brick size and spacing in arena units.
type BrickLayout struct {
	Width   float64
	Height  float64
	Padding float64
}

// Grid is the fixed-size field of bricks.
// A brick is either alive or dead; dead bricks only come back on Reset.
type Grid struct {
	Rows   int
	Cols   int
	Layout BrickLayout
	alive  [][]bool
}

// NewGrid creates a grid with every brick alive.
func NewGrid(rows, cols int, layout BrickLayout) *Grid {
	g := &Grid{
		Rows:   rows,
		Cols:   cols,
		Layout: layout,
		alive:  make([][]bool, rows),
	}
	for row := range g.alive {
		g.alive[row] = make([]bool, cols)
	}
	g.Reset()
	return g
}

// Reset revives every brick.
func (g *Grid) Reset() {
	for row := range g.alive {
		for col := range g.alive[row] {
			g.alive[row][col] = true
		}
	}
}

// Alive reports whether the brick at (row, col) is still standing.
// Out-of-range positions are never alive.
func (g *Grid) Alive(row, col int) bool {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return false
	}
	return g.alive[row][col]
}

// Kill marks the brick dead. Returns false if it was already dead.
func (g *Grid) Kill(row, col int) bool {
	if !g.Alive(row, col) {
		return false
	}
	g.alive[row][col] = false
	return true
}

// Bounds returns the rectangle occupied by the brick at (row, col).
func (g *Grid) Bounds(row, col int) core.Box {
	l := g.Layout
	return core.Box{
		X: float64(col)*(l.Width+l.Padding) + l.Padding,
		Y: float64(row)*(l.Height+l.Padding) + l.Padding,
		W: l.Width,
		H: l.Height,
	}
}

// CountAlive returns the number of bricks still standing.
func (g *Grid) CountAlive() int {
	count := 0
	for row := range g.alive {
		for _, alive := range g.alive[row] {
			if alive {
				count++
			}
		}
	}
	return count
}

// Total returns the number of bricks in a full grid.
func (g *Grid) Total() int {
	return g.Rows * g.Cols
}
