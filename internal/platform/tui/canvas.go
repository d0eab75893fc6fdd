package tui

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// pixelGlyph is drawn for every filled cell.
const pixelGlyph = '█'

// CellCanvas rasterizes arena-unit drawing onto a core.Screen.
// A cell is filled when its center lies inside the shape.
type CellCanvas struct {
	screen *core.Screen
	arenaW float64
	arenaH float64
	fill   core.Color
}

// NewCellCanvas creates a canvas of cols×rows cells covering an arena of
// arenaW×arenaH units.
func NewCellCanvas(cols, rows int, arenaW, arenaH float64) *CellCanvas {
	return &CellCanvas{
		screen: core.NewScreen(cols, rows),
		arenaW: arenaW,
		arenaH: arenaH,
	}
}

// Screen returns the underlying cell buffer.
func (c *CellCanvas) Screen() *core.Screen {
	return c.screen
}

// Resize changes the number of cells. The arena size stays the same.
func (c *CellCanvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
}

// Clear erases the canvas.
func (c *CellCanvas) Clear() {
	c.screen.Clear()
}

// SetFill selects the color for subsequent fills.
func (c *CellCanvas) SetFill(col core.Color) {
	c.fill = col
}

// FillRect fills every cell whose center lies in [x, x+w) × [y, y+h).
func (c *CellCanvas) FillRect(x, y, w, h float64) {
	cw, ch := c.cellSize()
	col0, col1 := span(x, x+w, cw, c.screen.Width())
	row0, row1 := span(y, y+h, ch, c.screen.Height())

	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			c.screen.Set(col, row, pixelGlyph, c.fill)
		}
	}
}

// FillCircle fills every cell whose center lies within r of (cx, cy).
// The cell containing the center is always filled so small circles stay visible.
func (c *CellCanvas) FillCircle(cx, cy, r float64) {
	cw, ch := c.cellSize()
	col0, col1 := span(cx-r, cx+r, cw, c.screen.Width())
	row0, row1 := span(cy-r, cy+r, ch, c.screen.Height())

	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			px := (float64(col) + 0.5) * cw
			py := (float64(row) + 0.5) * ch
			if math.Hypot(px-cx, py-cy) <= r {
				c.screen.Set(col, row, pixelGlyph, c.fill)
			}
		}
	}

	c.screen.Set(int(math.Floor(cx/cw)), int(math.Floor(cy/ch)), pixelGlyph, c.fill)
}

// ArenaX converts a canvas column to the arena x coordinate of its center.
// Columns outside the canvas map outside the arena.
func (c *CellCanvas) ArenaX(col int) float64 {
	cw, _ := c.cellSize()
	return (float64(col) + 0.5) * cw
}

// cellSize returns the size of one cell in arena units.
func (c *CellCanvas) cellSize() (w, h float64) {
	return c.arenaW / float64(c.screen.Width()), c.arenaH / float64(c.screen.Height())
}

// span returns the half-open range of cells whose centers fall in [from, to),
// clipped to [0, limit).
func span(from, to, cell float64, limit int) (first, last int) {
	first = int(math.Ceil(from/cell - 0.5))
	last = int(math.Ceil(to/cell - 0.5))
	return core.Clamp(first, 0, limit), core.Clamp(last, 0, limit)
}
