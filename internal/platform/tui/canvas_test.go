package tui

import (
	"math"
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// newTestCanvas returns a canvas where one cell is 10×20 arena units.
func newTestCanvas() *CellCanvas {
	return NewCellCanvas(50, 15, 500, 300)
}

func filledCells(s *core.Screen) map[[2]int]core.Color {
	cells := make(map[[2]int]core.Color)
	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Rune == pixelGlyph {
				cells[[2]int{x, y}] = cell.Color
			}
		}
	}
	return cells
}

func TestCellCanvasFillRectWholeArena(t *testing.T) {
	c := newTestCanvas()
	c.SetFill(core.ColorGray)
	c.FillRect(0, 0, 500, 300)

	cells := filledCells(c.Screen())
	if len(cells) != 50*15 {
		t.Errorf("filled %d cells, expected %d", len(cells), 50*15)
	}
	if cells[[2]int{49, 14}] != core.ColorGray {
		t.Errorf("corner cell color = %s, expected grey", cells[[2]int{49, 14}])
	}
}

func TestCellCanvasFillRectPaddle(t *testing.T) {
	c := newTestCanvas()
	c.SetFill(core.ColorBlack)
	c.FillRect(0, 290, 75, 10)

	cells := filledCells(c.Screen())
	if len(cells) != 7 {
		t.Errorf("filled %d cells, expected 7", len(cells))
	}
	for col := range 7 {
		if _, ok := cells[[2]int{col, 14}]; !ok {
			t.Errorf("cell (%d, 14) not filled", col)
		}
	}
}

func TestCellCanvasFillRectClipped(t *testing.T) {
	c := newTestCanvas()
	c.SetFill(core.ColorRed)
	c.FillRect(-100, -100, 1000, 1000)

	if n := len(filledCells(c.Screen())); n != 50*15 {
		t.Errorf("filled %d cells, expected %d", n, 50*15)
	}
}

func TestCellCanvasFillCircle(t *testing.T) {
	c := newTestCanvas()
	c.SetFill(core.ColorBlack)
	c.FillCircle(200, 150, 10)

	cells := filledCells(c.Screen())
	expected := [][2]int{{19, 7}, {20, 7}}
	if len(cells) != len(expected) {
		t.Errorf("filled %d cells, expected %d", len(cells), len(expected))
	}
	for _, pos := range expected {
		if cells[pos] != core.ColorBlack {
			t.Errorf("cell %v not filled black", pos)
		}
	}
}

func TestCellCanvasSmallCircleVisible(t *testing.T) {
	c := newTestCanvas()
	c.SetFill(core.ColorBlack)
	c.FillCircle(3, 3, 1)

	cells := filledCells(c.Screen())
	if len(cells) != 1 {
		t.Errorf("filled %d cells, expected 1", len(cells))
	}
	if _, ok := cells[[2]int{0, 0}]; !ok {
		t.Error("cell holding the center should be filled")
	}
}

func TestCellCanvasClear(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(0, 0, 500, 300)
	c.Clear()

	if n := len(filledCells(c.Screen())); n != 0 {
		t.Errorf("%d cells still filled after Clear", n)
	}
}

func TestCellCanvasArenaX(t *testing.T) {
	c := newTestCanvas()

	tests := []struct {
		col      int
		expected float64
	}{
		{0, 5},
		{20, 205},
		{49, 495},
		{-1, -5},
	}

	for _, tt := range tests {
		if got := c.ArenaX(tt.col); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("ArenaX(%d) = %v, expected %v", tt.col, got, tt.expected)
		}
	}
}

func TestCellCanvasResizeKeepsArena(t *testing.T) {
	c := newTestCanvas()
	c.Resize(100, 30)

	if got := c.ArenaX(0); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("ArenaX(0) after resize = %v, expected 2.5", got)
	}
	c.FillRect(0, 0, 500, 300)
	if n := len(filledCells(c.Screen())); n != 100*30 {
		t.Errorf("filled %d cells, expected %d", n, 100*30)
	}
}
