package brickbreaker

import "github.com/vovakirdan/brickbreaker/internal/core"

// Surface is a 2D drawing target sized to the arena.
// Coordinates are arena units; implementations scale as needed.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	// SetFill selects the color used by subsequent fills.
	SetFill(c core.Color)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64)
	// FillCircle fills a circle centered on (cx, cy).
	FillCircle(cx, cy, r float64)
}
