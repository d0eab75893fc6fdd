package core

import "strings"

// Color represents a fill color for a screen cell.
// The platform layer maps these to terminal colors.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorGray
	ColorWhite
	ColorRed
	ColorGreen
	ColorOrange
	ColorPurple
	ColorYellow
	ColorBlue
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"black":   ColorBlack,
	"gray":    ColorGray,
	"grey":    ColorGray,
	"white":   ColorWhite,
	"red":     ColorRed,
	"green":   ColorGreen,
	"orange":  ColorOrange,
	"purple":  ColorPurple,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
}

// ParseColor looks up a color by its name (case-insensitive).
// Both "gray" and "grey" are accepted.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// String returns the canonical name of the color.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorGray:
		return "gray"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorOrange:
		return "orange"
	case ColorPurple:
		return "purple"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	default:
		return "default"
	}
}
