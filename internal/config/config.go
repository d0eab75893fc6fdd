// Package config provides YAML-based configuration loading for Brick Breaker.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// BrickBreakerConfig contains all configuration for the game.
type BrickBreakerConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Ball   BallConfig   `yaml:"ball"`
	Paddle PaddleConfig `yaml:"paddle"`
	Bricks BricksConfig `yaml:"bricks"`
	Colors ColorsConfig `yaml:"colors"`
}

// ArenaConfig defines the play area size in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Vec2 is a 2D vector in arena units.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BallConfig defines the ball's size and fresh-start vectors.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	Start          Vec2    `yaml:"start"`
	MountVelocity  Vec2    `yaml:"mount_velocity"`
	ReloadVelocity Vec2    `yaml:"reload_velocity"`
}

// PaddleConfig defines paddle dimensions.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows    int     `yaml:"rows"`
	Columns int     `yaml:"columns"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
}

// ColorsConfig names the fill colors. Brick colors cycle by (row+column).
type ColorsConfig struct {
	Background string   `yaml:"background"`
	Paddle     string   `yaml:"paddle"`
	Ball       string   `yaml:"ball"`
	Bricks     []string `yaml:"bricks"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks that the configuration describes a playable arena.
func (c BrickBreakerConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have positive size, got %vx%v", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive, got %v", ErrInvalidConfig, c.Ball.Radius)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have positive size", ErrInvalidConfig)
	case c.Paddle.Width > c.Arena.Width:
		return fmt.Errorf("%w: paddle width %v exceeds arena width %v", ErrInvalidConfig, c.Paddle.Width, c.Arena.Width)
	case c.Bricks.Rows <= 0 || c.Bricks.Columns <= 0:
		return fmt.Errorf("%w: brick grid must have at least one row and column", ErrInvalidConfig)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0 || c.Bricks.Padding < 0:
		return fmt.Errorf("%w: brick dimensions must be positive", ErrInvalidConfig)
	case len(c.Colors.Bricks) == 0:
		return fmt.Errorf("%w: at least one brick color is required", ErrInvalidConfig)
	}

	names := append([]string{c.Colors.Background, c.Colors.Paddle, c.Colors.Ball}, c.Colors.Bricks...)
	for _, name := range names {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, name)
		}
	}
	return nil
}

// Palette is the resolved set of fill colors.
type Palette struct {
	Background core.Color
	Paddle     core.Color
	Ball       core.Color
	Bricks     []core.Color
}

// Palette resolves color names. Unknown names fall back to core.ColorDefault;
// call Validate first to reject them.
func (c ColorsConfig) Palette() Palette {
	resolve := func(name string) core.Color {
		col, _ := core.ParseColor(name)
		return col
	}

	p := Palette{
		Background: resolve(c.Background),
		Paddle:     resolve(c.Paddle),
		Ball:       resolve(c.Ball),
		Bricks:     make([]core.Color, 0, len(c.Bricks)),
	}
	for _, name := range c.Bricks {
		p.Bricks = append(p.Bricks, resolve(name))
	}
	if len(p.Bricks) == 0 {
		p.Bricks = append(p.Bricks, core.ColorDefault)
	}
	return p
}
