package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultBrickBreakerYAML []byte

// DefaultBrickBreakerConfig returns the built-in configuration.
func DefaultBrickBreakerConfig() BrickBreakerConfig {
	return BrickBreakerConfig{
		Arena: ArenaConfig{
			Width:  500,
			Height: 300,
		},
		Ball: BallConfig{
			Radius:         10,
			Start:          Vec2{X: 200, Y: 150},
			MountVelocity:  Vec2{X: 0.5, Y: -1.5},
			ReloadVelocity: Vec2{X: 0.4, Y: -1},
		},
		Paddle: PaddleConfig{
			Width:  75,
			Height: 10,
		},
		Bricks: BricksConfig{
			Rows:    6,
			Columns: 6,
			Width:   75,
			Height:  20,
			Padding: 10,
		},
		Colors: ColorsConfig{
			Background: "grey",
			Paddle:     "black",
			Ball:       "black",
			Bricks:     []string{"green", "orange", "purple", "black"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBrickBreakerYAML
}
