package core

// RuntimeConfig contains configuration passed from the platform at startup.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the presentation-facing view of a game.
// UI code reads it to show the score and status indicators.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}
