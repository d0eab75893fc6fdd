// brickbreaker is a single-player brick breaker game for the terminal.
//
// Usage:
//
//	brickbreaker             - Play (same as "brickbreaker play")
//	brickbreaker play        - Play the game
//	brickbreaker config      - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Custom game config YAML
//	--fps <rate>         - Set frame rate (default: 60)
//	--log-file <path>    - Write logs to a file (default: no logging)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--mono               - Theme without accent colors
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
	flagMono     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - break bricks in your terminal",
	Long: `Brick Breaker is a terminal rendition of the classic paddle and ball game.
Move the mouse to steer the platform, keep the ball in play and clear the wall.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration

Examples:
  brickbreaker
  brickbreaker play --fps 30
  brickbreaker play --config ./my-bricks.yaml --log-file /tmp/bricks.log
  brickbreaker config > ~/.brickbreaker/configs/brickbreaker.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use a theme without accent colors")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
