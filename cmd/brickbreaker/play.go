package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Brick Breaker.

Controls:
  Mouse      - Move the platform
  Any key    - Pause / resume
  Ctrl+R     - Play again
  Ctrl+C     - Quit

The "Play again" and "Pause" buttons below the arena can be clicked too.

Examples:
  brickbreaker play
  brickbreaker play --fps 30
  brickbreaker play --mono`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := config.LoadBrickBreaker(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source)

	// Get terminal size for the initial layout
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS

	game := brickbreaker.New(cfg)
	logger.Info("starting", "fps", rc.TickRate, "width", rc.ScreenW, "height", rc.ScreenH)

	err = tui.Run(game, tui.Options{
		Runtime:    rc,
		Monochrome: flagMono,
		Logger:     logger,
	})
	logger.Info("exiting", "score", game.Score(), "phase", game.Phase())
	return err
}

// newLogger returns a logger writing to path, or a discarding logger when
// path is empty. The terminal belongs to the game, so logs never go there.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickbreaker",
		Level:           lvl,
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
