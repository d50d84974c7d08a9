package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD - Move (combine two for diagonals)
  Q/Esc       - Quit

Terminals only report key presses, so a key counts as held for
input.hold_ms after its last press or auto-repeat.

Examples:
  dodge play
  dodge play --seed 42
  dodge play --config ./my-dodge.yaml --log-file dodge.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// Logs would corrupt the alternate screen, so they need a file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, s, err := newSession(width, height, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(s, cfg.HoldDuration()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	printResult(s)
}

// newSession loads the configuration and starts a dodge session sized for
// the given screen.
func newSession(width, height int, logger *log.Logger) (config.DodgeConfig, *session.Session, error) {
	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	dodge.SetConfig(cfg)

	game, err := registry.Create(dodge.GameID)
	if err != nil {
		return cfg, nil, fmt.Errorf("creating game: %w", err)
	}

	tickRate := cfg.Timing.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}
	return cfg, session.New(game, runtime, cfg.EndPause(), logger), nil
}

// printResult prints the outcome after the frontend has closed.
func printResult(s *session.Session) {
	st := s.State()
	switch st.Reason {
	case core.EndCollision:
		fmt.Printf("Hit after %d ticks (seed %d)\n", st.Ticks, s.Config().Seed)
	case core.EndQuit:
		fmt.Printf("Quit after %d ticks (seed %d)\n", st.Ticks, s.Config().Seed)
	}
}
