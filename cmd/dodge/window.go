package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the game in a desktop window sized to the play field.

Controls:
  Arrows/WASD - Move while held (combine two for diagonals)
  Q/Esc       - Quit

Examples:
  dodge window
  dodge window --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, s, err := newSession(0, 0, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := window.Run(s, cfg); err != nil {
		logger.Error("window closed with error", "error", err)
		os.Exit(1)
	}

	printResult(s)
}
