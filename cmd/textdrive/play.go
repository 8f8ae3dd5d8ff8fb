package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/textdrive/internal/core"
	"github.com/vovakirdan/textdrive/internal/drive"
	"github.com/vovakirdan/textdrive/internal/platform/tui"
)

var (
	flagPolicy  string
	flagPrefill bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start driving",
	Long: `Start a TextDrive session in the terminal.

Controls:
  Left/A/H    - Move one lane left
  Right/D/L   - Move one lane right
  P/Esc       - Pause
  R           - Restart (after game over)
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Logs are discarded unless --log-file is set, so they never draw over
the game.

Examples:
  textdrive play
  textdrive play --policy path
  textdrive play --prefill --seed 7
  textdrive play --config ./wide.yaml --log-file drive.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPolicy, "policy", "", "Course policy (see 'textdrive list')")
	playCmd.Flags().BoolVar(&flagPrefill, "prefill", false, "Fill the screen with course before the first tick")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := drive.NewGame(gameOptions(cmd, logger))
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	settings := game.Settings()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(settings.Timing.TickRate),
		Seed:     flagSeed,
	}

	return tui.Run(game, cfg, tui.Options{
		HoldTicks: settings.Input.HoldTicks,
		Logger:    logger,
	})
}
