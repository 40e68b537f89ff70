package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/towerflap/internal/games/flappy"
	"github.com/vovakirdan/towerflap/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a session in the terminal.

Controls:
  Space/Up/W   - Jump
  Click PLAY   - Restart (after game over)
  R/Enter      - Restart (after game over)
  ?            - More help
  Q/Esc/Ctrl+C - Quit

Logs are discarded unless --log-file is set, since the game owns the screen.

Examples:
  towerflap play
  towerflap play --seed 42 --log-file towerflap.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	resolveSeed(&cfg)

	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Terminal size for the first frame; Bubble Tea sends resizes after.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting session", "frontend", "terminal", "seed", cfg.Seed, "tick_rate", cfg.TickRate)

	game := flappy.New(cfg.Runtime(), cfg.Sprites)
	return tui.Run(game, tui.Options{
		TickRate: cfg.TickRate,
		Width:    width,
		Height:   height,
		Colors:   cfg.Terminal.Colors,
		ShowHelp: cfg.Terminal.ShowHelp,
	}, logger)
}
