package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/towerflap/internal/games/flappy"
	"github.com/vovakirdan/towerflap/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window and start a session.

Controls:
  Space/Up     - Jump
  Click PLAY   - Restart (after game over)
  Enter        - Restart (after game over)
  Q/Esc        - Quit

Examples:
  towerflap window
  towerflap window --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	resolveSeed(&cfg)

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting session", "frontend", "window", "seed", cfg.Seed, "tick_rate", cfg.TickRate, "scale", cfg.Window.Scale)

	game := flappy.New(cfg.Runtime(), cfg.Sprites)
	return window.Run(game, cfg, logger)
}
