package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/towerflap/internal/engine"
	"github.com/vovakirdan/towerflap/internal/games/flappy"
)

var (
	flagTicks       int
	flagRealtime    bool
	flagPilot       string
	flagStopOnDeath bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session",
	Long: `Step a session without any front end and print a summary.

Pilots:
  idle          - Never jump
  auto          - Jump when about to fall below the gap
  auto+restart  - Like auto, and click PLAY after each death
  every:N       - Jump every N ticks

By default the session runs as fast as possible. With --realtime it runs
at --fps ticks per second and can be stopped with Ctrl+C.

Examples:
  towerflap sim --ticks 600
  towerflap sim --pilot every:20 --seed 7
  towerflap sim --pilot auto+restart --ticks 36000 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Ticks to simulate (0 = until interrupted)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the tick rate")
	simCmd.Flags().StringVar(&flagPilot, "pilot", "auto", "Input source: idle, auto, auto+restart, every:N")
	simCmd.Flags().BoolVar(&flagStopOnDeath, "stop-on-death", false, "Stop at the first death")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	resolveSeed(&cfg)

	if flagTicks == 0 && !flagRealtime && !flagStopOnDeath {
		return errors.New("sim: --ticks 0 needs --realtime or --stop-on-death")
	}

	pilot, err := engine.ParsePilot(flagPilot)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting session", "frontend", "headless", "seed", cfg.Seed, "pilot", flagPilot)

	game := flappy.New(cfg.Runtime(), cfg.Sprites)
	loop := engine.NewLoop(game, pilot, engine.Options{
		TickRate:    cfg.TickRate,
		Realtime:    flagRealtime,
		MaxTicks:    flagTicks,
		StopOnDeath: flagStopOnDeath,
	}, logger)

	sum, err := loop.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("sim: %w", err)
	}

	fmt.Printf("seed:       %d\n", cfg.Seed)
	fmt.Printf("pilot:      %s\n", flagPilot)
	fmt.Printf("ticks:      %d\n", sum.Ticks)
	fmt.Printf("phase:      %s\n", sum.Phase)
	fmt.Printf("score:      %d\n", sum.Score)
	fmt.Printf("best score: %d\n", sum.BestScore)
	fmt.Printf("jumps:      %d\n", sum.Jumps)
	fmt.Printf("deaths:     %d\n", sum.Deaths)
	fmt.Printf("restarts:   %d\n", sum.Restarts)
	fmt.Printf("elapsed:    %s\n", sum.Elapsed)
	return nil
}
