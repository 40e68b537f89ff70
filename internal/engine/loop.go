// Package engine drives a session at a fixed cadence without a front end.
// It is used by the headless `sim` command and by tests that need many
// ticks with scripted input.
package engine

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/towerflap/internal/core"
	"github.com/vovakirdan/towerflap/internal/games/flappy"
)

// Pilot produces the input for the next tick from the last snapshot.
type Pilot interface {
	Next(snap flappy.Snapshot) core.InputFrame
}

// PilotFunc adapts a function to the Pilot interface.
type PilotFunc func(snap flappy.Snapshot) core.InputFrame

// Next calls f.
func (f PilotFunc) Next(snap flappy.Snapshot) core.InputFrame {
	return f(snap)
}

// Options configures a Loop.
type Options struct {
	// TickRate is the number of ticks per second in realtime mode.
	TickRate int
	// Realtime paces ticks with a ticker. Otherwise ticks run back to back.
	Realtime bool
	// MaxTicks stops the loop after this many ticks; 0 means no limit.
	MaxTicks int
	// StopOnDeath ends the run the first tick the phase becomes dead.
	StopOnDeath bool
	// Observe, if set, is called with the snapshot after every tick.
	Observe func(flappy.Snapshot)
}

// Summary describes a finished run.
type Summary struct {
	Ticks     int
	Score     int
	BestScore int
	Jumps     int
	Deaths    int
	Restarts  int
	Phase     core.Phase
	Quit      bool
	Elapsed   time.Duration
}

// Loop steps one session on a single goroutine.
type Loop struct {
	game   *flappy.Game
	pilot  Pilot
	opts   Options
	logger *log.Logger
}

// NewLoop creates a loop. A nil logger discards log output.
func NewLoop(game *flappy.Game, pilot Pilot, opts Options, logger *log.Logger) *Loop {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		game:   game,
		pilot:  pilot,
		opts:   opts,
		logger: logger,
	}
}

// Run steps the session until the context is cancelled, a quit input
// arrives, MaxTicks is reached or, with StopOnDeath, the player dies.
// The returned error is the context's error when cancellation ended the run.
func (l *Loop) Run(ctx context.Context) (Summary, error) {
	sum := Summary{}
	start := time.Now()

	var ticker *time.Ticker
	if l.opts.Realtime {
		ticker = time.NewTicker(time.Second / time.Duration(l.opts.TickRate))
		defer ticker.Stop()
	}

	snap := l.game.Snapshot()
	for l.opts.MaxTicks == 0 || sum.Ticks < l.opts.MaxTicks {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return l.finish(sum, start), ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return l.finish(sum, start), err
		}

		result := l.game.Step(l.pilot.Next(snap))
		if result.Quit {
			l.logger.Info("quit requested", "tick", result.State.Tick)
			sum.Quit = true
			return l.finish(sum, start), nil
		}

		sum.Ticks++
		l.record(&sum, result)

		snap = l.game.Snapshot()
		if l.opts.Observe != nil {
			l.opts.Observe(snap)
		}

		if l.opts.StopOnDeath && result.State.GameOver() {
			break
		}
	}

	return l.finish(sum, start), nil
}

func (l *Loop) record(sum *Summary, result core.StepResult) {
	for _, e := range result.Events {
		switch e.Kind {
		case core.EventJumped:
			sum.Jumps++
		case core.EventScored:
			sum.BestScore = max(sum.BestScore, e.Score)
		case core.EventCollided, core.EventHitFloor:
			sum.Deaths++
		case core.EventRestarted:
			sum.Restarts++
		}
	}
	LogEvents(l.logger, result.Events)
}

// LogEvents writes session events to logger. Front ends share it so every
// driver reports the same messages.
func LogEvents(logger *log.Logger, events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventJumped:
			logger.Debug("jump", "tick", e.Tick)
		case core.EventScored:
			logger.Info("scored", "score", e.Score, "tick", e.Tick)
		case core.EventCollided, core.EventHitFloor:
			logger.Info("player died", "cause", e.Kind, "score", e.Score, "tick", e.Tick)
		case core.EventRestarted:
			logger.Info("restarted", "tick", e.Tick)
		case core.EventRecycled:
			logger.Debug("towers recycled", "tick", e.Tick)
		}
	}
}

func (l *Loop) finish(sum Summary, start time.Time) Summary {
	state := l.game.State()
	sum.Elapsed = time.Since(start)
	sum.Score = state.Score
	sum.Phase = state.Phase
	return sum
}
