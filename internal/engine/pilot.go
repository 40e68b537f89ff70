package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/towerflap/internal/core"
	"github.com/vovakirdan/towerflap/internal/games/flappy"
)

// autoJumpMargin is how far above the bottom tower the autopilot lets the
// player sink before jumping.
const autoJumpMargin = 20

// Idle never produces input.
func Idle() Pilot {
	return PilotFunc(func(flappy.Snapshot) core.InputFrame {
		return core.NewInputFrame()
	})
}

// EveryN jumps on the first tick and then every n ticks.
func EveryN(n int) Pilot {
	if n <= 0 {
		n = 1
	}
	tick := 0
	return PilotFunc(func(flappy.Snapshot) core.InputFrame {
		in := core.NewInputFrame()
		if tick%n == 0 {
			in.Set(core.ActionJump)
		}
		tick++
		return in
	})
}

// Autopilot jumps whenever the player is sinking towards the bottom tower
// or the floor.
type Autopilot struct {
	// Restart clicks the restart control after a death.
	Restart bool
}

// Next implements Pilot.
func (a Autopilot) Next(snap flappy.Snapshot) core.InputFrame {
	in := core.NewInputFrame()

	if snap.GameOver != nil {
		if a.Restart {
			in.Click(snap.GameOver.RestartControl.Center())
		}
		return in
	}

	p := snap.Player
	falling := !p.Jumping || p.VerticalVelocity <= 0
	floor := min(snap.Towers.Bottom.Rect.Y, flappy.FloorY)
	if falling && p.Rect.Bottom() >= floor-autoJumpMargin {
		in.Set(core.ActionJump)
	}
	return in
}

// ParsePilot builds a pilot from its command-line name:
// "idle", "auto", "auto+restart" or "every:N".
func ParsePilot(name string) (Pilot, error) {
	switch {
	case name == "idle":
		return Idle(), nil
	case name == "auto":
		return Autopilot{}, nil
	case name == "auto+restart":
		return Autopilot{Restart: true}, nil
	case strings.HasPrefix(name, "every:"):
		n, err := strconv.Atoi(strings.TrimPrefix(name, "every:"))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("engine: invalid pilot %q: interval must be a positive integer", name)
		}
		return EveryN(n), nil
	default:
		return nil, fmt.Errorf("engine: unknown pilot %q (want idle, auto, auto+restart or every:N)", name)
	}
}
