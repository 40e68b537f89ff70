package engine

import (
	"testing"

	"github.com/vovakirdan/towerflap/internal/core"
	"github.com/vovakirdan/towerflap/internal/games/flappy"
)

func TestEveryN(t *testing.T) {
	p := EveryN(3)
	var jumps []int
	for i := 0; i < 10; i++ {
		if p.Next(flappy.Snapshot{}).Has(core.ActionJump) {
			jumps = append(jumps, i)
		}
	}

	want := []int{0, 3, 6, 9}
	if len(jumps) != len(want) {
		t.Fatalf("jumps at %v, expected %v", jumps, want)
	}
	for i := range want {
		if jumps[i] != want[i] {
			t.Errorf("jumps at %v, expected %v", jumps, want)
			break
		}
	}
}

func snapshotWithPlayer(y int, jumping bool, velocity float64) flappy.Snapshot {
	return flappy.Snapshot{
		Towers: flappy.TowersView{
			Bottom: flappy.TowerView{Rect: core.NewRect(300, 495, 78, 460)},
		},
		Player: flappy.PlayerView{
			Rect:             core.NewRect(flappy.PlayerX, y, 52, 37),
			Jumping:          jumping,
			VerticalVelocity: velocity,
		},
	}
}

func TestAutopilotJumps(t *testing.T) {
	tests := []struct {
		name string
		snap flappy.Snapshot
		want bool
	}{
		{"high and falling", snapshotWithPlayer(300, false, 10), false},
		{"low and falling", snapshotWithPlayer(440, false, 10), true},
		{"low but rising", snapshotWithPlayer(440, true, 5), false},
		{"low after apex", snapshotWithPlayer(440, true, -2), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Autopilot{}.Next(tc.snap).Has(core.ActionJump)
			if got != tc.want {
				t.Errorf("jump = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestAutopilotRestart(t *testing.T) {
	ctrl := core.NewRect(142, 300, 116, 61)
	snap := flappy.Snapshot{
		Phase:    core.PhaseDead,
		GameOver: &flappy.GameOverView{RestartControl: ctrl},
	}

	in := Autopilot{Restart: true}.Next(snap)
	if len(in.Inputs) != 1 || in.Inputs[0].Action != core.ActionRestart {
		t.Fatalf("expected one restart click, got %+v", in.Inputs)
	}
	if !ctrl.ContainsPoint(in.Inputs[0].At) {
		t.Errorf("click %+v should land on the control", in.Inputs[0].At)
	}

	if !(Autopilot{}).Next(snap).Empty() {
		t.Error("autopilot without Restart should stay idle while dead")
	}
}

func TestParsePilot(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"idle", false},
		{"auto", false},
		{"auto+restart", false},
		{"every:15", false},
		{"every:0", true},
		{"every:x", true},
		{"bogus", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePilot(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePilot(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if !tc.wantErr && p == nil {
				t.Error("expected a pilot")
			}
		})
	}
}
