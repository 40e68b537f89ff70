package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/towerflap/internal/config"
	"github.com/vovakirdan/towerflap/internal/core"
)

func TestTowerPairScrolls(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tp := NewTowerPair(rng)

	if tp.X != TowerStartX || tp.Passed {
		t.Fatalf("new pair = %+v, expected X=%d and not passed", tp, TowerStartX)
	}

	if tp.Advance(rng) {
		t.Error("a pair at the right edge should not recycle")
	}
	if tp.X != TowerStartX-TowerSpeed {
		t.Errorf("X = %f, expected %d", tp.X, TowerStartX-TowerSpeed)
	}
}

func TestTowerPairRecycles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tp := TowerPair{X: -100, GapOffset: 50, Passed: true}

	// -100 is not below the threshold yet
	if tp.Advance(rng) {
		t.Fatal("X=-100 should scroll, not recycle")
	}
	if tp.X != -105 {
		t.Fatalf("X = %f, expected -105", tp.X)
	}

	if !tp.Advance(rng) {
		t.Fatal("X=-105 should recycle")
	}
	if tp.X != TowerStartX {
		t.Errorf("X = %f, expected %d after recycle", tp.X, TowerStartX)
	}
	if tp.Passed {
		t.Error("recycled pair should not be passed")
	}
	if tp.GapOffset < -MaxGapOffset || tp.GapOffset > MaxGapOffset {
		t.Errorf("GapOffset = %d out of range", tp.GapOffset)
	}
}

func TestTowerPairGapOffsetRange(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	seen := make(map[int]bool)

	for i := 0; i < 5000; i++ {
		tp := TowerPair{X: TowerRecycleX - 1}
		tp.Advance(rng)
		if tp.GapOffset < -MaxGapOffset || tp.GapOffset > MaxGapOffset {
			t.Fatalf("GapOffset = %d out of [-%d, %d]", tp.GapOffset, MaxGapOffset, MaxGapOffset)
		}
		seen[tp.GapOffset] = true
	}

	if len(seen) < 100 {
		t.Errorf("expected a spread of offsets, saw only %d distinct values", len(seen))
	}
}

func TestTowerPairRects(t *testing.T) {
	sprites := config.DefaultSprites()
	tp := TowerPair{X: 123, GapOffset: 20}

	top := tp.TopRect(sprites)
	want := core.NewRect(123, -155, sprites.TowerTop.W, sprites.TowerTop.H)
	if top != want {
		t.Errorf("TopRect = %+v, expected %+v", top, want)
	}

	bottom := tp.BottomRect(sprites)
	want = core.NewRect(123, 475, sprites.TowerBottom.W, sprites.TowerBottom.H)
	if bottom != want {
		t.Errorf("BottomRect = %+v, expected %+v", bottom, want)
	}
}

func TestEvaluate(t *testing.T) {
	player := core.NewRect(50, 350, 52, 37)

	tests := []struct {
		name        string
		top, bottom core.Rect
		passed      bool
		want        Outcome
	}{
		{
			name:   "tower far right",
			top:    core.NewRect(300, -135, 78, 460),
			bottom: core.NewRect(300, 495, 78, 460),
			want:   OutcomeNone,
		},
		{
			name:   "hits top tower",
			top:    core.NewRect(60, -100, 78, 460),
			bottom: core.NewRect(60, 530, 78, 460),
			want:   OutcomeCollided,
		},
		{
			name:   "hits bottom tower",
			top:    core.NewRect(60, -300, 78, 460),
			bottom: core.NewRect(60, 380, 78, 460),
			want:   OutcomeCollided,
		},
		{
			name:   "inside gap",
			top:    core.NewRect(60, -135, 78, 460),
			bottom: core.NewRect(60, 495, 78, 460),
			want:   OutcomeNone,
		},
		{
			name:   "right edge left of player",
			top:    core.NewRect(-30, -135, 78, 460),
			bottom: core.NewRect(-30, 495, 78, 460),
			want:   OutcomePassed,
		},
		{
			name:   "right edge exactly at player x",
			top:    core.NewRect(-28, -135, 78, 460),
			bottom: core.NewRect(-28, 495, 78, 460),
			want:   OutcomeNone,
		},
		{
			name:   "already passed",
			top:    core.NewRect(-30, -135, 78, 460),
			bottom: core.NewRect(-30, 495, 78, 460),
			passed: true,
			want:   OutcomeNone,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Evaluate(player, tc.top, tc.bottom, tc.passed); got != tc.want {
				t.Errorf("Evaluate() = %v, expected %v", got, tc.want)
			}
		})
	}
}
