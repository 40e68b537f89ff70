package flappy

import (
	"math/rand"

	"github.com/vovakirdan/towerflap/internal/config"
	"github.com/vovakirdan/towerflap/internal/core"
)

// Obstacle track constants.
const (
	TowerStartX   = CanvasW // Towers enter at the right edge
	TowerRecycleX = -100    // Below this the pair is recycled
	TowerSpeed    = 5       // Pixels scrolled left per tick
	GapHalf       = 135     // Half of the gap between the towers
	GapMidline    = 360     // Reference line the bottom tower is placed from
	MaxGapOffset  = 120     // Gap offsets are drawn from [-MaxGapOffset, MaxGapOffset]
)

// TowerPair is the single top+bottom obstacle. Both towers share X and the
// gap offset.
type TowerPair struct {
	X         float64
	GapOffset int
	Passed    bool // Whether the player has been scored for this pair
}

// NewTowerPair places a fresh pair at the right edge with a random gap.
func NewTowerPair(rng *rand.Rand) TowerPair {
	var t TowerPair
	t.recycle(rng)
	return t
}

// Advance scrolls the pair left by one tick. A pair that has scrolled past
// the recycle threshold is moved back to the right edge instead, with a new
// gap offset. Returns true if the pair was recycled.
func (t *TowerPair) Advance(rng *rand.Rand) bool {
	if t.X < TowerRecycleX {
		t.recycle(rng)
		return true
	}
	t.X -= TowerSpeed
	return false
}

func (t *TowerPair) recycle(rng *rand.Rand) {
	t.X = TowerStartX
	t.GapOffset = rng.Intn(2*MaxGapOffset+1) - MaxGapOffset
	t.Passed = false
}

// TopRect returns the collision rectangle of the top tower.
func (t TowerPair) TopRect(sprites config.Sprites) core.Rect {
	return core.RectAt(int(t.X), -GapHalf-t.GapOffset, sprites.TowerTop)
}

// BottomRect returns the collision rectangle of the bottom tower.
func (t TowerPair) BottomRect(sprites config.Sprites) core.Rect {
	return core.RectAt(int(t.X), GapMidline+GapHalf-t.GapOffset, sprites.TowerBottom)
}
