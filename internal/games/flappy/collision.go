package flappy

import "github.com/vovakirdan/towerflap/internal/core"

// Outcome is the result of evaluating the player against the tower pair.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCollided
	OutcomePassed
)

// Evaluate checks the player rect against both tower rects.
// A collision wins over a pass. A pass is reported only while the pair has
// not been passed and its right edge is left of the player's x. All checks
// use the same rects.
func Evaluate(player, top, bottom core.Rect, passed bool) Outcome {
	if player.Intersects(top) || player.Intersects(bottom) {
		return OutcomeCollided
	}
	if !passed && top.Right() < player.X {
		return OutcomePassed
	}
	return OutcomeNone
}
