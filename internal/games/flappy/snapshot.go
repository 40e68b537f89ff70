package flappy

import (
	"github.com/vovakirdan/towerflap/internal/core"
)

// Background identifies the backdrop to draw. There is only one.
type Background int

const BackgroundDefault Background = 0

// TowerSprite selects the top or bottom tower image.
type TowerSprite int

const (
	TowerSpriteTop TowerSprite = iota
	TowerSpriteBottom
)

// TowerView is one tower as it should be drawn.
type TowerView struct {
	Rect   core.Rect
	Sprite TowerSprite
}

// TowersView is the tower pair as it should be drawn.
type TowersView struct {
	X         float64
	GapOffset int
	Top       TowerView
	Bottom    TowerView
}

// PlayerView is the player as it should be drawn.
type PlayerView struct {
	X                int
	Y                float64
	Sprite           SpriteState
	Rect             core.Rect
	Jumping          bool
	VerticalVelocity float64
}

// GameOverView holds the extra controls shown while dead.
type GameOverView struct {
	ScorePanel     core.Rect
	RestartControl core.Rect
}

// Snapshot is an immutable picture of the session after a tick.
// Front ends render it without touching the session.
type Snapshot struct {
	Tick        uint64
	Phase       core.Phase
	Background  Background
	Towers      TowersView
	Player      PlayerView
	Score       int
	ScoreAnchor core.Point
	GameOver    *GameOverView // Nil while playing
}

// Snapshot returns the renderable state of the session.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	snap := Snapshot{
		Tick:       g.tick,
		Phase:      s.Phase,
		Background: BackgroundDefault,
		Towers: TowersView{
			X:         s.Towers.X,
			GapOffset: s.Towers.GapOffset,
			Top:       TowerView{Rect: s.Towers.TopRect(g.sprites), Sprite: TowerSpriteTop},
			Bottom:    TowerView{Rect: s.Towers.BottomRect(g.sprites), Sprite: TowerSpriteBottom},
		},
		Player: PlayerView{
			X:                s.Player.X,
			Y:                s.Player.Y,
			Sprite:           s.Player.Sprite,
			Rect:             s.Player.BoundingBox(g.sprites),
			Jumping:          s.Player.Jumping,
			VerticalVelocity: s.Player.VerticalVelocity,
		},
		Score:       s.Score,
		ScoreAnchor: ScoreAnchorPlaying,
	}

	if s.Phase == core.PhaseDead {
		snap.ScoreAnchor = ScoreAnchorDead
		snap.GameOver = &GameOverView{
			ScorePanel:     core.CenteredRect(ScorePanelCenter, g.sprites.ScorePanel),
			RestartControl: g.RestartControl(),
		}
	}

	return snap
}
