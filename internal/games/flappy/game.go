// Package flappy implements the tower-dodging session: a player falling
// under gravity, kept up by jumps, and one pair of towers scrolling towards
// it. The package is pure; front ends feed it input frames and draw its
// snapshots.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/towerflap/internal/config"
	"github.com/vovakirdan/towerflap/internal/core"
)

// Logical canvas every position is expressed in.
const (
	CanvasW = 400
	CanvasH = 708
)

// Fixed screen-space anchors of the HUD and game-over controls.
var (
	ScoreAnchorPlaying = core.Point{X: 200, Y: 50}
	ScoreAnchorDead    = core.Point{X: 200, Y: 230}
	ScorePanelCenter   = core.Point{X: 200, Y: 220}
	RestartCenter      = core.Point{X: 200, Y: 330}
)

// State is everything a reset rebuilds.
type State struct {
	Player Player
	Towers TowerPair
	Score  int
	Phase  core.Phase
}

// reset overwrites every field of s with a fresh game.
func reset(s *State, rng *rand.Rand) {
	*s = State{
		Player: NewPlayer(),
		Towers: NewTowerPair(rng),
		Score:  0,
		Phase:  core.PhasePlaying,
	}
}

// Game is a long-lived session. It is mutated in place by Step and Reset
// and must only be used from one goroutine.
type Game struct {
	state   State
	rng     *rand.Rand
	sprites config.Sprites
	config  core.RuntimeConfig
	tick    uint64
}

// New creates a session seeded from cfg.Seed and starts the first game.
// sprites must already be validated.
func New(cfg core.RuntimeConfig, sprites config.Sprites) *Game {
	g := &Game{
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		sprites: sprites,
		config:  cfg,
	}
	g.Reset()
	return g
}

// Reset starts a new game: score 0, fresh player, towers back at the right
// edge with a new gap. The RNG and tick counter carry over.
func (g *Game) Reset() {
	reset(&g.state, g.rng)
}

// Step advances the session by one tick.
//
// Inputs are applied in order first. A quit input abandons the tick. Then the
// towers scroll, the player moves, the floor is checked and, while playing,
// collision and scoring are evaluated.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	g.tick++
	var events []core.Event

	for _, input := range in.Inputs {
		switch input.Action {
		case core.ActionJump:
			if g.state.Phase == core.PhasePlaying {
				g.state.Player.Jump()
				events = append(events, g.event(core.EventJumped))
			}
		case core.ActionRestart:
			if g.state.Phase == core.PhaseDead && g.RestartControl().ContainsPoint(input.At) {
				g.Reset()
				events = append(events, g.event(core.EventRestarted))
			}
		}
	}

	if g.state.Towers.Advance(g.rng) {
		events = append(events, g.event(core.EventRecycled))
	}
	g.state.Player.Advance()
	g.state.Player.CheckFloor()

	if g.state.Phase == core.PhasePlaying {
		if g.state.Player.Dead {
			g.state.Phase = core.PhaseDead
			events = append(events, g.event(core.EventHitFloor))
		} else {
			events = g.evaluate(events)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// evaluate runs collision and scoring on one rect snapshot.
func (g *Game) evaluate(events []core.Event) []core.Event {
	s := &g.state
	player := s.Player.BoundingBox(g.sprites)
	top := s.Towers.TopRect(g.sprites)
	bottom := s.Towers.BottomRect(g.sprites)

	switch Evaluate(player, top, bottom, s.Towers.Passed) {
	case OutcomeCollided:
		s.Player.Dead = true
		s.Phase = core.PhaseDead
		events = append(events, g.event(core.EventCollided))
	case OutcomePassed:
		s.Score++
		s.Towers.Passed = true
		events = append(events, g.event(core.EventScored))
	}
	return events
}

func (g *Game) event(k core.EventKind) core.Event {
	return core.Event{Kind: k, Tick: g.tick, Score: g.state.Score}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.state.Score,
		Phase: g.state.Phase,
		Tick:  g.tick,
	}
}

// RestartControl returns the clickable rect of the restart control.
func (g *Game) RestartControl() core.Rect {
	return core.CenteredRect(RestartCenter, g.sprites.RestartControl)
}

// Sprites returns the sprite metrics the session sizes its rects with.
func (g *Game) Sprites() config.Sprites {
	return g.sprites
}
