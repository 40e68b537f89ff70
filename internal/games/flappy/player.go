package flappy

import (
	"github.com/vovakirdan/towerflap/internal/config"
	"github.com/vovakirdan/towerflap/internal/core"
)

// Player kinematics constants. All values are per tick.
const (
	PlayerX      = 50  // Fixed horizontal position; the world scrolls instead
	PlayerStartY = 350 // Initial vertical position
	StartGravity = 10  // Initial fall rate
	GravityStep  = 0.2 // Added to the fall rate every falling tick
	JumpSpeed    = 10  // Jump counter reset value
	JumpImpulse  = 17  // Impulse budget recorded by Jump
	JumpGravity  = 5   // Softer fall rate after a jump
	CeilingDrift = 3   // Downward push when touching the ceiling
	FloorMargin  = 30  // Distance of the floor from the canvas bottom
	FloorY       = CanvasH - FloorMargin
)

// SpriteState selects which player sprite is active.
// The active sprite decides the player's bounding box.
type SpriteState int

const (
	SpriteNormal SpriteState = iota
	SpriteFlap
	SpriteDead
)

// String returns a human-readable name for the sprite state.
func (s SpriteState) String() string {
	switch s {
	case SpriteNormal:
		return "normal"
	case SpriteFlap:
		return "flap"
	case SpriteDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Player holds the vertical kinematics of the player sprite.
type Player struct {
	X                    int
	Y                    float64
	VerticalVelocity     float64 // Jump counter; subtracted from Y while jumping
	GravityAccel         float64 // Fall rate; grows by GravityStep while falling
	Jumping              bool
	JumpImpulseRemaining int
	Dead                 bool
	Sprite               SpriteState
}

// NewPlayer returns a player at its starting position.
func NewPlayer() Player {
	return Player{
		X:                PlayerX,
		Y:                PlayerStartY,
		VerticalVelocity: JumpSpeed,
		GravityAccel:     StartGravity,
		Sprite:           SpriteNormal,
	}
}

// Jump restarts the jump arc. It is not additive: every call resets the
// counter and the fall rate regardless of the current motion.
func (p *Player) Jump() {
	if p.Dead {
		return
	}
	p.Jumping = true
	p.JumpImpulseRemaining = JumpImpulse
	p.VerticalVelocity = JumpSpeed
	p.GravityAccel = JumpGravity
}

// Advance moves the player by one tick.
//
// While jumping the counter is decremented and subtracted from Y, so the
// player rises fast, slows, then falls faster and faster once the counter
// goes negative. Jumping only ends at the ceiling.
func (p *Player) Advance() {
	switch {
	case p.Dead:
		p.Sprite = SpriteDead
		// Keep falling until resting on the floor
		if p.Y < FloorY {
			p.Y += p.GravityAccel
		}
	case p.Y > 0:
		if p.Jumping {
			p.Sprite = SpriteFlap
			p.VerticalVelocity--
			p.Y -= p.VerticalVelocity
		} else {
			p.GravityAccel += GravityStep
			p.Y += p.GravityAccel
		}
	default:
		p.Jumping = false
		p.Y += CeilingDrift
	}
}

// CheckFloor marks the player dead once it reaches the floor.
// Returns true if this call killed the player.
func (p *Player) CheckFloor() bool {
	if p.Y >= FloorY && !p.Dead {
		p.Dead = true
		return true
	}
	return false
}

// BoundingBox returns the collision rectangle for the active sprite.
func (p Player) BoundingBox(sprites config.Sprites) core.Rect {
	return core.RectAt(p.X, int(p.Y), p.spriteSize(sprites))
}

func (p Player) spriteSize(sprites config.Sprites) core.Size {
	switch p.Sprite {
	case SpriteFlap:
		return sprites.PlayerFlap
	case SpriteDead:
		return sprites.PlayerDead
	default:
		return sprites.PlayerNormal
	}
}
