package core

// RuntimeConfig contains configuration passed to the session at creation.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the session's position in its state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseDead
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// GameState represents the current status of a session.
type GameState struct {
	Score int    // Current score
	Phase Phase  // Playing or dead
	Tick  uint64 // Ticks simulated since the session was created
}

// GameOver reports whether the session is waiting for a restart.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseDead
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventJumped EventKind = iota
	EventScored
	EventCollided
	EventHitFloor
	EventRestarted
	EventRecycled
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJumped:
		return "jumped"
	case EventScored:
		return "scored"
	case EventCollided:
		return "collided"
	case EventHitFloor:
		return "hit_floor"
	case EventRestarted:
		return "restarted"
	case EventRecycled:
		return "recycled"
	default:
		return "unknown"
	}
}

// Event is emitted by Step so front ends can log or react without
// inspecting the session's internals.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Score int
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
	Quit   bool // A quit input arrived; the tick was abandoned
}

// Has reports whether an event of the given kind happened this tick.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
