package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DeltaMs returns the elapsed milliseconds represented by one tick.
func (c RuntimeConfig) DeltaMs() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1000.0 / float64(rate)
}

// Cue identifies a sound the game wants played.
type Cue int

const (
	CueJump Cue = iota
	CueHit
	CueProgress
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueHit:
		return "hit"
	case CueProgress:
		return "progress"
	default:
		return "unknown"
	}
}

// GameState is the summary a frontend needs after each tick.
type GameState struct {
	Score     int
	HighScore int
	Mode      string // "intro", "rollout", "running" or "ended"
	GameOver  bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Sounds scheduled during the tick, in order
}

// Game is what a frontend drives. Implementations hold pure simulation
// logic; the platform handles input mapping, timing, audio and display.
type Game interface {
	// ID returns a stable identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh session. Restarting after a game over is an
	// input edge handled by Step, not a Reset.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *Screen)

	// State returns the current summary.
	State() GameState
}
