package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Fixed simulation steps per second (default 60)
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

// Phase is the lifecycle phase of a run.
type Phase int

const (
	PhaseIdle    Phase = iota // Before the first start, showing the start prompt
	PhaseRunning              // Simulation active
	PhaseEnded                // Run over, showing the final score
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Current score (floor of the accumulated score)
	Phase    Phase // Lifecycle phase
	GameOver bool  // Whether the run has ended
	Paused   bool  // Whether the game is paused
}

// StepResult is returned by Game.Advance() after each host tick.
type StepResult struct {
	State  GameState
	Steps  int     // Fixed steps executed during this tick
	Events []Event // Events emitted since the previous Advance, in order
}

// RunSummary describes a single run for journaling.
type RunSummary struct {
	Run         int     // 1-based run counter within a game instance
	Seed        int64   // Seed the run's world was generated from
	Ticks       uint64  // Fixed steps simulated
	Distance    float64 // Camera offset reached
	Score       int
	Collected   int
	Jumps       int
	DoubleJumps int
}
