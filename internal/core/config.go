package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to fit the terminal and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score seen by this game instance
	GameOver bool // Whether the session has ended
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
