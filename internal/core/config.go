package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic setup.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Ticks per second (default 30)
	Seed     int64  // RNG seed for colour relabelling
	Level    string // Level ID to start with; empty means the first level
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level  string // Current level ID
	Moves  int    // Moves currently standing
	Par    int    // Target move count of the level
	Solved bool   // Whether the current level is solved
	Paused bool   // Whether the game is paused
	Quit   bool   // Whether the player asked to leave
}

// Bonus reports whether a solved level was finished within par.
func (s GameState) Bonus() bool {
	return s.Solved && s.Moves <= s.Par
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	// Solved is set on the tick the level became solved.
	Solved bool
}
