package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState is the driver-facing summary of a running game.
type GameState struct {
	Distance int  // Rows scrolled so far
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the driver is holding ticks
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
