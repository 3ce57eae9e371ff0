package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second
	Seed     int64 // RNG seed; 0 means the host picks one from the clock
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 30 ticks
// per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is what a game reports to the host after every step.
type GameState struct {
	Score    int  // Progress counter persisted by the host
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
