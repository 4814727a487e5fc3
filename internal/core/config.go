package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Target frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int           // Current score
	Cleared  int           // Blocks destroyed this round
	Ticks    int           // Simulated ticks this round
	Elapsed  time.Duration // Simulated time this round
	GameOver bool          // The ball was lost
	Won      bool          // Every block was cleared
	Paused   bool          // Whether the game is paused
}

// Finished reports whether the round has reached a terminal outcome.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Simulated is false when the tick was skipped (paused, finished, screen too small).
	Simulated bool
}
