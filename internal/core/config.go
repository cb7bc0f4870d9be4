package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// FixedStep returns the tick duration in seconds implied by TickRate.
func (c RuntimeConfig) FixedStep() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Current score
	Paused bool // Whether the game is paused
	InMenu bool // Whether the game shows its title screen
}

// RunSummary describes a finished run. Endless games finish a run without
// ending the session, so this is reported alongside the step state.
type RunSummary struct {
	Score       int           // Final score of the run
	MaxHeight   int           // Highest height reached, in display units
	Perfects    int           // Number of perfect landings
	Duration    time.Duration // Wall time spent in the run
	GoalReached int           // Index of the goal cursor when the run ended
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
	Run    *RunSummary // Non-nil when a run ended during this tick
}
