package core

import "time"

// Default timing for the game loop.
const (
	DefaultTick        = 100 * time.Millisecond // Sleep between ticks
	DefaultPollTimeout = 10 * time.Millisecond  // Bounded wait for a key event
)

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW     int           // Screen width in characters
	ScreenH     int           // Screen height in characters
	Tick        time.Duration // Fixed sleep between ticks
	PollTimeout time.Duration // Input poll timeout per tick
	Seed        int64         // RNG seed for deterministic gameplay
	God         bool          // Player is restored to Alive after every step
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:     80,
		ScreenH:     24,
		Tick:        DefaultTick,
		PollTimeout: DefaultPollTimeout,
		Seed:        0, // 0 means use current time in platform layer
	}
}
