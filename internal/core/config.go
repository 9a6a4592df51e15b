package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The simulation uses this for screen mapping and deterministic spawning.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Wall-clock ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Plain    bool  // Draw without colors
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
