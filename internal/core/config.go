package core

// FrameRate is the native refresh rate of the handheld, rounded.
const FrameRate = 60

// RuntimeConfig contains configuration passed to the runtime at start.
type RuntimeConfig struct {
	TickRate int   // Frame ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means seed from the wall clock in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: FrameRate,
		Seed:     0,
	}
}
