package core

import "time"

// RuntimeConfig contains configuration passed to the front end and simulation
// at initialization. Used to adapt to the terminal size and for deterministic runs.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// FrameDuration returns the wall-clock length of one tick.
func (c RuntimeConfig) FrameDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
