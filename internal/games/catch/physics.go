package catch

import (
	"time"

	"github.com/vovakirdan/bunny-catch/internal/config"
)

// MaxTickSpan is the longest wall time a single tick simulates. Longer ticks
// after a stall are clamped so objects cannot tunnel through the paddle.
const MaxTickSpan = 100 * time.Millisecond

// tickSpan normalises a tick's wall time: non-positive dt counts as one frame
// and stalls are clamped to MaxTickSpan.
func tickSpan(dt time.Duration, cfg config.CatchConfig) time.Duration {
	if dt <= 0 {
		return cfg.FrameDuration()
	}
	if dt > MaxTickSpan {
		return MaxTickSpan
	}
	return dt
}

// framesFor converts a tick's wall-clock duration to simulation frames.
func framesFor(dt time.Duration, cfg config.CatchConfig) float64 {
	return float64(tickSpan(dt, cfg)) / float64(cfg.FrameDuration())
}

// stepPhysics moves the paddle from held input and advances every object.
// Objects leaving the bottom stay in the slice; the resolver removes them.
func stepPhysics(player *Player, objects []*FallingObject, dir int, frames float64, cfg config.CatchConfig) {
	player.Move(dir, frames, cfg.Field.Width)

	for _, o := range objects {
		o.Advance(frames, cfg.Field.Width, cfg.Field.Height)
	}
}
