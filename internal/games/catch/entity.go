package catch

import (
	"math/rand"

	"github.com/vovakirdan/bunny-catch/internal/config"
	"github.com/vovakirdan/bunny-catch/internal/core"
)

// Kind distinguishes catchable objects from hazards.
type Kind int

const (
	KindNormal Kind = iota // Scores when caught, ends the run when missed
	KindHazard             // Ends the run when caught, harmless when missed
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindHazard {
		return "hazard"
	}
	return "normal"
}

// Player is the paddle. Y is fixed for the whole session.
type Player struct {
	X      float64 // Left edge
	Y      float64 // Top edge
	Width  float64
	Height float64
	Speed  float64 // Units per frame
}

// NewPlayer creates a paddle centred horizontally near the bottom of the field.
func NewPlayer(cfg config.CatchConfig) *Player {
	p := &Player{
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Speed:  cfg.Player.Speed,
	}
	p.Reset(cfg)
	return p
}

// Reset returns the paddle to its starting position.
func (p *Player) Reset(cfg config.CatchConfig) {
	p.X = (cfg.Field.Width - p.Width) / 2
	p.Y = cfg.Field.Height - cfg.Player.BottomMargin - p.Height
}

// Bounds returns the paddle's bounding box.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Move shifts the paddle by dir*Speed*frames, clamped so the paddle never
// crosses either edge of a field boundary units wide.
func (p *Player) Move(dir int, frames, boundary float64) {
	if dir == 0 {
		return
	}
	p.X += float64(dir) * p.Speed * frames
	p.X = core.ClampF(p.X, 0, boundary-p.Width)
}

// FallingObject is a ball, carrot or bomb moving down the field.
type FallingObject struct {
	Kind   Kind
	Level  Level
	X      float64 // Horizontal center
	Y      float64 // Top edge
	VX, VY float64 // Units per frame
	Radius float64
}

// Bounds returns the object's bounding box (a square of side 2r).
func (o *FallingObject) Bounds() core.Rect {
	return core.NewRect(o.X-o.Radius, o.Y, o.Radius*2, o.Radius*2)
}

// Advance moves the object by frames worth of velocity. On the hard level the
// horizontal velocity flips when the bounds touch a side wall while moving
// toward it. Returns false once the top edge has passed fieldHeight.
func (o *FallingObject) Advance(frames, fieldWidth, fieldHeight float64) bool {
	o.Y += o.VY * frames
	o.X += o.VX * frames

	if o.Level == LevelHard {
		switch {
		case o.X-o.Radius <= 0 && o.VX < 0:
			o.X = o.Radius
			o.VX = -o.VX
		case o.X+o.Radius >= fieldWidth && o.VX > 0:
			o.X = fieldWidth - o.Radius
			o.VX = -o.VX
		}
	}

	return o.OnScreen(fieldHeight)
}

// OnScreen reports whether the top edge is still within the field.
func (o *FallingObject) OnScreen(fieldHeight float64) bool {
	return o.Y <= fieldHeight
}

// MotionPolicy draws initial velocities for a level.
type MotionPolicy struct {
	BaseFall float64 // Easy fall speed
	FallLo   float64 // Hard fall speed lower bound
	FallHi   float64 // Hard fall speed upper bound
	MaxDrift float64 // Hard horizontal speed bound
	HazardVY float64 // Fall speed multiplier for hazards
}

// NewMotionPolicy derives the policy from the configured constants.
func NewMotionPolicy(cfg config.CatchConfig) MotionPolicy {
	lo, hi := cfg.FallSpeedRange()
	return MotionPolicy{
		BaseFall: cfg.BaseFallSpeed(),
		FallLo:   lo,
		FallHi:   hi,
		MaxDrift: cfg.MaxDriftSpeed(),
		HazardVY: cfg.Objects.HazardSpeedMultiplier,
	}
}

// Reset places the object just above the top edge at spawnX and redraws its
// velocity from the policy. Hazards fall faster by the policy's multiplier.
func (o *FallingObject) Reset(spawnX float64, policy MotionPolicy, rng *rand.Rand) {
	o.X = spawnX
	o.Y = -o.Radius * 2

	if o.Level == LevelEasy {
		o.VY = policy.BaseFall
		o.VX = 0
	} else {
		o.VY = uniform(rng, policy.FallLo, policy.FallHi)
		o.VX = uniform(rng, -policy.MaxDrift, policy.MaxDrift)
	}

	if o.Kind == KindHazard && policy.HazardVY > 0 {
		o.VY *= policy.HazardVY
	}
}

// uniform returns a value drawn uniformly from [lo, hi].
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
