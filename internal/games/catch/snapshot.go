package catch

import (
	"math"
	"time"

	"github.com/vovakirdan/bunny-catch/internal/core"
)

// ObjectView is the read-only view of one falling object.
type ObjectView struct {
	Kind   Kind
	X      float64 // Center
	Y      float64 // Top edge
	VX     float64
	VY     float64
	Radius float64
}

// Snapshot is a read-only copy of the session for rendering and tests.
// It shares no memory with the Game.
type Snapshot struct {
	Tick         uint64
	Elapsed      time.Duration // Play clock
	RunTime      time.Duration // Play time of the current run
	Mode         Mode
	Level        Level
	Score        int
	HighScore    int
	NewHighScore bool // The run beat the high score it started with
	Reason       GameOverReason

	Player  core.Rect
	Objects []ObjectView

	FieldW float64
	FieldH float64
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	objects := make([]ObjectView, len(g.objects))
	for i, o := range g.objects {
		objects[i] = ObjectView{
			Kind:   o.Kind,
			X:      o.X,
			Y:      o.Y,
			VX:     o.VX,
			VY:     o.VY,
			Radius: o.Radius,
		}
	}

	return Snapshot{
		Tick:         g.tickCount,
		Elapsed:      g.clock,
		RunTime:      g.clock - g.runStart,
		Mode:         g.mode,
		Level:        g.level,
		Score:        g.score,
		HighScore:    g.highScore,
		NewHighScore: g.score > g.startHigh,
		Reason:       g.reason,
		Player:       g.player.Bounds(),
		Objects:      objects,
		FieldW:       g.cfg.Field.Width,
		FieldH:       g.cfg.Field.Height,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Elapsed)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Reason)    //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Player.X)
	h = h*31 + uint64(len(snap.Objects))

	for _, o := range snap.Objects {
		h = h*31 + uint64(o.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(o.X)
		h = h*31 + math.Float64bits(o.Y)
		h = h*31 + math.Float64bits(o.VX)
		h = h*31 + math.Float64bits(o.VY)
	}

	return h
}
