package catch

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/bunny-catch/internal/config"
	"github.com/vovakirdan/bunny-catch/internal/core"
)

// SpawnOutcome describes what the planner did on a tick.
type SpawnOutcome int

const (
	SpawnIdle       SpawnOutcome = iota // Interval not yet elapsed
	SpawnSuppressed                     // Cap reached and no forced spawn due yet
	SpawnPlaced                         // New object spawned
	SpawnForced                         // New object spawned past the cap
	SpawnBlocked                        // Due, but no position satisfied the spacing
)

// String returns the outcome name.
func (o SpawnOutcome) String() string {
	switch o {
	case SpawnIdle:
		return "idle"
	case SpawnSuppressed:
		return "suppressed"
	case SpawnPlaced:
		return "placed"
	case SpawnForced:
		return "forced"
	case SpawnBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// SpawnPlanner decides when and where new objects enter the field.
type SpawnPlanner struct {
	cfg       config.CatchConfig
	policy    MotionPolicy
	rng       *rand.Rand
	interval  time.Duration
	lastSpawn time.Duration // Play-clock time of the last spawn attempt
}

// NewSpawnPlanner creates a planner drawing from rng.
func NewSpawnPlanner(cfg config.CatchConfig, rng *rand.Rand) *SpawnPlanner {
	return &SpawnPlanner{
		cfg:      cfg,
		policy:   NewMotionPolicy(cfg),
		rng:      rng,
		interval: cfg.SpawnInterval(),
	}
}

// Reset re-seeds the spawn timer so the first attempt happens one interval after now.
func (sp *SpawnPlanner) Reset(now time.Duration) {
	sp.lastSpawn = now
}

// LastSpawn returns the play-clock time of the last attempt.
func (sp *SpawnPlanner) LastSpawn() time.Duration {
	return sp.lastSpawn
}

// Plan runs one spawn decision at play-clock time now. When an object is
// produced it is returned and the caller owns it; the active slice is not modified.
func (sp *SpawnPlanner) Plan(now time.Duration, active []*FallingObject, level Level) (*FallingObject, SpawnOutcome) {
	elapsed := now - sp.lastSpawn
	if elapsed <= sp.interval {
		return nil, SpawnIdle
	}

	forced := false
	if len(active) >= sp.cfg.Spawn.MaxOnScreen {
		if elapsed <= 2*sp.interval {
			return nil, SpawnSuppressed
		}
		forced = true
	}

	// The attempt consumes the interval whether or not a position is found.
	sp.lastSpawn = now

	x, ok := sp.pickX(active)
	if !ok {
		return nil, SpawnBlocked
	}

	obj := &FallingObject{
		Kind:   sp.rollKind(),
		Level:  level,
		Radius: sp.cfg.Objects.Radius,
	}
	obj.Reset(x, sp.policy, sp.rng)

	if forced {
		return obj, SpawnForced
	}
	return obj, SpawnPlaced
}

// pickX samples candidate centers until one is far enough from every active object.
func (sp *SpawnPlanner) pickX(active []*FallingObject) (float64, bool) {
	r := sp.cfg.Objects.Radius
	lo, hi := r, sp.cfg.Field.Width-r

	for range sp.cfg.Spawn.MaxAttempts {
		x := uniform(sp.rng, lo, hi)
		if sp.isSafe(x, active) {
			return x, true
		}
	}
	return 0, false
}

// isSafe reports whether x keeps the minimum separation from all active centers.
func (sp *SpawnPlanner) isSafe(x float64, active []*FallingObject) bool {
	for _, o := range active {
		if core.AbsF(o.X-x) < sp.cfg.Spawn.MinDistance {
			return false
		}
	}
	return true
}

// rollKind draws the kind of a new object.
func (sp *SpawnPlanner) rollKind() Kind {
	if sp.rng.Float64() < sp.cfg.Objects.HazardChance {
		return KindHazard
	}
	return KindNormal
}
