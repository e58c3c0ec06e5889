// Package catch implements the Bunny Catch simulation: a paddle catches falling
// objects and avoids falling hazards. The package holds no rendering or asset
// concepts; front ends drive it through HandleInput, Tick and Snapshot.
package catch

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/bunny-catch/internal/config"
	"github.com/vovakirdan/bunny-catch/internal/core"
)

// TickResult is returned by Tick.
type TickResult struct {
	Mode    Mode
	Score   int
	Spawn   SpawnOutcome
	Events  []Event
	Stepped bool // False when the tick was a no-op (not playing)
}

// Game is one player's session state. It is not safe for concurrent use;
// the frame loop owning it is its only mutator.
type Game struct {
	cfg     config.CatchConfig
	rng     *rand.Rand
	planner *SpawnPlanner

	mode  Mode
	level Level

	player  *Player
	objects []*FallingObject

	score     int
	highScore int
	startHigh int // High score when the run began
	reason    GameOverReason

	clock     time.Duration // Play clock, advances only while playing
	runStart  time.Duration // Play clock at the start of the current run
	tickCount uint64
	input     core.InputFrame
}

// New creates a session in the menu. The seed fixes every random draw, so two
// sessions with the same seed and inputs evolve identically.
func New(cfg config.CatchConfig, seed int64) *Game {
	rng := rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness, not security
	return &Game{
		cfg:     cfg,
		rng:     rng,
		planner: NewSpawnPlanner(cfg, rng),
		mode:    ModeMenu,
		player:  NewPlayer(cfg),
		objects: make([]*FallingObject, 0, cfg.Spawn.MaxOnScreen+2),
		input:   core.NewInputFrame(),
	}
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Level returns the level of the current or last session.
func (g *Game) Level() Level {
	return g.level
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score seen by this process.
func (g *Game) HighScore() int {
	return g.highScore
}

// Config returns the constants the session runs with.
func (g *Game) Config() config.CatchConfig {
	return g.cfg
}

// SeedHighScore raises the high score to n, e.g. from persisted scores.
// It never lowers the current value.
func (g *Game) SeedHighScore(n int) {
	if n > g.highScore {
		g.highScore = n
	}
}

// HandleInput applies a discrete action. Movement actions are held for the next
// tick and only accepted while playing; mode actions follow Transition.
// Actions not valid in the current mode are ignored.
func (g *Game) HandleInput(action core.Action) {
	switch action {
	case core.ActionMoveLeft, core.ActionMoveRight:
		if g.mode == ModePlaying {
			g.input.Set(action)
		}
		return
	}

	next, ok := Transition(g.mode, action)
	if !ok {
		return
	}

	switch {
	case g.mode == ModeMenu && next == ModePlaying:
		level, _ := levelForAction(action)
		g.start(level)
	case next == ModePaused:
		// Drop held movement so nothing replays on resume.
		g.input.Clear()
	}
	g.mode = next
}

// start begins a new session on level. The high score survives.
func (g *Game) start(level Level) {
	g.level = level
	g.score = 0
	g.startHigh = g.highScore
	g.reason = ReasonNone
	g.objects = g.objects[:0]
	g.player.Reset(g.cfg)
	g.input.Clear()
	g.tickCount = 0
	g.runStart = g.clock
	g.planner.Reset(g.clock)
}

// Tick advances the simulation by one frame of wall-clock length dt.
// Outside ModePlaying it changes nothing. A non-positive dt counts as one frame
// and dt beyond MaxTickSpan is clamped, for the play clock and physics alike.
func (g *Game) Tick(dt time.Duration) TickResult {
	if g.mode != ModePlaying {
		g.input.Clear()
		return TickResult{Mode: g.mode, Score: g.score}
	}
	dt = tickSpan(dt, g.cfg)

	g.tickCount++
	g.clock += dt
	frames := framesFor(dt, g.cfg)

	// Physics
	stepPhysics(g.player, g.objects, g.input.Direction(), frames, g.cfg)
	g.input.Clear()

	result := TickResult{Stepped: true}

	// Spawn
	obj, outcome := g.planner.Plan(g.clock, g.objects, g.level)
	result.Spawn = outcome
	if obj != nil {
		g.objects = append(g.objects, obj)
		evt := EventSpawned
		if outcome == SpawnForced {
			evt = EventForcedSpawn
		}
		result.Events = append(result.Events, Event{Type: evt, Kind: obj.Kind, X: obj.X})
	}

	// Collision and termination
	res := Resolve(g.player.Bounds(), g.objects, g.cfg.Field.Height)
	g.objects = res.Remaining
	g.addScore(res.Caught)
	result.Events = append(result.Events, res.Events...)
	if res.Reason != ReasonNone {
		g.reason = res.Reason
		g.mode = ModeGameOver
	}

	result.Mode = g.mode
	result.Score = g.score
	return result
}

// addScore adds n points and raises the high score when exceeded.
func (g *Game) addScore(n int) {
	if n <= 0 {
		return
	}
	g.score += n
	if g.score > g.highScore {
		g.highScore = g.score
	}
}
