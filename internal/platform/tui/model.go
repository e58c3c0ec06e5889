package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bunny-catch/internal/core"
	"github.com/vovakirdan/bunny-catch/internal/games/catch"
	"github.com/vovakirdan/bunny-catch/internal/storage"
)

// holdWindow is how long a movement key counts as held after its last press.
// Terminals report no key-up, so key repeat keeps re-arming it.
const holdWindow = 150 * time.Millisecond

// ScoreStore persists finished runs. *storage.Store implements it.
type ScoreStore interface {
	SaveRun(run storage.Run) (int64, error)
	BestOverall() (int, error)
}

// Options configures the front end. Zero values are valid.
type Options struct {
	Store  ScoreStore  // Nil disables persistence
	Logger *log.Logger // Nil discards log output
	Bell   io.Writer   // Receives a BEL on catches and game over; nil for silence
}

// Model is the Bubble Tea model for running a Bunny Catch session.
type Model struct {
	game   *catch.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   *KeyMapper
	help   help.Model
	store  ScoreStore
	logger *log.Logger
	bell   io.Writer
	now    func() time.Time

	heldLeft  time.Time // Movement held until these instants
	heldRight time.Time
	lastTick  time.Time
	lastMode  catch.Mode

	scoreSaved bool // Whether the current run has been saved
	quitting   bool
	openScores bool // True if user pressed Tab for the scoreboard
}

// NewModel creates a Bubble Tea model driving game. The game's high score is
// seeded from the store when one is configured.
func NewModel(game *catch.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	if opts.Store != nil {
		best, err := opts.Store.BestOverall()
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		} else {
			game.SeedHighScore(best)
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:   cfg,
		keys:     NewKeyMapper(),
		help:     h,
		store:    opts.Store,
		logger:   logger,
		bell:     opts.Bell,
		now:      time.Now,
		lastMode: game.Mode(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.IsScores(msg) && m.game.Mode() == catch.ModeMenu {
		m.openScores = true
		return m, tea.Quit
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionMoveLeft:
		m.heldLeft = m.now().Add(holdWindow)
		m.heldRight = time.Time{}
	case core.ActionMoveRight:
		m.heldRight = m.now().Add(holdWindow)
		m.heldLeft = time.Time{}
	default:
		m.game.HandleInput(action)
		m.noteMode()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick with the wall time since the last one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	if m.game.Mode() == catch.ModePlaying {
		if now.Before(m.heldLeft) {
			m.game.HandleInput(core.ActionMoveLeft)
		}
		if now.Before(m.heldRight) {
			m.game.HandleInput(core.ActionMoveRight)
		}
	}

	result := m.game.Tick(dt)
	m.logEvents(result)
	m.noteMode()

	if result.Mode == catch.ModeGameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// noteMode logs mode changes and resets per-run state when a run starts.
func (m *Model) noteMode() {
	mode := m.game.Mode()
	if mode == m.lastMode {
		return
	}
	m.logger.Debug("mode changed", "from", m.lastMode, "to", mode, "level", m.game.Level())
	if m.lastMode == catch.ModeMenu && mode == catch.ModePlaying {
		m.scoreSaved = false
	}
	m.heldLeft = time.Time{}
	m.heldRight = time.Time{}
	m.lastMode = mode
}

// logEvents reports simulation events to the log and the bell.
func (m *Model) logEvents(result catch.TickResult) {
	for _, e := range result.Events {
		m.logger.Debug("event", "type", e.Type, "kind", e.Kind, "x", int(e.X), "score", result.Score)
		switch e.Type {
		case catch.EventCaught, catch.EventHazardCaught, catch.EventMissed:
			m.ring()
		}
	}
	if result.Spawn == catch.SpawnBlocked {
		m.logger.Debug("spawn blocked", "objects", len(m.game.Snapshot().Objects))
	}
}

func (m *Model) ring() {
	if m.bell == nil {
		return
	}
	//nolint:errcheck // Best-effort sound cue
	m.bell.Write([]byte{'\a'})
}

// saveRun records the finished run once.
func (m *Model) saveRun() {
	snap := m.game.Snapshot()
	m.logger.Info("game over",
		"level", snap.Level,
		"score", snap.Score,
		"reason", snap.Reason,
		"new_high", snap.NewHighScore,
		"run_time", snap.RunTime.Round(time.Millisecond),
	)

	if m.store == nil {
		return
	}
	run := storage.Run{
		Level:    snap.Level.String(),
		Score:    snap.Score,
		Reason:   snap.Reason.String(),
		Duration: snap.RunTime,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawScene(m.screen, m.game.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".bunny", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bunny_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.openScores {
		return ""
	}

	DrawScene(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// WantsScores returns true if the user asked for the scoreboard.
func (m Model) WantsScores() bool {
	return m.openScores
}

// Run starts the Bubble Tea program for game. It returns true when the user
// left for the scoreboard rather than quitting.
func Run(game *catch.Game, cfg core.RuntimeConfig, opts Options) (wantsScores bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.WantsScores(), nil
}
