package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bunny-catch/internal/core"
	"github.com/vovakirdan/bunny-catch/internal/games/catch"
)

func playingSnapshot() catch.Snapshot {
	return catch.Snapshot{
		Mode:   catch.ModePlaying,
		Level:  catch.LevelEasy,
		Score:  3,
		Player: core.NewRect(350, 540, 100, 40),
		Objects: []catch.ObjectView{
			{Kind: catch.KindNormal, X: 400, Y: 100, Radius: 24},
			{Kind: catch.KindHazard, X: 100, Y: -48, Radius: 24}, // Not yet visible
		},
		FieldW: 800,
		FieldH: 600,
	}
}

func TestDrawScenePlaying(t *testing.T) {
	s := core.NewScreen(80, 23)
	DrawScene(s, playingSnapshot())

	// Inner field is 78x20 starting at (1, 2).
	if got := s.Get(35, 20); got != glyphPaddle {
		t.Errorf("paddle left cell = %q, want %q", got, glyphPaddle)
	}
	if got := s.Get(44, 20); got != glyphPaddle {
		t.Errorf("paddle right cell = %q, want %q", got, glyphPaddle)
	}
	if got := s.Get(45, 20); got == glyphPaddle {
		t.Error("paddle drawn past its right edge")
	}
	if cell := s.GetCell(40, 6); cell.Rune != glyphNormal || cell.Color != core.ColorOrange {
		t.Errorf("object cell = %+v, want orange %q", cell, glyphNormal)
	}
	if strings.ContainsRune(s.String(), glyphHazard) {
		t.Error("hazard above the field was drawn")
	}
	if !strings.Contains(s.Row(0), "Score: 3") || !strings.Contains(s.Row(0), "Level: Easy") {
		t.Errorf("HUD = %q", s.Row(0))
	}
}

func TestDrawSceneHardColors(t *testing.T) {
	snap := playingSnapshot()
	snap.Level = catch.LevelHard
	snap.Objects = append(snap.Objects, catch.ObjectView{Kind: catch.KindHazard, X: 700, Y: 300, Radius: 24})

	s := core.NewScreen(80, 23)
	DrawScene(s, snap)

	if cell := s.GetCell(40, 6); cell.Color != core.ColorRed {
		t.Errorf("hard normal object color = %v, want red", cell.Color)
	}
	if !strings.ContainsRune(s.String(), glyphHazard) {
		t.Error("visible hazard not drawn")
	}
}

func TestDrawScenePanels(t *testing.T) {
	tests := []struct {
		name string
		snap catch.Snapshot
		want []string
	}{
		{
			name: "menu",
			snap: catch.Snapshot{Mode: catch.ModeMenu, HighScore: 12, FieldW: 800, FieldH: 600},
			want: []string{"BUNNY CATCH", "[1] Easy", "Best: 12"},
		},
		{
			name: "paused",
			snap: catch.Snapshot{Mode: catch.ModePaused, FieldW: 800, FieldH: 600},
			want: []string{"PAUSED"},
		},
		{
			name: "game over new high",
			snap: catch.Snapshot{
				Mode: catch.ModeGameOver, Score: 9, HighScore: 9, NewHighScore: true,
				Reason: catch.ReasonHazardCaught, FieldW: 800, FieldH: 600,
			},
			want: []string{"GAME OVER", "You caught a bomb", "Score: 9", "New high score!"},
		},
		{
			name: "game over missed",
			snap: catch.Snapshot{
				Mode: catch.ModeGameOver, Score: 2, HighScore: 9,
				Reason: catch.ReasonObjectMissed, FieldW: 800, FieldH: 600,
			},
			want: []string{"GAME OVER", "carrot hit the ground", "Best: 9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(80, 23)
			DrawScene(s, tt.snap)
			out := s.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("screen missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestDrawSceneTooSmall(t *testing.T) {
	s := core.NewScreen(10, 4)
	DrawScene(s, playingSnapshot())
	if !strings.Contains(s.String(), "Terminal") {
		t.Errorf("small screen = %q", s.String())
	}
}

func TestFrameDelta(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	nominal := time.Second / 60

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want time.Duration
	}{
		{"first tick", time.Time{}, base, nominal},
		{"regular", base, base.Add(20 * time.Millisecond), 20 * time.Millisecond},
		{"stall clamped", base, base.Add(3 * time.Second), maxFrameDelta},
		{"clock went back", base, base.Add(-time.Second), nominal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameDelta(tt.prev, tt.now, 60); got != tt.want {
				t.Errorf("frameDelta = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft, false},
		{"a", runeKey('a'), core.ActionMoveLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight, false},
		{"d", runeKey('d'), core.ActionMoveRight, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"1", runeKey('1'), core.ActionSelectEasy, false},
		{"e", runeKey('e'), core.ActionSelectEasy, false},
		{"2", runeKey('2'), core.ActionSelectHard, false},
		{"h", runeKey('h'), core.ActionSelectHard, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionAcknowledge, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionAcknowledge, false},
		{"r", runeKey('r'), core.ActionAcknowledge, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey(%q) = (%s, %v), want (%s, %v)", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
			}
		})
	}

	if !km.IsScores(tea.KeyMsg{Type: tea.KeyTab}) {
		t.Error("tab should open the scoreboard")
	}
	if !km.IsScreenshot(tea.KeyMsg{Type: tea.KeyCtrlS}) {
		t.Error("ctrl+s should take a screenshot")
	}
}
