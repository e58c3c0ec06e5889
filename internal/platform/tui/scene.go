package tui

import (
	"fmt"

	"github.com/vovakirdan/bunny-catch/internal/core"
	"github.com/vovakirdan/bunny-catch/internal/games/catch"
)

// Scene glyphs
const (
	glyphNormal = '●'
	glyphHazard = '✹'
	glyphPaddle = '▀'
)

// panelLine is one line of a centred overlay panel.
type panelLine struct {
	text  string
	color core.Color
}

// fieldView maps field units onto the inner cells of the playfield box.
type fieldView struct {
	x, y, w, h     int // Inner cell area
	fieldW, fieldH float64
}

// newFieldView returns the view for a screen, leaving row 0 for the HUD.
func newFieldView(s *core.Screen, fieldW, fieldH float64) fieldView {
	return fieldView{
		x:      1,
		y:      2,
		w:      max(s.Width()-2, 1),
		h:      max(s.Height()-3, 1),
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

// col converts a horizontal field coordinate to a screen column.
func (v fieldView) col(fx float64) int {
	c := int(fx / v.fieldW * float64(v.w))
	return v.x + core.Clamp(c, 0, v.w-1)
}

// row converts a vertical field coordinate to a screen row, or -1 when it lies
// outside the field.
func (v fieldView) row(fy float64) int {
	if fy < 0 || fy >= v.fieldH {
		return -1
	}
	r := int(fy / v.fieldH * float64(v.h))
	return v.y + core.Clamp(r, 0, v.h-1)
}

// DrawScene renders a snapshot into s.
func DrawScene(s *core.Screen, snap catch.Snapshot) {
	s.Clear()
	if s.Width() < 20 || s.Height() < 8 {
		s.DrawText(0, 0, "Terminal too small")
		return
	}

	drawHUD(s, snap)
	s.DrawBox(0, 1, s.Width(), s.Height()-1, core.ColorGray)

	view := newFieldView(s, snap.FieldW, snap.FieldH)
	if snap.Mode != catch.ModeMenu {
		drawObjects(s, view, snap)
		drawPaddle(s, view, snap.Player)
	}

	switch snap.Mode {
	case catch.ModeMenu:
		drawPanel(s, menuPanel(snap))
	case catch.ModePaused:
		drawPanel(s, []panelLine{
			{"PAUSED", core.ColorYellow},
			{"", core.ColorDefault},
			{"p to resume", core.ColorGray},
		})
	case catch.ModeGameOver:
		drawPanel(s, gameOverPanel(snap))
	}
}

func drawHUD(s *core.Screen, snap catch.Snapshot) {
	left := fmt.Sprintf(" Score: %d   Best: %d", snap.Score, snap.HighScore)
	s.DrawTextColored(0, 0, left, core.ColorWhite)

	if snap.Mode == catch.ModeMenu {
		return
	}
	right := fmt.Sprintf("Level: %s ", levelTitle(snap.Level))
	s.DrawTextColored(s.Width()-len([]rune(right)), 0, right, levelColor(snap.Level))
}

func drawObjects(s *core.Screen, view fieldView, snap catch.Snapshot) {
	for _, o := range snap.Objects {
		r := view.row(o.Y + o.Radius)
		if r < 0 {
			continue
		}
		c := view.col(o.X)
		if o.Kind == catch.KindHazard {
			s.SetColored(c, r, glyphHazard, core.ColorBrightRed)
			continue
		}
		s.SetColored(c, r, glyphNormal, levelColor(snap.Level))
	}
}

func drawPaddle(s *core.Screen, view fieldView, p core.Rect) {
	r := view.row(p.Y)
	if r < 0 {
		return
	}
	from := view.col(p.X)
	to := view.col(p.Right() - 1)
	s.DrawHLine(from, r, to-from+1, glyphPaddle, core.ColorBlue)
}

func menuPanel(snap catch.Snapshot) []panelLine {
	lines := []panelLine{
		{"BUNNY CATCH", core.ColorCyan},
		{"", core.ColorDefault},
		{"Catch every carrot,", core.ColorWhite},
		{"dodge the bombs.", core.ColorWhite},
		{"", core.ColorDefault},
		{"[1] Easy    [2] Hard", core.ColorYellow},
		{"[tab] Scores  [q] Quit", core.ColorGray},
	}
	if snap.HighScore > 0 {
		lines = append(lines,
			panelLine{"", core.ColorDefault},
			panelLine{fmt.Sprintf("Best: %d", snap.HighScore), core.ColorGreen},
		)
	}
	return lines
}

func gameOverPanel(snap catch.Snapshot) []panelLine {
	reason := "A carrot hit the ground"
	if snap.Reason == catch.ReasonHazardCaught {
		reason = "You caught a bomb"
	}

	lines := []panelLine{
		{"GAME OVER", core.ColorBrightRed},
		{reason, core.ColorGray},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite},
	}
	if snap.NewHighScore {
		lines = append(lines, panelLine{"New high score!", core.ColorBrightGreen})
	} else {
		lines = append(lines, panelLine{fmt.Sprintf("Best: %d", snap.HighScore), core.ColorWhite})
	}
	return append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{"enter to continue", core.ColorGray},
	)
}

// drawPanel draws a boxed overlay centred on the screen.
func drawPanel(s *core.Screen, lines []panelLine) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	width += 6
	height := len(lines) + 2

	x := (s.Width() - width) / 2
	y := (s.Height() - height) / 2

	s.FillRect(x, y, width, height, ' ')
	s.DrawBox(x, y, width, height, core.ColorWhite)
	for i, l := range lines {
		lx := x + (width-len([]rune(l.text)))/2
		s.DrawTextColored(lx, y+1+i, l.text, l.color)
	}
}

func levelTitle(l catch.Level) string {
	if l == catch.LevelHard {
		return "Hard"
	}
	return "Easy"
}

func levelColor(l catch.Level) core.Color {
	if l == catch.LevelHard {
		return core.ColorRed
	}
	return core.ColorOrange
}
