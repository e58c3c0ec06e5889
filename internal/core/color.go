package core

// Color is a foreground color for a screen cell.
// The front end maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the catcher scene.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorCyan
)
