package core

// Color is a foreground color for a screen cell. The terminal host maps it
// to an ANSI 256-color code.
type Color uint8

// Palette available to games.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorPink
	ColorGray
	ColorBrightWhite
)
