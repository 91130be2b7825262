package core

// Color is a foreground color for a screen cell.
// The platform maps it to ANSI 256-color codes.
type Color uint8

// Palette used by the runner.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
)
