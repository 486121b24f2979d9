package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Colors used by the pong renderer.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorGreen
	ColorYellow
	ColorRed
	ColorBrightCyan
	ColorBrightWhite
)
