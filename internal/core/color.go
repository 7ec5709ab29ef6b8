package core

// Color is a foreground color for a screen cell. The platform maps it to
// ANSI codes; the simulation only picks from this palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorGray
	ColorBrightYellow
	ColorBrightCyan
)
