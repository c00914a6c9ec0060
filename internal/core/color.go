package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color styles.
type Color uint8

// Colors used when drawing the simulation.
const (
	ColorDefault Color = iota
	ColorAlive
	ColorDead
	ColorCursor
	ColorBounds
	ColorLabel
	ColorValue
	ColorRunning
	ColorPaused
)
