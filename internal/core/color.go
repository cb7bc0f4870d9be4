package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal color.
type Color uint8

// Palette used by the game. Cells sit on a sky-blue background.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorOrange
	ColorGrass
)
