package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorGray
)

// RowColors is the palette used for block rows, top to bottom.
var RowColors = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorCyan, ColorBlue, ColorMagenta}

// RowColor returns the block color for a grid row, cycling through RowColors.
func RowColor(row int) Color {
	if row < 0 {
		row = -row
	}
	return RowColors[row%len(RowColors)]
}
