package core

import "math"

// Viewport maps the fixed logical world onto a grid of screen cells.
// Objects keep their world coordinates; only drawing is scaled.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
	// Top reserves screen rows above the playfield (HUD).
	Top int
}

// NewViewport creates a viewport for a world of the given size drawn into
// cols x rows cells, with top rows kept free for a status line.
func NewViewport(worldW, worldH float64, cols, rows, top int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Cols: cols, Rows: rows, Top: top}
}

func (v Viewport) fieldRows() int {
	return max(v.Rows-v.Top, 1)
}

// ToCell converts a world point to a cell position.
func (v Viewport) ToCell(x, y float64) (col, row int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, v.Top
	}
	col = int(math.Floor(x * float64(v.Cols) / v.WorldW))
	row = int(math.Floor(y*float64(v.fieldRows())/v.WorldH)) + v.Top
	return col, row
}

// ToRect converts a world box to the cells it covers. Every box covers at
// least one cell so small objects (the ball) never vanish when scaled down.
func (v Viewport) ToRect(b Box) Rect {
	x0, y0 := v.ToCell(b.X, b.Y)
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return NewRect(x0, y0, 1, 1)
	}
	x1 := int(math.Ceil(b.Right() * float64(v.Cols) / v.WorldW))
	y1 := int(math.Ceil(b.Bottom()*float64(v.fieldRows())/v.WorldH)) + v.Top
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}
