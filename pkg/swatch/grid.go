// Package swatch provides a small 2D grid of colored terminal cells
// used to sketch a frame's ring bands and motif positions in the
// preview UI.
//
// Each cell holds a Key (an int enum). At render time the caller
// provides a map[Key]lipgloss.Style, so the grid is decoupled from any
// specific palette. Cells render as two-column blocks to approximate a
// square aspect ratio in terminal fonts.
package swatch

// Key identifies a visual tone slot. The caller defines the mapping
// from Key to lipgloss.Style at render time.
type Key int

// Blank marks a cell with nothing painted in it. Blank cells render as
// unstyled spaces.
const Blank Key = -1

// Grid is a 2D field of tone-keyed cells.
type Grid struct {
	W, H  int
	Cells [][]Key // [row][col]
}

// New creates a Grid of the given size with every cell Blank.
func New(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{W: w, H: h, Cells: make([][]Key, h)}
	for y := range g.Cells {
		row := make([]Key, w)
		for x := range row {
			row[x] = Blank
		}
		g.Cells[y] = row
	}
	return g
}

// InBounds reports whether (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Set paints a single cell. Out-of-bounds writes are silently ignored.
func (g *Grid) Set(x, y int, k Key) {
	if g.InBounds(x, y) {
		g.Cells[y][x] = k
	}
}
