package core

import (
	"strings"
)

// Cell is a single character cell of the canvas.
// The zero value is an empty cell, painted as a blank.
type Cell struct {
	Rune  rune
	Color Color
}

// Empty reports whether nothing has been drawn into the cell.
func (c Cell) Empty() bool {
	return c.Rune == 0
}

// Glyph returns the rune to print for the cell.
func (c Cell) Glyph() rune {
	if c.Rune == 0 {
		return ' '
	}
	return c.Rune
}

// Change is a cell whose content differs from what was last painted.
type Change struct {
	X, Y int
	Cell Cell
}

// CellWriter receives the cells that changed since the previous paint.
// The terminal backend implements it.
type CellWriter interface {
	WriteCell(x, y int, c Cell) error
}

// Canvas is a double-buffered character grid.
// Drawing only touches the current frame; Paint compares it with the last
// painted snapshot and emits just the cells that differ.
type Canvas struct {
	width    int
	height   int
	cells    [][]Cell
	snapshot [][]Cell
}

// NewCanvas creates a canvas with the given dimensions.
// Both frames start empty, so a blank canvas paints nothing.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:    width,
		height:   height,
		cells:    allocate(width, height),
		snapshot: allocate(width, height),
	}
}

// allocate creates grid storage filled with empty cells.
func allocate(width, height int) [][]Cell {
	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
	}
	return grid
}

// Width returns the canvas width in characters.
func (s *Canvas) Width() int {
	return s.width
}

// Height returns the canvas height in characters.
func (s *Canvas) Height() int {
	return s.height
}

// Clear resets the current frame to empty cells.
// The terminal is not touched; the next Paint erases whatever disappeared.
func (s *Canvas) Clear() {
	for y := range s.cells {
		clear(s.cells[y])
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Canvas) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Canvas) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the cell of the current frame at the given position.
// Returns an empty cell for out-of-bounds coordinates.
func (s *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond canvas bounds are clipped.
func (s *Canvas) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Color: color})
		i++
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Canvas) DrawHLine(x, y, length int, c Cell) {
	for i := 0; i < length; i++ {
		s.SetCell(x+i, y, c)
	}
}

// Changes lists the dirty cells, row by row, without painting them.
func (s *Canvas) Changes() []Change {
	var changes []Change
	for y := range s.cells {
		for x, c := range s.cells[y] {
			if c != s.snapshot[y][x] {
				changes = append(changes, Change{X: x, Y: y, Cell: c})
			}
		}
	}
	return changes
}

// Paint writes every dirty cell to w and records it as painted.
// It stops at the first write error; cells not yet written stay dirty.
// Returns the number of cells written.
func (s *Canvas) Paint(w CellWriter) (int, error) {
	written := 0
	for _, ch := range s.Changes() {
		if err := w.WriteCell(ch.X, ch.Y, ch.Cell); err != nil {
			return written, err
		}
		s.snapshot[ch.Y][ch.X] = ch.Cell
		written++
	}
	return written, nil
}

// Invalidate forgets what was painted, so the next Paint redraws every
// cell. Used after something else has drawn over the terminal.
func (s *Canvas) Invalidate() {
	for y := range s.snapshot {
		for x := range s.snapshot[y] {
			s.snapshot[y][x] = Cell{Rune: -1}
		}
	}
}

// String converts the current frame to plain text.
// Each row is joined with newlines.
func (s *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row of the current frame as a string.
func (s *Canvas) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Glyph())
	}
	return sb.String()
}
