// Package core provides fundamental types and utilities for the river raid game.
// It contains no external dependencies (especially no terminal library) to keep
// game logic pure and testable.
package core

// Location is a cell on the screen grid.
// C is the column and L is the line, both counted from the top-left corner.
type Location struct {
	C, L int
}

// NewLocation creates a location at column c, line l.
func NewLocation(c, l int) Location {
	return Location{C: c, L: l}
}

// Hit returns true if both locations point to the same cell.
func (a Location) Hit(b Location) bool {
	return a.C == b.C && a.L == b.L
}

// HitWithMargin returns true if b lies inside a rectangle anchored at a and
// extended top lines upward, right columns rightward, bottom lines downward
// and left columns leftward. A zero margin disables the extension on that side.
func (a Location) HitWithMargin(b Location, top, right, bottom, left int) bool {
	return MarginRect(a, top, right, bottom, left).Contains(b.C, b.L)
}

// Rect represents an axis-aligned box on the grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MarginRect returns the box covered by a location and its margins.
func MarginRect(a Location, top, right, bottom, left int) Rect {
	return NewRect(a.C-left, a.L-top, left+right+1, top+bottom+1)
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
