// Package core provides fundamental types and utilities shared by the
// simulation engine and the terminal front end. It has no external
// dependencies (especially no Bubble Tea) to keep engine code pure and testable.
package core

import "fmt"

// Coord is a grid position. X increases to the right, Y increases downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Rect represents an axis-aligned box. Used for live-region bounds.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// OnEdge reports whether (x, y) lies on the outermost row or column of r.
func (r Rect) OnEdge(x, y int) bool {
	if !r.Contains(x, y) {
		return false
	}
	return x == r.X || x == r.Right()-1 || y == r.Y || y == r.Bottom()-1
}

// Extend returns the smallest rectangle containing both r and (x, y).
// An empty r yields the 1x1 rectangle at (x, y).
func (r Rect) Extend(x, y int) Rect {
	if r.Empty() {
		return Rect{X: x, Y: y, W: 1, H: 1}
	}
	left, top := Min(r.X, x), Min(r.Y, y)
	right, bottom := Max(r.Right(), x+1), Max(r.Bottom(), y+1)
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
