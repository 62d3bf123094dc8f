// Package core provides fundamental types and utilities shared by the game
// engine and the platform layers. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "fmt"

// Point is a cell position on the board, addressed by row and column.
type Point struct {
	Row, Col int
}

// String returns the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid describes a Rows x Cols board whose edges wrap around (a torus).
type Grid struct {
	Rows int
	Cols int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(rows, cols int) Grid {
	return Grid{Rows: rows, Cols: cols}
}

// Size returns the number of cells on the grid.
func (g Grid) Size() int {
	return g.Rows * g.Cols
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Wrap maps any point back onto the grid using modular arithmetic per axis.
func (g Grid) Wrap(p Point) Point {
	return Point{Row: mod(p.Row, g.Rows), Col: mod(p.Col, g.Cols)}
}

// Step moves p by (dRow, dCol) and wraps the result onto the grid.
// Leaving through one edge re-enters on the opposite edge.
func (g Grid) Step(p Point, dRow, dCol int) Point {
	return g.Wrap(Point{Row: p.Row + dRow, Col: p.Col + dCol})
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Point {
	return Point{Row: g.Rows / 2, Col: g.Cols / 2}
}

// Cells returns every cell in row-major order.
func (g Grid) Cells() []Point {
	cells := make([]Point, 0, g.Size())
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cells = append(cells, Point{Row: r, Col: c})
		}
	}
	return cells
}

func mod(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Rect represents an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
