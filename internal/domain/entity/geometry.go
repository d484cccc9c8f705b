package entity

import "math"

// ContainerBounds is a container rectangle projected onto the active axis:
// left and width for rows, top and height for columns.
type ContainerBounds struct {
	Origin float64
	Length float64
}

// Degenerate reports whether the bounds cannot be used to resolve a pointer,
// typically because the container has not been laid out yet.
func (b ContainerBounds) Degenerate() bool {
	if math.IsNaN(b.Origin) || math.IsInf(b.Origin, 0) || math.IsInf(b.Length, 0) {
		return true
	}
	return !(b.Length > 0)
}

// CellRect represents a rectangle on a cell grid (a terminal screen).
type CellRect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// Center returns the center point of the rectangle.
func (r CellRect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r CellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r CellRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Bounds projects the rectangle onto the axis of dir.
func (r CellRect) Bounds(dir LayoutDirection) ContainerBounds {
	if dir == DirectionColumn {
		return ContainerBounds{Origin: float64(r.Y), Length: float64(r.H)}
	}
	return ContainerBounds{Origin: float64(r.X), Length: float64(r.W)}
}

// Length returns the extent of the rectangle along the axis of dir.
func (r CellRect) Length(dir LayoutDirection) int {
	if dir == DirectionColumn {
		return r.H
	}
	return r.W
}
