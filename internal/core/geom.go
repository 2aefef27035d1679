// Package core provides fundamental types and utilities for the game:
// float geometry for the simulation and a cell buffer for the renderer.
// It contains no external dependencies (especially no Bubble Tea) to keep
// the simulation pure and testable.
package core

// RectF is an axis-aligned bounding box in world units, used for collision
// detection. X and Y are the top-left corner.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a rectangle with the given position and dimensions.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Inset returns a copy of the rectangle shrunk by m on all four sides.
// An inset larger than half an extent collapses that axis to its center.
func (r RectF) Inset(m float64) RectF {
	mh := m
	if 2*mh > r.W {
		mh = r.W / 2
	}
	mv := m
	if 2*mv > r.H {
		mv = r.H / 2
	}
	return RectF{X: r.X + mh, Y: r.Y + mv, W: r.W - 2*mh, H: r.H - 2*mv}
}

// Intersects reports whether this rectangle overlaps another.
// Touching edges do not count as an overlap.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r RectF) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts an integer value to [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
