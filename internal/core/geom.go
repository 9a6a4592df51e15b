// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal platform. It has no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Vec2) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}

// RectF is an axis-aligned rectangle in world units.
// (X, Y) is the top-left corner; Y grows downward.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a world rectangle with the given position and dimensions.
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

// ClosestPoint returns the point of the rectangle nearest to p.
// Each axis is clamped independently; a point inside maps to itself.
func (r RectF) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: ClampF(p.X, r.X, r.Right()),
		Y: ClampF(p.Y, r.Y, r.Bottom()),
	}
}

// CircleIntersectsRect reports whether a circle overlaps a rectangle.
// Touching exactly at distance == radius does not count as overlap.
func CircleIntersectsRect(center Vec2, radius float64, r RectF) bool {
	return Distance(center, r.ClosestPoint(center)) < radius
}

// Rect is an axis-aligned box in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new cell rectangle with the given position and dimensions.
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
