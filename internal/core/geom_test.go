package core

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", V(3, 4), V(3, 4), 0},
		{"3-4-5 triangle", V(0, 0), V(3, 4), 5},
		{"symmetric", V(3, 4), V(0, 0), 5},
		{"horizontal", V(-2, 1), V(8, 1), 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Distance(%v, %v) = %f, expected %f", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := NewRectF(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %f, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %f, expected 25", r.Bottom())
	}
}

func TestRectFClosestPoint(t *testing.T) {
	r := NewRectF(0, 0, 10, 10)

	tests := []struct {
		name     string
		p        Vec2
		expected Vec2
	}{
		{"inside maps to itself", V(4, 6), V(4, 6)},
		{"left of rect", V(-5, 5), V(0, 5)},
		{"below right corner", V(15, 20), V(10, 10)},
		{"above", V(5, -3), V(5, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ClosestPoint(tc.p); got != tc.expected {
				t.Errorf("ClosestPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	r := NewRectF(100, 100, 50, 200)

	tests := []struct {
		name     string
		center   Vec2
		radius   float64
		expected bool
	}{
		{"center inside", V(120, 150), 1, true},
		{"far outside", V(0, 0), 10, false},
		{"outside expanded bounds", V(89, 150), 10, false},
		{"overlapping left edge", V(95, 150), 10, true},
		{"touching exactly is not a hit", V(90, 150), 10, false},
		{"touching corner exactly", V(94, 92), 10, false},
		{"near corner inside radius", V(95, 95), 10, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleIntersectsRect(tc.center, tc.radius, r); got != tc.expected {
				t.Errorf("CircleIntersectsRect(%v, %f) = %v, expected %v", tc.center, tc.radius, got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if result := ClampF(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
