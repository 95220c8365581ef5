package internal

import (
	"fmt"
	"math"
)

// Anything with a winding direction.
type Oriented interface {
	SignedArea() float64
}

func IsCCW(shape Oriented) bool {
	return shape.SignedArea() > 0
}

func IsCW(shape Oriented) bool {
	return shape.SignedArea() < 0
}

func Area(shape Oriented) float64 {
	return math.Abs(shape.SignedArea())
}

// Positive for counterclockwise triangles, negative for clockwise.
func (t Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

// Inside or on the boundary. Each edge is tested against the opposite vertex,
// so the winding of the triangle doesn't matter.
func (t Triangle) ContainsPoint(p Point) bool {
	return SameSideOfLine(p, t.C, t.A, t.B) &&
		SameSideOfLine(p, t.A, t.B, t.C) &&
		SameSideOfLine(p, t.B, t.C, t.A)
}

// Inside, and not touching any of the edge lines. A degenerate triangle
// contains nothing.
func (t Triangle) StrictlyContainsPoint(p Point) bool {
	return StrictlySameSideOfLine(p, t.C, t.A, t.B) &&
		StrictlySameSideOfLine(p, t.A, t.B, t.C) &&
		StrictlySameSideOfLine(p, t.B, t.C, t.A)
}

// The same triangle, wound counterclockwise.
func (t Triangle) CCW() Triangle {
	if IsCW(t) {
		return Triangle{t.A, t.C, t.B}
	}
	return t
}

func (t Triangle) Points() []Point {
	return []Point{t.A, t.B, t.C}
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{%v, %v, %v}", t.A, t.B, t.C)
}
