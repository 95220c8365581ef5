package internal

import (
	"fmt"
	"math"
)

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, points that sit on an edge flicker in and out of the
// shape depending on how the cross products happened to round.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Sign of x, where anything within Tolerance of zero counts as zero.
func Sign(x float64) int {
	switch {
	case Equal(x, 0):
		return 0
	case x < 0:
		return -1
	}
	return 1
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Z component of the 3D cross product of the two vectors. Positive when q is
// counterclockwise from p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Linear interpolation from p (t = 0) to q (t = 1).
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Approximate equality. Points are never compared bitwise.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// If two points have the same Y value (within tolerance), the one with the
// smaller X value is "lower". This simulates a slightly rotated coordinate
// system, so that crossing counts never have to deal with horizontal rays
// grazing a vertex.
func (p Point) Below(otherPoint Point) bool {
	if Equal(p.Y, otherPoint.Y) {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p Point) Above(otherPoint Point) bool {
	return !p.Below(otherPoint)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Bounding box of a set of points. An empty set gives an inverted box that
// contains nothing.
func BoundsOf(points ...Point) Rect {
	r := Rect{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range points {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Inclusive, with tolerance, so that boundary points of a shape are never
// rejected by its bounding box.
func (r Rect) Contains(p Point) bool {
	return p.X > r.Min.X-Tolerance && p.X < r.Max.X+Tolerance &&
		p.Y > r.Min.Y-Tolerance && p.Y < r.Max.Y+Tolerance
}

// Grow the box by a margin on every side.
func (r Rect) Pad(margin float64) Rect {
	return Rect{
		Min: Point{r.Min.X - margin, r.Min.Y - margin},
		Max: Point{r.Max.X + margin, r.Max.Y + margin},
	}
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}
