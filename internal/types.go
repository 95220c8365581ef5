package internal

// All geometry here is made of plain values. Nothing is shared between calls,
// and nothing is mutated after it is built, so every routine in this package
// is safe to call from any number of goroutines.

type Point struct {
	X float64
	Y float64
}

type Segment struct {
	Start Point
	End   Point
}

type Triangle struct {
	A, B, C Point
}

// A quadrilateral is traversed A→B→C→D→A. Any four points are accepted; the
// topology (convex, crossed, concave) is derived, never stored.
type Quadrilateral [4]Point

type Polygon struct {
	Points []Point
}

// Axis aligned bounding box. Both corners are inclusive.
type Rect struct {
	Min, Max Point
}
