package internal

import (
	"fmt"
	"strings"
)

// Point containment for arbitrary quadrilaterals.
//
// Four points are either in convex position (none of them lies in the triangle
// of the other three) or not. In convex position the quadrilateral is either
// an ordinary convex shape, or a "bow-tie" whose opposite edges cross. Out of
// convex position, exactly one vertex sits inside the triangle of the others,
// and the quadrilateral is a simple concave shape with its reflex angle at
// that vertex. Anything else has collinear or coincident vertices, and there
// is no meaningful answer.

type ShapeKind int

const (
	Convex ShapeKind = iota
	Crossed
	Concave
)

func (k ShapeKind) String() string {
	switch k {
	case Convex:
		return "convex"
	case Crossed:
		return "crossed"
	case Concave:
		return "concave"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// The derived topology of a quadrilateral, along with the two triangles that
// cover it.
type Shape struct {
	Kind          ShapeKind
	Quadrilateral Quadrilateral
	// Index (0-3) of the vertex with the reflex angle. Only set for concave shapes.
	ReflexVertex int
	// Where the edges cross. Only set for crossed shapes.
	Crossing Point
	// Convex: split along the A–C diagonal. Concave: split along the diagonal
	// from the reflex vertex. Crossed: the two lobes either side of Crossing.
	// Every triangle is counterclockwise, whatever the winding of the
	// quadrilateral.
	Triangles [2]Triangle
}

func (q Quadrilateral) A() Point { return q[0] }
func (q Quadrilateral) B() Point { return q[1] }
func (q Quadrilateral) C() Point { return q[2] }
func (q Quadrilateral) D() Point { return q[3] }

// Vertex by circular index, so q.Vertex(-1) is D and q.Vertex(4) is A.
func (q Quadrilateral) Vertex(i int) Point {
	return q[CircularIndex(i, len(q))]
}

// The edge starting at vertex i.
func (q Quadrilateral) Edge(i int) Segment {
	return Segment{q.Vertex(i), q.Vertex(i + 1)}
}

// Relabel the quadrilateral so that vertex n becomes A. The polygon itself is
// unchanged.
func (q Quadrilateral) Rotate(n int) Quadrilateral {
	return Quadrilateral{q.Vertex(n), q.Vertex(n + 1), q.Vertex(n + 2), q.Vertex(n + 3)}
}

// Average of the four vertices.
func (q Quadrilateral) Centroid() Point {
	var sum Point
	for _, p := range q {
		sum = sum.Add(p)
	}
	return sum.Scale(0.25)
}

func (q Quadrilateral) Bounds() Rect {
	return BoundsOf(q[:]...)
}

func (q Quadrilateral) Polygon() Polygon {
	return Polygon{Points: q[:]}
}

func (q Quadrilateral) String() string {
	parts := make([]string, len(q))
	for i, p := range q {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Quadrilateral{%s}", strings.Join(parts, ", "))
}

// The triangle made by every vertex except i.
func (q Quadrilateral) triangleWithout(i int) Triangle {
	return Triangle{q.Vertex(i + 1), q.Vertex(i + 2), q.Vertex(i + 3)}
}

// Convex position: no vertex lies within, or on the boundary of, the triangle
// made by the other three. Equivalently, no interior angle exceeds 180°.
// Collinear or coincident vertices always fail this.
func (q Quadrilateral) IsConvex() bool {
	for i := range q {
		if q.triangleWithout(i).ContainsPoint(q[i]) {
			return false
		}
	}
	return true
}

// Is vertex i the reflex vertex? It must sit strictly inside the triangle of
// the other three, which puts it on the same side of the diagonal through its
// neighbors as the opposite vertex.
func (q Quadrilateral) IsConcaveAt(i int) bool {
	return q.triangleWithout(i).StrictlyContainsPoint(q.Vertex(i))
}

// Look for a self-intersection. Edges A–D and B–C are tried first, then A–B
// and C–D. The lobes are built from the crossing point and the two edges that
// did not cross.
func (q Quadrilateral) crossing() (x Point, lobes [2]Triangle, ok bool) {
	a, b, c, d := q[0], q[1], q[2], q[3]
	if hit := SegmentIntersection(Segment{a, d}, Segment{b, c}); hit.Kind == OneIntersection {
		x = hit.Points[0]
		return x, [2]Triangle{{a, b, x}, {c, d, x}}, true
	}
	if hit := SegmentIntersection(Segment{a, b}, Segment{c, d}); hit.Kind == OneIntersection {
		x = hit.Points[0]
		return x, [2]Triangle{{b, c, x}, {d, a, x}}, true
	}
	return Point{}, lobes, false
}

// Derive the topology of the quadrilateral. Panics with an
// *InvariantViolation when no case applies, or when a vertex is NaN or
// infinite.
func (q Quadrilateral) Classify() Shape {
	for i, v := range q {
		if !v.IsFinite() {
			panic(invariantViolationf(q, "vertex %c of %v is not finite", 'A'+i, q))
		}
	}

	if q.IsConvex() {
		if x, lobes, ok := q.crossing(); ok {
			return Shape{
				Kind:          Crossed,
				Quadrilateral: q,
				Crossing:      x,
				Triangles:     [2]Triangle{lobes[0].CCW(), lobes[1].CCW()},
			}
		}
		return Shape{
			Kind:          Convex,
			Quadrilateral: q,
			Triangles: [2]Triangle{
				Triangle{q.A(), q.B(), q.C()}.CCW(),
				Triangle{q.A(), q.C(), q.D()}.CCW(),
			},
		}
	}

	for i := range q {
		if !q.IsConcaveAt(i) {
			continue
		}
		v := q[i]
		return Shape{
			Kind:          Concave,
			Quadrilateral: q,
			ReflexVertex:  i,
			Triangles: [2]Triangle{
				Triangle{v, q.Vertex(i + 1), q.Vertex(i + 2)}.CCW(),
				Triangle{v, q.Vertex(i + 2), q.Vertex(i + 3)}.CCW(),
			},
		}
	}

	panic(invariantViolationf(q, "quadrilateral %v is neither convex nor concave at any vertex", q))
}

// Inside or on the boundary. Panics with an *InvariantViolation if the
// quadrilateral cannot be classified.
func (q Quadrilateral) ContainsPoint(p Point) bool {
	return q.Classify().ContainsPoint(p)
}

// A NaN or infinite point is never contained.
func (s Shape) ContainsPoint(p Point) bool {
	if !p.IsFinite() {
		return false
	}
	switch s.Kind {
	case Convex:
		// Inside every edge, using the vertex across the diagonal as the
		// reference for which side is inside
		q := s.Quadrilateral
		for i := range q {
			edge := q.Edge(i)
			if !SameSideOfLine(p, q.Vertex(i+2), edge.Start, edge.End) {
				return false
			}
		}
		return true
	case Crossed, Concave:
		return s.Triangles[0].ContainsPoint(p) || s.Triangles[1].ContainsPoint(p)
	}
	fatalf(s.Quadrilateral, "invalid shape kind: %v", s.Kind)
	return false
}

// Whether the vertices run counterclockwise. A crossed quadrilateral has one
// lobe of each winding, so this only means anything for the other kinds.
func (s Shape) IsCCW() bool {
	return IsCCW(s.Quadrilateral.Polygon())
}

// Area actually enclosed. For a crossed quadrilateral both lobes count as
// positive, unlike the shoelace formula, which would cancel them out.
func (s Shape) Area() float64 {
	return Area(s.Triangles[0]) + Area(s.Triangles[1])
}
