package internal

import (
	"fmt"
	"math"
)

type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	// The segments meet at a single point.
	OneIntersection
	// The segments are collinear and overlap along a stretch of positive
	// length. The two points are the ends of the overlap.
	TwoIntersections
	// The segments are the same segment.
	InfiniteIntersections
)

func (k IntersectionKind) String() string {
	switch k {
	case NoIntersection:
		return "none"
	case OneIntersection:
		return "one"
	case TwoIntersections:
		return "two"
	case InfiniteIntersections:
		return "infinite"
	}
	return fmt.Sprintf("IntersectionKind(%d)", int(k))
}

// Result of intersecting two segments. Points[0] is set for every kind except
// NoIntersection; Points[1] is set for TwoIntersections and
// InfiniteIntersections.
type Intersection struct {
	Kind   IntersectionKind
	Points [2]Point
}

// Direction vector from start to end
func (s Segment) Vector() Point {
	return s.End.Sub(s.Start)
}

func (s Segment) PointAt(t float64) Point {
	return s.Start.Lerp(s.End, t)
}

func (s Segment) IsDegenerate() bool {
	return s.Start.Equals(s.End)
}

func (s Segment) Top() Point {
	if s.Start.Above(s.End) {
		return s.Start
	}
	return s.End
}

func (s Segment) Bottom() Point {
	if s.Start.Below(s.End) {
		return s.Start
	}
	return s.End
}

// Same endpoints, in either order.
func (s Segment) Equals(other Segment) bool {
	return (s.Start.Equals(other.Start) && s.End.Equals(other.End)) ||
		(s.Start.Equals(other.End) && s.End.Equals(other.Start))
}

// Is the segment to the right of the point? The segment is treated as the
// infinite line through it, oriented upward.
func (s Segment) IsRightOf(p Point) bool {
	return Orientation(p, s.Bottom(), s.Top()) > 0
}

// Does the point lie on the segment, endpoints included?
func (s Segment) ContainsPoint(p Point) bool {
	if s.IsDegenerate() {
		return s.Start.Equals(p)
	}
	if Orientation(p, s.Start, s.End) != 0 {
		return false
	}
	r := s.Vector()
	return inUnitInterval(p.Sub(s.Start).Dot(r) / r.Dot(r))
}

// Euclidean distance from the point to the nearest point of the segment.
func (s Segment) DistanceToPoint(p Point) float64 {
	r := s.Vector()
	rr := r.Dot(r)
	if rr == 0 {
		return p.Sub(s.Start).Length()
	}
	t := math.Max(0, math.Min(1, p.Sub(s.Start).Dot(r)/rr))
	return p.Sub(s.PointAt(t)).Length()
}

// Intersect two finite segments.
//
// With p + t·r the first segment and q + u·s the second, the segments are
// parallel when r×s is zero, and collinear when (q−p)×r is zero as well.
// Otherwise they cross at t = (q−p)×s / r×s and u = (q−p)×r / r×s, which has
// to land inside both segments.
func SegmentIntersection(s1, s2 Segment) Intersection {
	if s1.IsDegenerate() || s2.IsDegenerate() {
		return degenerateIntersection(s1, s2)
	}

	p, q := s1.Start, s2.Start
	r, s := s1.Vector(), s2.Vector()
	rxs := r.Cross(s)
	qp := q.Sub(p)
	qpxr := qp.Cross(r)

	// Both tests are scaled to be independent of segment length: the first
	// compares the sine of the angle between the segments, the second the
	// distance of q from the first segment's line.
	rLength := r.Length()
	if Equal(rxs/(rLength*s.Length()), 0) {
		if !Equal(qpxr/rLength, 0) { // Parallel, never meeting
			return Intersection{Kind: NoIntersection}
		}
		return collinearIntersection(s1, s2)
	}

	t := qp.Cross(s) / rxs
	u := qpxr / rxs
	if inUnitInterval(t) && inUnitInterval(u) {
		return Intersection{
			Kind:   OneIntersection,
			Points: [2]Point{s1.PointAt(t)},
		}
	}
	return Intersection{Kind: NoIntersection}
}

// Both segments lie on the same line. Project the second onto the first and
// clip the projection to [0, 1].
func collinearIntersection(s1, s2 Segment) Intersection {
	r := s1.Vector()
	rr := r.Dot(r)
	t0 := s2.Start.Sub(s1.Start).Dot(r) / rr
	t1 := s2.End.Sub(s1.Start).Dot(r) / rr
	lo := math.Max(0, math.Min(t0, t1))
	hi := math.Min(1, math.Max(t0, t1))

	switch {
	case lo > hi+Tolerance:
		return Intersection{Kind: NoIntersection}
	case Equal(lo, hi): // Touching end to end
		return Intersection{
			Kind:   OneIntersection,
			Points: [2]Point{s1.PointAt(lo)},
		}
	case s1.Equals(s2):
		return Intersection{
			Kind:   InfiniteIntersections,
			Points: [2]Point{s1.Start, s1.End},
		}
	}
	return Intersection{
		Kind:   TwoIntersections,
		Points: [2]Point{s1.PointAt(lo), s1.PointAt(hi)},
	}
}

// At least one of the segments is a single point.
func degenerateIntersection(s1, s2 Segment) Intersection {
	var hit bool
	var point Point
	switch {
	case s1.IsDegenerate() && s2.IsDegenerate():
		hit, point = s1.Start.Equals(s2.Start), s1.Start
	case s1.IsDegenerate():
		hit, point = s2.ContainsPoint(s1.Start), s1.Start
	default:
		hit, point = s1.ContainsPoint(s2.Start), s2.Start
	}
	if !hit {
		return Intersection{Kind: NoIntersection}
	}
	return Intersection{Kind: OneIntersection, Points: [2]Point{point}}
}

func inUnitInterval(t float64) bool {
	return t > -Tolerance && t < 1+Tolerance
}
