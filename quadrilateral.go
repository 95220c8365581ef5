// Point containment for arbitrary quadrilaterals.
//
// A quadrilateral here is any four points, traversed A→B→C→D→A. It may be
// convex, concave at one vertex, or self-intersecting (a "bow-tie"), and its
// topology is worked out on every call. Points on the boundary count as
// contained.
//
// Quadrilaterals with collinear or coincident vertices have no well defined
// inside. Rather than guess, every function here reports them with an
// *InvariantViolation error, which callers should handle separately from a
// plain "not contained" result.
package quadrilateral

import (
	"io"

	"github.com/osuushi/quadrilateral/internal"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Point = internal.Point
type Segment = internal.Segment
type Triangle = internal.Triangle
type Quadrilateral = internal.Quadrilateral
type Polygon = internal.Polygon
type Rect = internal.Rect
type Shape = internal.Shape
type ShapeKind = internal.ShapeKind
type Intersection = internal.Intersection
type IntersectionKind = internal.IntersectionKind
type InvariantViolation = internal.InvariantViolation

const Tolerance = internal.Tolerance

const (
	Convex  = internal.Convex
	Crossed = internal.Crossed
	Concave = internal.Concave
)

const (
	NoIntersection        = internal.NoIntersection
	OneIntersection       = internal.OneIntersection
	TwoIntersections      = internal.TwoIntersections
	InfiniteIntersections = internal.InfiniteIntersections
)

func Pt(x, y float64) Point {
	return internal.Pt(x, y)
}

// Are p and ref on the same side of the infinite line through a and b? Points
// on the line count as being on either side.
func SameSideOfLine(p, ref, a, b Point) bool {
	return internal.SameSideOfLine(p, ref, a, b)
}

// Intersect two finite segments, classifying the result.
func SegmentIntersection(s1, s2 Segment) Intersection {
	return internal.SegmentIntersection(s1, s2)
}

// Is p inside, or on the boundary of, q?
//
// The only error is an *InvariantViolation, returned when q has collinear or
// coincident vertices.
func PointInQuadrilateral(q Quadrilateral, p Point) (contained bool, err error) {
	defer recoverInvariantViolation(&err)
	shape := classify(q)
	return shape.ContainsPoint(p), nil
}

// Work out whether q is convex, crossed, or concave, along with the triangles
// that cover it.
func Classify(q Quadrilateral) (shape Shape, err error) {
	defer recoverInvariantViolation(&err)
	return classify(q), nil
}

// The two triangles covering q. For a crossed quadrilateral these are the two
// lobes either side of the crossing point.
func Triangles(q Quadrilateral) ([]Triangle, error) {
	shape, err := Classify(q)
	if err != nil {
		return nil, err
	}
	return shape.Triangles[:], nil
}

// Area enclosed by q. Both lobes of a crossed quadrilateral count as positive.
func Area(q Quadrilateral) (float64, error) {
	shape, err := Classify(q)
	if err != nil {
		return 0, err
	}
	return shape.Area(), nil
}

// Containment for many points at once. q is classified only once, and points
// outside its bounding box are rejected without any further tests.
func ContainsAll(q Quadrilateral, points ...Point) (result []bool, err error) {
	defer recoverInvariantViolation(&err)
	shape := classify(q)
	bounds := q.Bounds()
	result = make([]bool, len(points))
	for i, p := range points {
		result[i] = bounds.Contains(p) && shape.ContainsPoint(p)
	}
	return result, nil
}

// Write a debug PNG of q and the given points to path. See Shape.DbgDraw.
func DebugDraw(q Quadrilateral, path string, scale float64, title string, points ...Point) error {
	shape, err := Classify(q)
	if err != nil {
		return err
	}
	return shape.DbgDraw(path, scale, title, points...)
}

func classify(q Quadrilateral) Shape {
	shape := q.Classify()
	if log := Logger(); log.IsLevelEnabled(logrus.DebugLevel) {
		fields := logrus.Fields{
			"quadrilateral": q.String(),
			"kind":          shape.Kind.String(),
		}
		switch shape.Kind {
		case Concave:
			fields["reflex_vertex"] = shape.ReflexVertex
		case Crossed:
			fields["crossing"] = shape.Crossing.String()
		}
		log.WithFields(fields).Debug("classified quadrilateral")
	}
	return shape
}

// Convert an *InvariantViolation panic into an error. Anything else keeps
// panicking.
func recoverInvariantViolation(err *error) {
	recoveredErr := internal.HandlePanicRecover(recover())
	if recoveredErr != nil {
		Logger().WithError(recoveredErr).Warn("quadrilateral cannot be classified")
		*err = recoveredErr
	}
}

// Parse a quadrilateral from four "x,y" points separated by whitespace, as in
// an SVG points attribute.
func ParseQuadrilateral(s string) (Quadrilateral, error) {
	var q Quadrilateral
	points, err := internal.ParsePointList(s)
	if err != nil {
		return q, err
	}
	if len(points) != len(q) {
		return q, errors.Errorf("need %d points for a quadrilateral, got %d", len(q), len(points))
	}
	copy(q[:], points)
	return q, nil
}

// Read the first <polygon> of an SVG document as a quadrilateral.
func LoadSVG(r io.Reader) (Quadrilateral, error) {
	return internal.LoadSVGQuadrilateral(r)
}

// Print a debug PNG to an iTerm terminal.
func DebugCat(path string, w io.Writer) {
	internal.DbgCat(path, w)
}
