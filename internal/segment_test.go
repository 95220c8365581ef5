package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Pt(x1, y1), Pt(x2, y2)}
}

func assertPointEquals(t *testing.T, expected, actual Point) {
	t.Helper()
	assert.True(t, expected.Equals(actual), "expected %v, got %v", expected, actual)
}

func TestSegmentIntersection_Crossing(t *testing.T) {
	hit := SegmentIntersection(seg(0, 0, 2, 2), seg(0, 2, 2, 0))
	assert.Equal(t, OneIntersection, hit.Kind)
	assertPointEquals(t, Pt(1, 1), hit.Points[0])

	// Off-centre, and the order of the segments doesn't matter
	hit = SegmentIntersection(seg(3, -1, 3, 5), seg(0, 0, 4, 2))
	assert.Equal(t, OneIntersection, hit.Kind)
	assertPointEquals(t, Pt(3, 1.5), hit.Points[0])
	hit = SegmentIntersection(seg(0, 0, 4, 2), seg(3, -1, 3, 5))
	assert.Equal(t, OneIntersection, hit.Kind)
	assertPointEquals(t, Pt(3, 1.5), hit.Points[0])
}

func TestSegmentIntersection_TouchingEndpoints(t *testing.T) {
	// T junction
	hit := SegmentIntersection(seg(0, 0, 2, 0), seg(1, 0, 1, 3))
	assert.Equal(t, OneIntersection, hit.Kind)
	assertPointEquals(t, Pt(1, 0), hit.Points[0])

	// Shared vertex
	hit = SegmentIntersection(seg(0, 0, 2, 0), seg(2, 0, 3, 3))
	assert.Equal(t, OneIntersection, hit.Kind)
	assertPointEquals(t, Pt(2, 0), hit.Points[0])
}

func TestSegmentIntersection_Skew(t *testing.T) {
	// The lines cross at (3, 3), beyond both segments
	hit := SegmentIntersection(seg(0, 0, 1, 1), seg(0, 6, 1, 5))
	assert.Equal(t, NoIntersection, hit.Kind)

	// Crossing within the first segment, but not the second
	hit = SegmentIntersection(seg(0, 0, 4, 0), seg(2, 1, 2, 3))
	assert.Equal(t, NoIntersection, hit.Kind)
}

func TestSegmentIntersection_Parallel(t *testing.T) {
	hit := SegmentIntersection(seg(0, 0, 2, 0), seg(0, 1, 2, 1))
	assert.Equal(t, NoIntersection, hit.Kind)
}

func TestSegmentIntersection_Collinear(t *testing.T) {
	t.Run("disjoint", func(t *testing.T) {
		hit := SegmentIntersection(seg(0, 0, 1, 1), seg(2, 2, 3, 3))
		assert.Equal(t, NoIntersection, hit.Kind)
	})

	t.Run("touching end to end", func(t *testing.T) {
		hit := SegmentIntersection(seg(0, 0, 1, 1), seg(1, 1, 3, 3))
		assert.Equal(t, OneIntersection, hit.Kind)
		assertPointEquals(t, Pt(1, 1), hit.Points[0])
	})

	t.Run("overlapping", func(t *testing.T) {
		hit := SegmentIntersection(seg(0, 0, 2, 0), seg(3, 0, 1, 0))
		assert.Equal(t, TwoIntersections, hit.Kind)
		assertPointEquals(t, Pt(1, 0), hit.Points[0])
		assertPointEquals(t, Pt(2, 0), hit.Points[1])
	})

	t.Run("one inside the other", func(t *testing.T) {
		hit := SegmentIntersection(seg(0, 0, 0, 10), seg(0, 2, 0, 3))
		assert.Equal(t, TwoIntersections, hit.Kind)
		assertPointEquals(t, Pt(0, 2), hit.Points[0])
		assertPointEquals(t, Pt(0, 3), hit.Points[1])
	})

	t.Run("coincident", func(t *testing.T) {
		hit := SegmentIntersection(seg(0, 0, 2, 1), seg(0, 0, 2, 1))
		assert.Equal(t, InfiniteIntersections, hit.Kind)

		hit = SegmentIntersection(seg(0, 0, 2, 1), seg(2, 1, 0, 0))
		assert.Equal(t, InfiniteIntersections, hit.Kind, "reversed segment is the same segment")
		assertPointEquals(t, Pt(0, 0), hit.Points[0])
		assertPointEquals(t, Pt(2, 1), hit.Points[1])
	})
}

func TestSegmentIntersection_SmallSegments(t *testing.T) {
	hit := SegmentIntersection(seg(0, 0, 1e-4, 1e-4), seg(0, 1e-4, 1e-4, 0))
	require.Equal(t, OneIntersection, hit.Kind)
	assertPointEquals(t, Pt(5e-5, 5e-5), hit.Points[0])

	hit = SegmentIntersection(seg(0, 0, 0.001, 0), seg(0, 0.0001, 0.001, 0.0001))
	assert.Equal(t, NoIntersection, hit.Kind, "parallel, a tenth of their length apart")
}

func TestSegmentIntersection_Degenerate(t *testing.T) {
	point := seg(1, 1, 1, 1)

	hit := SegmentIntersection(point, seg(0, 0, 2, 2))
	assert.Equal(t, OneIntersection, hit.Kind)
	assertPointEquals(t, Pt(1, 1), hit.Points[0])

	hit = SegmentIntersection(seg(0, 0, 2, 2), point)
	assert.Equal(t, OneIntersection, hit.Kind)

	hit = SegmentIntersection(point, seg(0, 0, 2, 0))
	assert.Equal(t, NoIntersection, hit.Kind)

	hit = SegmentIntersection(point, seg(1, 1, 1, 1))
	assert.Equal(t, OneIntersection, hit.Kind)

	hit = SegmentIntersection(point, seg(2, 2, 2, 2))
	assert.Equal(t, NoIntersection, hit.Kind)
}

func TestIntersectionKindString(t *testing.T) {
	assert.Equal(t, "none", NoIntersection.String())
	assert.Equal(t, "one", OneIntersection.String())
	assert.Equal(t, "two", TwoIntersections.String())
	assert.Equal(t, "infinite", InfiniteIntersections.String())
	assert.Equal(t, "IntersectionKind(9)", IntersectionKind(9).String())
}

func TestSegmentContainsPoint(t *testing.T) {
	s := seg(0, 0, 4, 2)
	assert.True(t, s.ContainsPoint(Pt(2, 1)))
	assert.True(t, s.ContainsPoint(Pt(0, 0)))
	assert.True(t, s.ContainsPoint(Pt(4, 2)))
	assert.False(t, s.ContainsPoint(Pt(6, 3)), "on the line, past the end")
	assert.False(t, s.ContainsPoint(Pt(2, 2)))
}

func TestSegmentDistanceToPoint(t *testing.T) {
	s := seg(0, 0, 4, 0)
	assert.InDelta(t, 2, s.DistanceToPoint(Pt(2, 2)), Tolerance)
	assert.InDelta(t, 5, s.DistanceToPoint(Pt(7, 4)), Tolerance, "nearest the end")
	assert.InDelta(t, 0, s.DistanceToPoint(Pt(1, 0)), Tolerance)
	assert.InDelta(t, 5, seg(1, 1, 1, 1).DistanceToPoint(Pt(4, 5)), Tolerance)
}

func TestSegmentTopAndBottom(t *testing.T) {
	s := seg(0, 3, 1, -1)
	assert.Equal(t, Pt(0, 3), s.Top())
	assert.Equal(t, Pt(1, -1), s.Bottom())

	horizontal := seg(2, 0, -2, 0)
	assert.Equal(t, Pt(2, 0), horizontal.Top(), "larger X is higher when Y is equal")
	assert.Equal(t, Pt(-2, 0), horizontal.Bottom())
}
