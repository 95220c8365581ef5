package internal

// This contains no actual tests. It is just a helper for checking
// quadrilateral containment against an independent rule.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Points closer than this fraction of the shape's size to an edge are
// skipped when sampling. The even-odd rule is undefined on the boundary, and
// the containment test deliberately includes it.
const samplingMargin = 1e-3

// Sample a grid over the quadrilateral's bounding box (padded by 10%) and
// check that the classifier agrees with the even-odd rule everywhere away
// from the boundary.
func validateBySampling(t *testing.T, q Quadrilateral) {
	t.Helper()
	var shape Shape
	require.NotPanics(t, func() { shape = q.Classify() }, "quadrilateral %v should be classifiable", q)

	poly := q.Polygon()
	bounds := q.Bounds()
	xPadding := bounds.Width() * 0.1
	yPadding := bounds.Height() * 0.1
	minX, maxX := bounds.Min.X-xPadding, bounds.Max.X+xPadding
	minY, maxY := bounds.Min.Y-yPadding, bounds.Max.Y+yPadding

	margin := samplingMargin * math.Max(bounds.Width(), bounds.Height())
	step := math.Max(maxX-minX, maxY-minY) / 50
	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			if poly.DistanceToBoundary(p) < margin {
				continue
			}

			expected := poly.ContainsPointByEvenOdd(p)
			if !assert.Equal(t, expected, shape.ContainsPoint(p), "point %v in %s %v", p, shape.Kind, q) {
				return
			}
		}
	}
}

// Smallest distance from any vertex to a line through two of the others.
// Small values mean the quadrilateral is close to having three collinear
// vertices.
func minVertexLineDistance(q Quadrilateral) float64 {
	best := math.Inf(1)
	for i := range q {
		p, a, b := q.Vertex(i), q.Vertex(i+1), q.Vertex(i+2)
		for _, line := range [][2]Point{{a, b}, {b, q.Vertex(i + 3)}, {q.Vertex(i + 3), a}} {
			length := line[1].Sub(line[0]).Length()
			if length == 0 {
				return 0
			}
			best = math.Min(best, math.Abs(line[1].Sub(line[0]).Cross(p.Sub(line[0])))/length)
		}
	}
	return best
}

func scaleQuadrilateral(q Quadrilateral, factor float64) Quadrilateral {
	for i := range q {
		q[i] = q[i].Scale(factor)
	}
	return q
}
