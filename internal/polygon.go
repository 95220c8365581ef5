package internal

// Even-odd point-in-polygon. This makes no assumptions about the shape at all,
// which makes it a useful independent check on the quadrilateral classifier.
// Output is not defined for points exactly on an edge.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]

		segment := Segment{vertex, nextVertex}
		if vertex.Below(p) != nextVertex.Below(p) && segment.IsRightOf(p) {
			crossingCount++
		}
	}
	return crossingCount
}

// Shoelace area. For a self-intersecting polygon, lobes with opposite winding
// cancel out.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		sum += p.Cross(poly.Points[CircularIndex(i+1, len(poly.Points))])
	}
	return sum / 2
}

// Distance from the point to the nearest edge.
func (poly Polygon) DistanceToBoundary(p Point) float64 {
	var best float64
	for i, vertex := range poly.Points {
		segment := Segment{vertex, poly.Points[CircularIndex(i+1, len(poly.Points))]}
		d := segment.DistanceToPoint(p)
		if i == 0 || d < best {
			best = d
		}
	}
	return best
}
