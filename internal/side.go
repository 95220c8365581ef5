package internal

// Which side of the directed line a→b the point p is on: 1 for left
// (counterclockwise), -1 for right, 0 when it lies within Tolerance of the
// line. The cross product is divided by the line's length, so the tolerance
// is a distance and does not shrink or grow with the shape. A degenerate line
// (a == b) has every point on it.
func Orientation(p, a, b Point) int {
	line := b.Sub(a)
	length := line.Length()
	if length < Tolerance {
		return 0
	}
	return Sign(line.Cross(p.Sub(a)) / length)
}

// Are p and ref on the same side of the infinite line through a and b? A
// point lying on the line counts as being on the same side as anything, which
// is what makes boundary points of a shape count as contained.
func SameSideOfLine(p, ref, a, b Point) bool {
	pSide := Orientation(p, a, b)
	refSide := Orientation(ref, a, b)
	return pSide == 0 || refSide == 0 || pSide == refSide
}

// Like SameSideOfLine, but neither point may touch the line.
func StrictlySameSideOfLine(p, ref, a, b Point) bool {
	pSide := Orientation(p, a, b)
	return pSide != 0 && pSide == Orientation(ref, a, b)
}
