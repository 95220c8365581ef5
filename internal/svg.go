package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg parser. It parses the SVG, finds the
// first polygon, and converts its points into a quadrilateral. The polygon
// must have exactly four points; vertex order is preserved, so crossed
// quadrilaterals survive the round trip.
func LoadSVGQuadrilateral(r io.Reader) (Quadrilateral, error) {
	var q Quadrilateral
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return q, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return q, errors.New("no polygon found in svg")
	}

	points, err := ParsePointList(polygons[0].Attributes["points"])
	if err != nil {
		return q, errors.Wrap(err, "reading polygon points")
	}
	if len(points) != len(q) {
		return q, errors.Errorf("polygon has %d points, need %d", len(points), len(q))
	}
	copy(q[:], points)
	return q, nil
}

// Parse points in the SVG "x,y x,y ..." form. Whitespace around the comma is
// not allowed, as in the points attribute.
func ParsePointList(s string) ([]Point, error) {
	fields := strings.Fields(s)
	points := make([]Point, 0, len(fields))
	for _, field := range fields {
		p, err := ParsePoint(field)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// Parse a single "x,y" point.
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, errors.Errorf("invalid point string %q", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return Point{x, y}, nil
}
