package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/quadrilateral"
	"github.com/pkg/errors"
)

// Exactly one of quad and svgPath must be set.
func loadQuadrilateral(quad, svgPath string) (quadrilateral.Quadrilateral, error) {
	switch {
	case quad != "" && svgPath != "":
		return quadrilateral.Quadrilateral{}, errors.New("use either --quad or --svg, not both")
	case svgPath != "":
		f, err := os.Open(svgPath)
		if err != nil {
			return quadrilateral.Quadrilateral{}, errors.Wrap(err, "opening svg")
		}
		defer f.Close()
		q, err := quadrilateral.LoadSVG(f)
		return q, errors.Wrapf(err, "loading %s", svgPath)
	case quad != "":
		return quadrilateral.ParseQuadrilateral(quad)
	}
	return quadrilateral.Quadrilateral{}, errors.New("a quadrilateral is required: pass --quad or --svg")
}

func parsePoints(args []string) ([]quadrilateral.Point, error) {
	points := make([]quadrilateral.Point, 0, len(args))
	for _, arg := range args {
		p, err := parsePoint(arg)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// Points on stdin are newline separated, in the form "x y". Blank lines are
// skipped.
func readPoints(in io.Reader) ([]quadrilateral.Point, error) {
	var points []quadrilateral.Point
	scanner := bufio.NewScanner(in)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		p, err := parsePoint(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, p)
	}
	return points, errors.Wrap(scanner.Err(), "reading points")
}

// Accepts "x,y", "x y" and "x, y".
func parsePoint(s string) (quadrilateral.Point, error) {
	parts := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(parts) != 2 {
		return quadrilateral.Point{}, errors.Errorf("invalid point %q", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return quadrilateral.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return quadrilateral.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return quadrilateral.Pt(x, y), nil
}
