package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/quadrilateral"
	"github.com/osuushi/quadrilateral/internal/dbg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A batch file is a list of quadrilaterals, each with points expected inside
// and outside it:
//
//	cases:
//	  - name: unit square
//	    quad: [[0.5, 0.5], [-0.5, 0.5], [-0.5, -0.5], [0.5, -0.5]]
//	    inside: [[0, 0]]
//	    outside: [[2, 2]]
//	  - name: collinear
//	    quad: [[0, 0], [1, 0], [2, 0], [1, 1]]
//	    invalid: true
type batchFile struct {
	Cases []batchCase `yaml:"cases"`
}

type batchCase struct {
	Name    string      `yaml:"name"`
	Quad    [][]float64 `yaml:"quad"`
	Inside  [][]float64 `yaml:"inside"`
	Outside [][]float64 `yaml:"outside"`
	// The quadrilateral is expected to be rejected as unclassifiable
	Invalid bool `yaml:"invalid"`
}

func batch(w io.Writer, au aurora.Aurora, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening batch file")
	}
	defer f.Close()

	failures, err := runBatch(w, au, f)
	if err != nil {
		return err
	}
	if failures > 0 {
		return errors.Errorf("%d case(s) failed", failures)
	}
	return nil
}

// Evaluate every case, reporting each one. Returns the number of failed
// cases. Errors are only returned for malformed input.
func runBatch(w io.Writer, au aurora.Aurora, r io.Reader) (failures int, err error) {
	var file batchFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return 0, errors.Wrap(err, "decoding batch file")
	}

	for i, c := range file.Cases {
		q, err := c.quadrilateral()
		if err != nil {
			return failures, errors.Wrapf(err, "case %d", i)
		}
		name := c.Name
		if name == "" {
			name = dbg.Name(q)
		}

		problems, err := c.check(q)
		if err != nil {
			return failures, errors.Wrapf(err, "case %q", name)
		}
		if len(problems) == 0 {
			fmt.Fprintf(w, "%s %s\n", au.Green("ok  "), name)
			continue
		}
		failures++
		fmt.Fprintf(w, "%s %s\n", au.Red("FAIL"), name)
		for _, problem := range problems {
			fmt.Fprintf(w, "     %s\n", problem)
		}
	}
	return failures, nil
}

func (c batchCase) quadrilateral() (quadrilateral.Quadrilateral, error) {
	var q quadrilateral.Quadrilateral
	if len(c.Quad) != len(q) {
		return q, errors.Errorf("quad needs %d points, got %d", len(q), len(c.Quad))
	}
	points, err := toPoints(c.Quad)
	if err != nil {
		return q, errors.Wrap(err, "quad")
	}
	copy(q[:], points)
	return q, nil
}

// Describe every way the quadrilateral disagrees with the case.
func (c batchCase) check(q quadrilateral.Quadrilateral) ([]string, error) {
	inside, err := toPoints(c.Inside)
	if err != nil {
		return nil, errors.Wrap(err, "inside")
	}
	outside, err := toPoints(c.Outside)
	if err != nil {
		return nil, errors.Wrap(err, "outside")
	}

	results, err := quadrilateral.ContainsAll(q, append(inside, outside...)...)
	var violation *quadrilateral.InvariantViolation
	switch {
	case errors.As(err, &violation):
		if c.Invalid {
			return nil, nil
		}
		return []string{fmt.Sprintf("unexpected invalid quadrilateral: %v", violation)}, nil
	case err != nil:
		return nil, err
	case c.Invalid:
		return []string{"expected an invalid quadrilateral"}, nil
	}

	var problems []string
	for i, p := range inside {
		if !results[i] {
			problems = append(problems, fmt.Sprintf("%v should be inside", p))
		}
	}
	for i, p := range outside {
		if results[len(inside)+i] {
			problems = append(problems, fmt.Sprintf("%v should be outside", p))
		}
	}
	return problems, nil
}

func toPoints(pairs [][]float64) ([]quadrilateral.Point, error) {
	points := make([]quadrilateral.Point, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, errors.Errorf("point %d has %d coordinates, need 2", i, len(pair))
		}
		points = append(points, quadrilateral.Pt(pair[0], pair[1]))
	}
	return points, nil
}
