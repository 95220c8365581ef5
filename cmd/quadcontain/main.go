package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/quadrilateral"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for quadrilateral point containment.
//
// Quadrilaterals are given either inline as "x,y x,y x,y x,y" or as the first
// polygon of an SVG file. Points are given as "x,y" arguments, or as "x y"
// lines on stdin.

var (
	app      = kingpin.New("quadcontain", "Point containment for arbitrary quadrilaterals.")
	logLevel = app.Flag("log-level", "Log level.").
			Envar("QUADCONTAIN_LOG_LEVEL").
			Default("warn").
			Enum("trace", "debug", "info", "warn", "error")
	noColor = app.Flag("no-color", "Disable coloured output.").
		Envar("QUADCONTAIN_NO_COLOR").
		Bool()

	classifyCmd  = app.Command("classify", "Print whether a quadrilateral is convex, crossed or concave.")
	classifyQuad = classifyCmd.Flag("quad", `Quadrilateral as "x,y x,y x,y x,y".`).String()
	classifySVG  = classifyCmd.Flag("svg", "Read the quadrilateral from the first polygon of an SVG file.").ExistingFile()

	containsCmd    = app.Command("contains", "Check whether points are inside a quadrilateral.")
	containsQuad   = containsCmd.Flag("quad", `Quadrilateral as "x,y x,y x,y x,y".`).String()
	containsSVG    = containsCmd.Flag("svg", "Read the quadrilateral from the first polygon of an SVG file.").ExistingFile()
	debugDraw      = containsCmd.Flag("debug-draw", "Write a PNG of the quadrilateral and points to this file.").String()
	debugScale     = containsCmd.Flag("debug-scale", "Pixels per unit in the debug PNG.").Default("100").Float64()
	useImgcat      = containsCmd.Flag("imgcat", "Also print the debug PNG to the terminal (iTerm only).").Bool()
	containsPoints = containsCmd.Arg("point", `Points as "x,y". Read "x y" lines from stdin when none are given.`).Strings()

	batchCmd  = app.Command("batch", "Check a YAML file of quadrilaterals and expected results.")
	batchPath = batchCmd.Arg("file", "YAML case file.").Required().ExistingFile()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log := newLogger(*logLevel, *noColor)
	quadrilateral.SetLogger(log)
	au := aurora.NewAurora(!*noColor)

	var err error
	switch command {
	case classifyCmd.FullCommand():
		err = classify(os.Stdout, au, *classifyQuad, *classifySVG)
	case containsCmd.FullCommand():
		err = contains(os.Stdout, os.Stdin, au, containsOptions{
			quad:       *containsQuad,
			svgPath:    *containsSVG,
			points:     *containsPoints,
			debugDraw:  *debugDraw,
			debugScale: *debugScale,
			imgcat:     *useImgcat,
		})
	case batchCmd.FullCommand():
		err = batch(os.Stdout, au, *batchPath)
	}
	app.FatalIfError(err, "")
}

func newLogger(level string, noColor bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: noColor,
		FullTimestamp: true,
	})
	if l, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(l)
	}
	return log
}

func classify(w io.Writer, au aurora.Aurora, quad, svgPath string) error {
	q, err := loadQuadrilateral(quad, svgPath)
	if err != nil {
		return err
	}
	shape, err := quadrilateral.Classify(q)
	if err != nil {
		return errors.Wrap(err, "invalid quadrilateral")
	}

	fmt.Fprintf(w, "%v: %s\n", q, colorKind(au, shape.Kind))
	switch shape.Kind {
	case quadrilateral.Concave:
		fmt.Fprintf(w, "reflex vertex: %c\n", 'A'+shape.ReflexVertex)
	case quadrilateral.Crossed:
		fmt.Fprintf(w, "crossing: %v\n", shape.Crossing)
	}
	if shape.Kind != quadrilateral.Crossed {
		winding := "clockwise"
		if shape.IsCCW() {
			winding = "counterclockwise"
		}
		fmt.Fprintf(w, "winding: %s\n", winding)
	}
	area := shape.Area()
	fmt.Fprintf(w, "area: %g\n", area)
	return nil
}

type containsOptions struct {
	quad       string
	svgPath    string
	points     []string
	debugDraw  string
	debugScale float64
	imgcat     bool
}

func contains(w io.Writer, stdin io.Reader, au aurora.Aurora, opts containsOptions) error {
	q, err := loadQuadrilateral(opts.quad, opts.svgPath)
	if err != nil {
		return err
	}

	var points []quadrilateral.Point
	if len(opts.points) > 0 {
		points, err = parsePoints(opts.points)
	} else {
		points, err = readPoints(stdin)
	}
	if err != nil {
		return err
	}

	results, err := quadrilateral.ContainsAll(q, points...)
	if err != nil {
		return errors.Wrap(err, "invalid quadrilateral")
	}
	for i, p := range points {
		if results[i] {
			fmt.Fprintf(w, "%v %s\n", p, au.Green("inside"))
		} else {
			fmt.Fprintf(w, "%v %s\n", p, au.Red("outside"))
		}
	}

	if opts.debugDraw != "" {
		if err := quadrilateral.DebugDraw(q, opts.debugDraw, opts.debugScale, q.String(), points...); err != nil {
			return err
		}
		if opts.imgcat {
			quadrilateral.DebugCat(opts.debugDraw, w)
		}
	}
	return nil
}

func colorKind(au aurora.Aurora, kind quadrilateral.ShapeKind) aurora.Value {
	switch kind {
	case quadrilateral.Convex:
		return au.Green(kind)
	case quadrilateral.Crossed:
		return au.Cyan(kind)
	}
	return au.Yellow(kind)
}
