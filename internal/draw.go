package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// This is for debugging purposes only

// Padding around the shape so that vertex labels and points on the boundary
// stay on the canvas
const dbgDrawPadding = 40

const dbgPointRadius = 4

// The view extends past the quadrilateral by this fraction of its size on
// every side. Points further out are not drawn.
const dbgViewMargin = 0.25

// Largest width or height, in pixels, of the drawing itself. Larger drawings
// are scaled down to fit.
const dbgMaxDrawingSize = 4096

// Draw the shape to a PNG file: the two covering triangles filled, the
// quadrilateral outlined, its vertices labelled, and each of the points marked
// green if the shape contains it or red if not. The drawing is flipped so the
// origin is at the bottom left. The view is framed around the quadrilateral,
// so a stray far away point can't blow up the size of the image.
func (s Shape) DbgDraw(path string, scale float64, title string, points ...Point) error {
	q := s.Quadrilateral
	bounds := q.Bounds()
	bounds = bounds.Pad(math.Max(bounds.Width(), bounds.Height()) * dbgViewMargin)
	if size := scale * math.Max(bounds.Width(), bounds.Height()); size > dbgMaxDrawingSize {
		scale *= dbgMaxDrawingSize / size
	}

	width := int(scale*bounds.Width()) + dbgDrawPadding*2
	height := int(scale*bounds.Height()) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.Clear()

	face, err := dbgLabelFace()
	if err != nil {
		return err
	}
	c.SetFontFace(face)

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.Min.X, -bounds.Min.Y)

	for i, tri := range s.Triangles {
		for _, p := range tri.Points() {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		if i == 0 {
			c.SetRGBA(0.3, 0.2, 1, 0.5)
		} else {
			c.SetRGBA(1, 1, 0, 0.5)
		}
		c.Fill()
	}

	c.MoveTo(q[0].X, q[0].Y)
	for _, p := range q[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for _, p := range points {
		if s.ContainsPoint(p) {
			c.SetRGB(0, 1, 0)
		} else {
			c.SetRGB(1, 0, 0)
		}
		c.DrawCircle(p.X, p.Y, dbgPointRadius/scale)
		c.Fill()
	}

	// Text has to be drawn in native coordinates, or it comes out upside down
	for i, p := range q {
		x, y := c.TransformPoint(p.X, p.Y)
		dbgDrawLabel(c, string(rune('A'+i)), x, y-dbgPointRadius*3)
	}
	dbgDrawLabel(c, title+" ("+s.Kind.String()+")", float64(width)/2, dbgDrawPadding/2)

	return errors.Wrapf(c.SavePNG(path), "saving debug image to %s", path)
}

// Print a PNG to an iTerm terminal.
func DbgCat(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

func dbgDrawLabel(c *gg.Context, label string, x, y float64) {
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(label, x, y, 0.5, 0.5)
	c.Pop()
}

func dbgLabelFace() (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "loading label font")
	}
	return truetype.NewFace(f, &truetype.Options{Size: 14}), nil
}
