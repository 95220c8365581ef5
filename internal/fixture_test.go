package internal

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/require"
)

// SVG fixtures are available by name in the fixtures/ directory, sans
// extension. Each holds a single polygon.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(t *testing.T, name string) Quadrilateral {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	q, err := LoadSVGQuadrilateral(fixture)
	require.NoError(t, err, "could not parse fixture %q", name)
	return q
}

// Some ad hoc fixtures

func UnitSquare() Quadrilateral {
	return Quadrilateral{{0.5, 0.5}, {-0.5, 0.5}, {-0.5, -0.5}, {0.5, -0.5}}
}

// Concave, with the reflex angle at D. The notch is the triangle A, D, C.
func Arrow() Quadrilateral {
	return Quadrilateral{{0, 0}, {4, 2}, {0, 4}, {1, 2}}
}

// A–B crosses C–D at (1, 1). The lobes sit left and right of the crossing.
func BowTie() Quadrilateral {
	return Quadrilateral{{0, 0}, {2, 2}, {2, 0}, {0, 2}}
}

// A–D crosses B–C at (1, 1). The lobes sit above and below the crossing.
func HourGlass() Quadrilateral {
	return Quadrilateral{{0, 0}, {2, 0}, {0, 2}, {2, 2}}
}

func Kite() Quadrilateral {
	return Quadrilateral{{0, -3}, {2, 0}, {0, 5}, {-2, 0}}
}

// Clockwise, and not symmetric about either axis
func Trapezium() Quadrilateral {
	return Quadrilateral{{-3, -1}, {-1, 2}, {2, 2}, {4, -1}}
}

// A, B and C lie on one line.
func Collinear() Quadrilateral {
	return Quadrilateral{{0, 0}, {1, 0}, {2, 0}, {1, 1}}
}

// B and C are the same point.
func Duplicate() Quadrilateral {
	return Quadrilateral{{0, 0}, {1, 0}, {1, 0}, {0, 1}}
}

func ValidFixtures() map[string]Quadrilateral {
	return map[string]Quadrilateral{
		"unit square": UnitSquare(),
		"arrow":       Arrow(),
		"bow tie":     BowTie(),
		"hour glass":  HourGlass(),
		"kite":        Kite(),
		"trapezium":   Trapezium(),
	}
}
