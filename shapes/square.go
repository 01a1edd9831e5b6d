package shapes

import (
	"math"

	"github.com/objectdraw/objectdraw/core"
)

// Square is a four-vertex shape with equal sides.
type Square struct {
	name string
	pts  [4]core.Point
}

// NewSquareFromDiagonal constructs a square from two diagonal endpoints,
// which must not coincide. Corners are placed around the diagonal midpoint:
// the diagonal vector is rotated 90 degrees to get the perpendicular
// direction, and each corner sits at midpoint +- half-diagonal +- half-side
// along that perpendicular, with side = diagonal / sqrt(2).
func NewSquareFromDiagonal(name string, d1, d2 core.Point) (*Square, error) {
	if !core.IsValidSquareDiagonal(d1, d2, core.EpsDiagonal) {
		return nil, ErrInvalidDiagonal
	}

	v := core.Sub(d2, d1)
	m := core.Midpoint(d1, d2)

	length := math.Sqrt(v.X*v.X + v.Y*v.Y)
	ux, uy := v.X/length, v.Y/length
	// Perpendicular unit vector, v rotated 90 degrees.
	w := core.Point{X: -uy, Y: ux}

	half := length / 2.0
	sideHalf := half / math.Sqrt2

	pts := [4]core.Point{
		{X: m.X + v.X/2.0 + w.X*sideHalf, Y: m.Y + v.Y/2.0 + w.Y*sideHalf},
		{X: m.X - v.X/2.0 + w.X*sideHalf, Y: m.Y - v.Y/2.0 + w.Y*sideHalf},
		{X: m.X - v.X/2.0 - w.X*sideHalf, Y: m.Y - v.Y/2.0 - w.Y*sideHalf},
		{X: m.X + v.X/2.0 - w.X*sideHalf, Y: m.Y + v.Y/2.0 - w.Y*sideHalf},
	}
	return &Square{name: name, pts: pts}, nil
}

// NewSquareFromVertices validates that the four points form a square and
// keeps them in the caller-supplied order.
func NewSquareFromVertices(name string, p1, p2, p3, p4 core.Point) (*Square, error) {
	if !core.IsSquare(p1, p2, p3, p4, core.EpsGeometry) {
		return nil, ErrNotSquare
	}
	return &Square{name: name, pts: [4]core.Point{p1, p2, p3, p4}}, nil
}

func (s *Square) Name() string { return s.name }

func (s *Square) Kind() Kind { return KindSquare }

func (s *Square) Vertices() []core.Point { return s.pts[:] }

// Center returns the bounding-box center of the vertices.
func (s *Square) Center() core.Point { return core.BoundsCenter(s.pts[:]) }
