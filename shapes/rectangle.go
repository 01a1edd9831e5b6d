package shapes

import (
	"math"

	"github.com/objectdraw/objectdraw/core"
)

// Rectangle stores four corners in axis-aligned bounding-box order.
type Rectangle struct {
	name string
	pts  [4]core.Point
}

// boundingBoxCorners returns the corners of the axis-aligned box spanning
// pts, in (min,min) (max,min) (max,max) (min,max) order.
func boundingBoxCorners(pts ...core.Point) [4]core.Point {
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return [4]core.Point{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

// NewRectangleFromDiagonal constructs the axis-aligned rectangle spanned by
// two opposite corners. Two distinct points that share an x or y coordinate
// would span an empty box and are rejected. Note that any other pair is
// normalized into an axis-aligned rectangle; the input is a bounding
// diagonal, not a rotation hint.
func NewRectangleFromDiagonal(name string, p1, p2 core.Point) (*Rectangle, error) {
	if math.Abs(p1.X-p2.X) < core.EpsGeometry || math.Abs(p1.Y-p2.Y) < core.EpsGeometry {
		return nil, ErrDegenerateRect
	}
	return &Rectangle{name: name, pts: boundingBoxCorners(p1, p2)}, nil
}

// NewRectangleFromCorners validates that the four points form a rectangle
// and stores the axis-aligned bounding box of those corners. A rotated
// rectangle therefore passes validation but is rendered axis-aligned.
func NewRectangleFromCorners(name string, p1, p2, p3, p4 core.Point) (*Rectangle, error) {
	if !core.IsRectangle(p1, p2, p3, p4, core.EpsGeometry) {
		return nil, ErrNotRectangle
	}
	return &Rectangle{name: name, pts: boundingBoxCorners(p1, p2, p3, p4)}, nil
}

func (r *Rectangle) Name() string { return r.name }

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Vertices() []core.Point { return r.pts[:] }

// Center returns the bounding-box center, robust to corner ordering.
func (r *Rectangle) Center() core.Point { return core.BoundsCenter(r.pts[:]) }
