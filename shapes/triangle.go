package shapes

import "github.com/objectdraw/objectdraw/core"

// Triangle is a shape with three non-collinear vertices.
type Triangle struct {
	name string
	pts  [3]core.Point
}

// NewTriangle constructs a triangle, rejecting collinear (zero-area) vertex
// sets.
func NewTriangle(name string, p1, p2, p3 core.Point) (*Triangle, error) {
	if core.Collinear(p1, p2, p3, core.EpsGeometry) {
		return nil, ErrCollinearVertices
	}
	return &Triangle{name: name, pts: [3]core.Point{p1, p2, p3}}, nil
}

func (t *Triangle) Name() string { return t.name }

func (t *Triangle) Kind() Kind { return KindTriangle }

func (t *Triangle) Vertices() []core.Point { return t.pts[:] }

// Center returns the centroid of the three vertices.
func (t *Triangle) Center() core.Point {
	return core.Point{
		X: (t.pts[0].X + t.pts[1].X + t.pts[2].X) / 3.0,
		Y: (t.pts[0].Y + t.pts[1].Y + t.pts[2].Y) / 3.0,
	}
}
