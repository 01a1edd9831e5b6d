package shapes

import "github.com/objectdraw/objectdraw/core"

// Line is a segment between two endpoints.
type Line struct {
	name   string
	p1, p2 core.Point
}

// NewLine constructs a line between two endpoints. Any pair of points is
// accepted, including coincident ones.
func NewLine(name string, p1, p2 core.Point) *Line {
	return &Line{name: name, p1: p1, p2: p2}
}

func (l *Line) Name() string { return l.name }

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Vertices() []core.Point { return []core.Point{l.p1, l.p2} }

// Center returns the midpoint of the segment.
func (l *Line) Center() core.Point { return core.Midpoint(l.p1, l.p2) }
