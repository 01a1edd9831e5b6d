// Package shapes defines the closed set of drawable shape variants and their
// validating constructors. A shape is immutable once constructed: the name is
// assigned at creation and the vertex data never changes.
package shapes

import "github.com/objectdraw/objectdraw/core"

// Kind identifies a shape variant.
type Kind int

const (
	KindLine Kind = iota
	KindTriangle
	KindRectangle
	KindSquare
)

// String returns the lowercase variant name.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindTriangle:
		return "triangle"
	case KindRectangle:
		return "rectangle"
	case KindSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Shape is a named geometric object. Implementations are exactly the four
// variants in this package.
type Shape interface {
	// Name returns the unique identifier assigned at creation.
	Name() string
	// Kind returns the variant tag.
	Kind() Kind
	// Vertices returns the shape's points: two endpoints for a line, three
	// vertices for a triangle, four corners for a rectangle or square.
	Vertices() []core.Point
	// Center returns the derived center: midpoint for a line, centroid for
	// a triangle, bounding-box center otherwise.
	Center() core.Point
}
