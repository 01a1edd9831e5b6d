package runtime

import (
	"github.com/objectdraw/objectdraw/core"
	"github.com/objectdraw/objectdraw/shapes"
)

// Renderer is the rendering surface the dispatcher draws on. Implementations
// range from a no-op (headless tests) to an SVG scene writer. Dashed
// segments are fire-and-forget visual records: they are not stored anywhere
// and cannot be queried or removed afterwards.
type Renderer interface {
	// AddShape displays a newly created shape.
	AddShape(s shapes.Shape)
	// DrawDashedSegment draws a dashed segment between two points.
	DrawDashedSegment(a, b core.Point)
}

// NopRenderer discards every instruction. It is the default surface when the
// pipeline runs headlessly.
type NopRenderer struct{}

func (NopRenderer) AddShape(shapes.Shape) {}

func (NopRenderer) DrawDashedSegment(_, _ core.Point) {}

// MultiRenderer fans every instruction out to several surfaces, e.g. a
// console echo plus an SVG export.
type MultiRenderer []Renderer

func (m MultiRenderer) AddShape(s shapes.Shape) {
	for _, r := range m {
		r.AddShape(s)
	}
}

func (m MultiRenderer) DrawDashedSegment(a, b core.Point) {
	for _, r := range m {
		r.DrawDashedSegment(a, b)
	}
}
