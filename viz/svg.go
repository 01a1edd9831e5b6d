package viz

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/objectdraw/objectdraw/core"
	"github.com/objectdraw/objectdraw/shapes"
)

// Stroke and fill per shape variant, matching the original scene's pens.
var svgStyles = map[shapes.Kind]struct{ stroke, fill string }{
	shapes.KindLine:      {stroke: "blue", fill: "none"},
	shapes.KindTriangle:  {stroke: "darkgreen", fill: "rgba(0,180,0,0.24)"},
	shapes.KindRectangle: {stroke: "red", fill: "rgba(255,0,0,0.24)"},
	shapes.KindSquare:    {stroke: "magenta", fill: "rgba(255,0,255,0.24)"},
}

// SVGRenderer buffers draw instructions and serializes them as an SVG
// document. The buffered dashed segments are scene state, not registry
// state: nothing outside this renderer can query them.
type SVGRenderer struct {
	added    []shapes.Shape
	segments [][2]core.Point
}

// NewSVGRenderer returns an empty scene.
func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{}
}

func (r *SVGRenderer) AddShape(s shapes.Shape) {
	r.added = append(r.added, s)
}

func (r *SVGRenderer) DrawDashedSegment(a, b core.Point) {
	r.segments = append(r.segments, [2]core.Point{a, b})
}

// Empty reports whether the scene has no instructions at all.
func (r *SVGRenderer) Empty() bool {
	return len(r.added) == 0 && len(r.segments) == 0
}

func (r *SVGRenderer) bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(p core.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, s := range r.added {
		for _, p := range s.Vertices() {
			grow(p)
		}
	}
	for _, seg := range r.segments {
		grow(seg[0])
		grow(seg[1])
	}
	return minX, minY, maxX, maxY
}

// viewBox pads the scene bounds so strokes near the extremes are not
// clipped. An empty scene gets a fixed 100x100 box with no pad applied.
func (r *SVGRenderer) viewBox() (x, y, w, h float64) {
	const pad = 10.0

	if r.Empty() {
		return 0, 0, 100, 100
	}
	minX, minY, maxX, maxY := r.bounds()
	return minX - pad, minY - pad, maxX - minX + 2*pad, maxY - minY + 2*pad
}

// WriteTo serializes the buffered scene as an SVG document.
func (r *SVGRenderer) WriteTo(w io.Writer) (int64, error) {
	x, y, width, height := r.viewBox()

	var b bytes.Buffer
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\">\n",
		x, y, width, height)

	for _, s := range r.added {
		style := svgStyles[s.Kind()]
		pts := s.Vertices()
		if s.Kind() == shapes.KindLine {
			fmt.Fprintf(&b, "  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"%s\" stroke-width=\"2\"/>\n",
				pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, style.stroke)
			continue
		}
		fmt.Fprintf(&b, "  <polygon points=\"")
		for i, p := range pts {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g,%g", p.X, p.Y)
		}
		fmt.Fprintf(&b, "\" stroke=\"%s\" stroke-width=\"2\" fill=\"%s\"/>\n", style.stroke, style.fill)
	}

	for _, seg := range r.segments {
		fmt.Fprintf(&b, "  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"darkgray\" stroke-width=\"1.5\" stroke-dasharray=\"6,4\"/>\n",
			seg[0].X, seg[0].Y, seg[1].X, seg[1].Y)
	}

	b.WriteString("</svg>\n")
	return b.WriteTo(w)
}
