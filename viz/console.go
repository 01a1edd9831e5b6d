// Package viz contains rendering surfaces for the command pipeline: a
// colored console echo of draw instructions and an SVG scene writer. Both
// implement runtime.Renderer; the pipeline itself stays headless.
package viz

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/objectdraw/objectdraw/core"
	"github.com/objectdraw/objectdraw/shapes"
)

// ConsoleRenderer echoes draw instructions as colored lines, standing in for
// the scene view in a terminal session.
type ConsoleRenderer struct {
	out io.Writer
}

// NewConsoleRenderer writes instruction lines to out.
func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{out: out}
}

func (r *ConsoleRenderer) AddShape(s shapes.Shape) {
	c := s.Center()
	fmt.Fprintln(r.out, color.CyanString("  + %s '%s' centered at (%g,%g)", s.Kind(), s.Name(), c.X, c.Y))
}

func (r *ConsoleRenderer) DrawDashedSegment(a, b core.Point) {
	fmt.Fprintln(r.out, color.HiBlackString("  ~ dashed segment (%g,%g) -- (%g,%g)", a.X, a.Y, b.X, b.Y))
}

// Feedback prints command outcomes the way the original drew its log lines:
// green for success, red for failure.
type Feedback struct {
	out io.Writer
}

// NewFeedback writes outcome lines to out.
func NewFeedback(out io.Writer) *Feedback {
	return &Feedback{out: out}
}

// Print reports one command outcome.
func (f *Feedback) Print(ok bool, msg string) {
	if ok {
		fmt.Fprintln(f.out, color.GreenString("%s", msg))
	} else {
		fmt.Fprintln(f.out, color.RedString("%s", msg))
	}
}
