package runtime

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/objectdraw/objectdraw/core"
	"github.com/objectdraw/objectdraw/parser"
	"github.com/objectdraw/objectdraw/shapes"
)

// Dispatcher routes parsed commands to their handlers. It is stateless
// request/response dispatch: all session state lives in the registry, all
// visual output goes through the renderer.
type Dispatcher struct {
	registry *Registry
	renderer Renderer
}

// NewDispatcher creates a dispatcher over the given registry and renderer.
// A nil renderer falls back to NopRenderer.
func NewDispatcher(registry *Registry, renderer Renderer) *Dispatcher {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	return &Dispatcher{registry: registry, renderer: renderer}
}

// Registry exposes the dispatcher's shape store, e.g. for completion or
// scene export.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Execute runs one parsed command to completion and reports the outcome as
// a success flag plus a user-facing message. No failure mutates the
// registry; previously created shapes always survive a failed command.
func (d *Dispatcher) Execute(cmd *parser.Command) (bool, string) {
	switch cmd.Name {
	case "create_line":
		return d.handleCreateLine(cmd)
	case "create_triangle":
		return d.handleCreateTriangle(cmd)
	case "create_rectangle":
		return d.handleCreateRectangle(cmd)
	case "create_square":
		return d.handleCreateSquare(cmd)
	case "connect":
		return d.handleConnect(cmd)
	case "execute_file":
		return d.handleExecuteFile(cmd)
	}
	return false, fmt.Sprintf("Unknown command '%s'.", cmd.Name)
}

// rejectionTexts maps constructor sentinels to the messages shown to the
// user. Error identity stays in the shapes package; wording lives here.
var rejectionTexts = map[error]string{
	shapes.ErrCollinearVertices: "Triangle vertices are collinear. Provide non-collinear points.",
	shapes.ErrNotRectangle:      "Provided corners do not form a rectangle.",
	shapes.ErrDegenerateRect:    "Diagonal points must differ in both x and y for a valid rectangle.",
	shapes.ErrNotSquare:         "Provided vertices do not form a square.",
	shapes.ErrInvalidDiagonal:   "Diagonal points do not define a valid square.",
}

func rejectionText(err error) string {
	for sentinel, text := range rejectionTexts {
		if errors.Is(err, sentinel) {
			return text
		}
	}
	return err.Error()
}

// requireName fetches and validates the -name flag. It runs before any
// coordinate is read so a malformed name is always the reported failure,
// even when coordinates are missing too.
func (d *Dispatcher) requireName(cmd *parser.Command) (string, string, bool) {
	raw, ok := cmd.Args["name"]
	if !ok {
		return "", "Missing -name flag.", false
	}
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", "Name cannot be empty.", false
	}
	return name, "", true
}

// validateUniqueName ensures no registered shape already uses the name.
func (d *Dispatcher) validateUniqueName(name string) (string, bool) {
	if d.registry.Contains(name) {
		return fmt.Sprintf("An object named '%s' already exists. Choose a unique name.", name), false
	}
	return "", true
}

// requireCoord fetches a coordinate (e.g. coord_1) from the parsed command.
func (d *Dispatcher) requireCoord(cmd *parser.Command, key string) (core.Point, string, bool) {
	pt, ok := cmd.Coords[key]
	if !ok {
		return core.Point{}, fmt.Sprintf("Missing -%s coordinate.", key), false
	}
	return pt, "", true
}

func (d *Dispatcher) handleCreateLine(cmd *parser.Command) (bool, string) {
	name, msg, ok := d.requireName(cmd)
	if !ok {
		return false, msg
	}
	if msg, ok := d.validateUniqueName(name); !ok {
		return false, msg
	}

	p1, msg, ok := d.requireCoord(cmd, "coord_1")
	if !ok {
		return false, msg
	}
	p2, msg, ok := d.requireCoord(cmd, "coord_2")
	if !ok {
		return false, msg
	}

	shape := shapes.NewLine(name, p1, p2)
	d.renderer.AddShape(shape)
	d.registry.Add(name, shape)

	return true, fmt.Sprintf("Line '%s' created from (%g,%g) to (%g,%g).",
		name, p1.X, p1.Y, p2.X, p2.Y)
}

func (d *Dispatcher) handleCreateTriangle(cmd *parser.Command) (bool, string) {
	name, msg, ok := d.requireName(cmd)
	if !ok {
		return false, msg
	}
	if msg, ok := d.validateUniqueName(name); !ok {
		return false, msg
	}

	p1, msg, ok := d.requireCoord(cmd, "coord_1")
	if !ok {
		return false, msg
	}
	p2, msg, ok := d.requireCoord(cmd, "coord_2")
	if !ok {
		return false, msg
	}
	p3, msg, ok := d.requireCoord(cmd, "coord_3")
	if !ok {
		return false, msg
	}

	shape, err := shapes.NewTriangle(name, p1, p2, p3)
	if err != nil {
		return false, rejectionText(err)
	}
	d.renderer.AddShape(shape)
	d.registry.Add(name, shape)

	return true, fmt.Sprintf("Triangle '%s' created.", name)
}

func (d *Dispatcher) handleCreateRectangle(cmd *parser.Command) (bool, string) {
	// Two forms: four explicit corners, or two diagonal points spanning an
	// axis-aligned rectangle.
	name, msg, ok := d.requireName(cmd)
	if !ok {
		return false, msg
	}
	if msg, ok := d.validateUniqueName(name); !ok {
		return false, msg
	}

	if cmd.HasCoords("coord_1", "coord_2", "coord_3", "coord_4") {
		shape, err := shapes.NewRectangleFromCorners(name,
			cmd.Coords["coord_1"], cmd.Coords["coord_2"],
			cmd.Coords["coord_3"], cmd.Coords["coord_4"])
		if err != nil {
			return false, rejectionText(err)
		}
		d.renderer.AddShape(shape)
		d.registry.Add(name, shape)
		return true, fmt.Sprintf("Rectangle '%s' created from four corners.", name)
	}

	p1, msg, ok := d.requireCoord(cmd, "coord_1")
	if !ok {
		return false, msg
	}
	p2, msg, ok := d.requireCoord(cmd, "coord_2")
	if !ok {
		return false, msg
	}

	shape, err := shapes.NewRectangleFromDiagonal(name, p1, p2)
	if err != nil {
		return false, rejectionText(err)
	}
	d.renderer.AddShape(shape)
	d.registry.Add(name, shape)
	return true, fmt.Sprintf("Rectangle '%s' created from diagonal points.", name)
}

func (d *Dispatcher) handleCreateSquare(cmd *parser.Command) (bool, string) {
	name, msg, ok := d.requireName(cmd)
	if !ok {
		return false, msg
	}
	if msg, ok := d.validateUniqueName(name); !ok {
		return false, msg
	}

	if cmd.HasCoords("coord_1", "coord_2", "coord_3", "coord_4") {
		shape, err := shapes.NewSquareFromVertices(name,
			cmd.Coords["coord_1"], cmd.Coords["coord_2"],
			cmd.Coords["coord_3"], cmd.Coords["coord_4"])
		if err != nil {
			return false, rejectionText(err)
		}
		d.renderer.AddShape(shape)
		d.registry.Add(name, shape)
		return true, fmt.Sprintf("Square '%s' created from four vertices.", name)
	}

	p1, msg, ok := d.requireCoord(cmd, "coord_1")
	if !ok {
		return false, msg
	}
	p2, msg, ok := d.requireCoord(cmd, "coord_2")
	if !ok {
		return false, msg
	}

	shape, err := shapes.NewSquareFromDiagonal(name, p1, p2)
	if err != nil {
		return false, rejectionText(err)
	}
	d.renderer.AddShape(shape)
	d.registry.Add(name, shape)
	return true, fmt.Sprintf("Square '%s' created from diagonal points.", name)
}

func (d *Dispatcher) handleConnect(cmd *parser.Command) (bool, string) {
	n1, ok1 := cmd.Args["object_name_1"]
	n2, ok2 := cmd.Args["object_name_2"]
	if !ok1 || !ok2 {
		return false, "Missing -object_name_1 or -object_name_2."
	}

	s1, found1 := d.registry.Get(n1)
	s2, found2 := d.registry.Get(n2)
	if !found1 || !found2 {
		return false, "One or both objects not found."
	}

	// The dashed segment is a visual record only; it is not registered
	// anywhere and cannot be looked up or removed later.
	d.renderer.DrawDashedSegment(s1.Center(), s2.Center())

	return true, fmt.Sprintf("Connected '%s' and '%s' by their centers.", n1, n2)
}

// handleExecuteFile runs every command line of a script through the same
// pipeline, one line at a time, in file order. A line that fails to parse or
// execute is recorded and skipped; it never aborts the batch. Only a file
// that cannot be opened fails the command outright.
func (d *Dispatcher) handleExecuteFile(cmd *parser.Command) (bool, string) {
	path, ok := cmd.Args["file_path"]
	if !ok {
		return false, "Missing -file_path."
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Sprintf("Failed to open script file: %s", path)
	}
	defer f.Close()

	var detail strings.Builder
	lineNo := 0
	successCount := 0
	failureCount := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		lineCmd, perr := parser.Parse(raw)
		if perr != nil {
			failureCount++
			fmt.Fprintf(&detail, "\nLine %d parse error: %s", lineNo, perr.Error())
			continue
		}

		if ok, execMsg := d.Execute(lineCmd); !ok {
			failureCount++
			fmt.Fprintf(&detail, "\nLine %d failed: %s", lineNo, execMsg)
		} else {
			successCount++
		}
	}

	// A read error truncates the script mid-file; the lines already run
	// stay applied, but the batch must not report clean success.
	if err := scanner.Err(); err != nil {
		return false, fmt.Sprintf("Failed to read script file: %s", path)
	}

	msg := fmt.Sprintf("Script executed: %d successes, %d failures.%s",
		successCount, failureCount, detail.String())
	return failureCount == 0, msg
}
