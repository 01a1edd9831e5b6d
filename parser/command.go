// Package parser turns one line of raw command text into a structured
// Command. It knows the grammar (flag-value pairs, coordinate tokens) but
// nothing about what any command means; semantics live in the runtime
// dispatcher.
package parser

import "github.com/objectdraw/objectdraw/core"

// Command is the parsed form of one input line. It carries no behavior; the
// dispatcher consumes it.
type Command struct {
	// Name is the command keyword, e.g. "create_line". Non-empty after a
	// successful parse.
	Name string

	// Args maps flag names (without the leading dash) to their raw string
	// values, e.g. "name" -> "l1".
	Args map[string]string

	// Coords maps coordinate flag names (without the leading dash, e.g.
	// "coord_1") to their parsed points.
	Coords map[string]core.Point
}

// HasCoords reports whether every one of the given coordinate keys is
// present.
func (c *Command) HasCoords(keys ...string) bool {
	for _, k := range keys {
		if _, ok := c.Coords[k]; !ok {
			return false
		}
	}
	return true
}
