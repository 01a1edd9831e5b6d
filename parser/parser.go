package parser

import (
	"strings"

	"github.com/objectdraw/objectdraw/core"
)

const (
	flagMarker  = "-"
	coordPrefix = "-coord_"
)

// Parse tokenizes one line of raw text into a Command. The grammar after the
// command name is strictly flag-value pairs: a single forward pass with one
// token of lookahead, no backtracking. A token is classified purely
// syntactically — `-coord_*` flags take a coordinate value, every other
// `-` flag takes a verbatim string value, and bare tokens are rejected.
func Parse(raw string) (*Command, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return nil, errf(ErrEmptyCommand, raw)
	}

	cmd := &Command{
		Name:   tokens[0],
		Args:   make(map[string]string),
		Coords: make(map[string]core.Point),
	}
	tokens = tokens[1:]

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]

		if strings.HasPrefix(t, coordPrefix) {
			if i+1 >= len(tokens) {
				return nil, errf(ErrMissingCoordinateValue, t)
			}
			pt, perr := parseCoordinate(tokens[i+1])
			if perr != nil {
				return nil, perr
			}
			cmd.Coords[strings.TrimPrefix(t, flagMarker)] = pt
			i++
			continue
		}

		if strings.HasPrefix(t, flagMarker) {
			if i+1 >= len(tokens) {
				return nil, errf(ErrMissingFlagValue, t)
			}
			cmd.Args[strings.TrimPrefix(t, flagMarker)] = tokens[i+1]
			i++
			continue
		}

		return nil, errf(ErrUnexpectedToken, t)
	}

	// Tokenization guarantees a non-empty first token; kept as a defensive
	// invariant check.
	if cmd.Name == "" {
		return nil, errf(ErrEmptyName, raw)
	}

	return cmd, nil
}
