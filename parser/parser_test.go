package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objectdraw/objectdraw/core"
)

func parseOK(t *testing.T, input string) *Command {
	t.Helper()
	cmd, err := Parse(input)
	require.NoError(t, err, "Input: %s", input)
	require.NotNil(t, cmd)
	return cmd
}

func parseErr(t *testing.T, input string, kind ErrKind) *ParseError {
	t.Helper()
	cmd, err := Parse(input)
	require.Error(t, err, "Input: %s", input)
	require.Nil(t, cmd)
	perr, ok := err.(*ParseError)
	require.True(t, ok, "expected *ParseError, got %T", err)
	assert.Equal(t, kind, perr.Kind, "Input: %s, got message: %s", input, perr.Error())
	return perr
}

func TestParseCreateLine(t *testing.T) {
	cmd := parseOK(t, "create_line -name l1 -coord_1 {0,0} -coord_2 {5,2}")
	assert.Equal(t, "create_line", cmd.Name)
	assert.Equal(t, "l1", cmd.Args["name"])
	assert.Equal(t, core.Point{X: 0, Y: 0}, cmd.Coords["coord_1"])
	assert.Equal(t, core.Point{X: 5, Y: 2}, cmd.Coords["coord_2"])
}

func TestParseSignedAndFractionalNumbers(t *testing.T) {
	cmd := parseOK(t, "create_line -name l -coord_1 {-1.5,2.25} -coord_2 {-0.5,-3}")
	assert.Equal(t, core.Point{X: -1.5, Y: 2.25}, cmd.Coords["coord_1"])
	assert.Equal(t, core.Point{X: -0.5, Y: -3}, cmd.Coords["coord_2"])
}

func TestParseExtraWhitespace(t *testing.T) {
	cmd := parseOK(t, "  connect    -object_name_1   a  -object_name_2 b  ")
	assert.Equal(t, "connect", cmd.Name)
	assert.Equal(t, "a", cmd.Args["object_name_1"])
	assert.Equal(t, "b", cmd.Args["object_name_2"])
	assert.Empty(t, cmd.Coords)
}

func TestParseRepeatedFlagLastWins(t *testing.T) {
	cmd := parseOK(t, "create_line -name a -name b")
	assert.Equal(t, "b", cmd.Args["name"])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrKind
		token string
	}{
		{"empty input", "", ErrEmptyCommand, ""},
		{"whitespace only", "   \t  ", ErrEmptyCommand, ""},
		{"flag without value", "create_line -name", ErrMissingFlagValue, "-name"},
		{"coord without value", "create_line -coord_1", ErrMissingCoordinateValue, "-coord_1"},
		{"bare positional token", "create_line l1", ErrUnexpectedToken, "l1"},
		{"missing braces", "create_line -coord_1 0,0", ErrInvalidCoordinate, "0,0"},
		{"missing comma", "create_line -coord_1 {0;0}", ErrInvalidCoordinate, "{0;0}"},
		{"single number", "create_line -coord_1 {5}", ErrInvalidCoordinate, "{5}"},
		{"trailing garbage", "create_line -coord_1 {1,2}x", ErrInvalidCoordinate, "{1,2}x"},
		{"bare dot fraction", "create_line -coord_1 {1.,2}", ErrInvalidCoordinate, "{1.,2}"},
		{"letters inside", "create_line -coord_1 {a,b}", ErrInvalidCoordinate, "{a,b}"},
		{"huge literal overflows", "create_line -coord_1 {1e309,0}", ErrInvalidCoordinate, "{1e309,0}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			perr := parseErr(t, tc.input, tc.kind)
			if tc.token != "" {
				assert.Equal(t, tc.token, perr.Token)
			}
		})
	}
}

func TestParseNonFiniteNumberRejected(t *testing.T) {
	// A literal that matches the grammar but overflows float64 is a numeric
	// failure, not a format failure.
	token := "{" + strings.Repeat("9", 400) + ",0}"
	perr := parseErr(t, "create_line -coord_1 "+token, ErrInvalidNumeric)
	assert.Equal(t, token, perr.Token)
}

func TestParseCoordinateValueSplitBySpaces(t *testing.T) {
	// Whitespace inside braces splits the token before the coordinate
	// scanner ever sees it, so the fragment is rejected as malformed.
	parseErr(t, "create_line -coord_1 {0, 0}", ErrInvalidCoordinate)
}

func TestParseErrorMessages(t *testing.T) {
	perr := parseErr(t, "create_line -coord_1 {oops}", ErrInvalidCoordinate)
	assert.Equal(t, "Invalid coordinate format '{oops}'. Expected {x,y}.", perr.Error())

	perr = parseErr(t, "", ErrEmptyCommand)
	assert.Equal(t, "No tokens found in the command.", perr.Error())

	perr = parseErr(t, "create_line stray", ErrUnexpectedToken)
	assert.Equal(t, "Unexpected token 'stray'. Flags should start with '-'.", perr.Error())
}

func TestCoordinateRoundTrip(t *testing.T) {
	// Values parsed from a valid token must reproduce the literal exactly
	// within float64 representation.
	cmd := parseOK(t, "create_line -coord_1 {2.5,-1.25} -coord_2 {100,0.0625}")
	assert.Equal(t, 2.5, cmd.Coords["coord_1"].X)
	assert.Equal(t, -1.25, cmd.Coords["coord_1"].Y)
	assert.Equal(t, 100.0, cmd.Coords["coord_2"].X)
	assert.Equal(t, 0.0625, cmd.Coords["coord_2"].Y)
}

func TestHasCoords(t *testing.T) {
	cmd := parseOK(t, "create_rectangle -name r -coord_1 {0,0} -coord_2 {2,3}")
	assert.True(t, cmd.HasCoords("coord_1", "coord_2"))
	assert.False(t, cmd.HasCoords("coord_1", "coord_2", "coord_3", "coord_4"))
}
