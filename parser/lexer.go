package parser

import (
	"math"
	"strconv"

	"github.com/objectdraw/objectdraw/core"
)

const eof = rune(0)

// coordScanner walks a single coordinate token rune by rune. The grammar is
// `{` spaces? number spaces? `,` spaces? number spaces? `}` with nothing
// before or after, where number is a signed decimal with an optional
// fractional part.
type coordScanner struct {
	input []rune
	pos   int
}

func (s *coordScanner) peek() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	return s.input[s.pos]
}

func (s *coordScanner) read() rune {
	r := s.peek()
	if r != eof {
		s.pos++
	}
	return r
}

func (s *coordScanner) skipSpaces() {
	for s.peek() == ' ' || s.peek() == '\t' {
		s.pos++
	}
}

// scanNumber consumes a signed decimal literal and returns its text. The
// boolean is false when no well-formed literal starts at the current
// position.
func (s *coordScanner) scanNumber() (string, bool) {
	start := s.pos
	if s.peek() == '-' {
		s.read()
	}
	digits := 0
	for s.peek() >= '0' && s.peek() <= '9' {
		s.read()
		digits++
	}
	if digits == 0 {
		return "", false
	}
	if s.peek() == '.' {
		s.read()
		frac := 0
		for s.peek() >= '0' && s.peek() <= '9' {
			s.read()
			frac++
		}
		if frac == 0 {
			return "", false
		}
	}
	return string(s.input[start:s.pos]), true
}

// parseCoordinate parses a token of the form {x,y} into a point.
// Classification errors (shape of the token) report ErrInvalidCoordinate;
// numbers that scan but do not convert to finite floats report
// ErrInvalidNumeric.
func parseCoordinate(token string) (core.Point, *ParseError) {
	s := &coordScanner{input: []rune(token)}

	if s.read() != '{' {
		return core.Point{}, errf(ErrInvalidCoordinate, token)
	}
	s.skipSpaces()
	xText, ok := s.scanNumber()
	if !ok {
		return core.Point{}, errf(ErrInvalidCoordinate, token)
	}
	s.skipSpaces()
	if s.read() != ',' {
		return core.Point{}, errf(ErrInvalidCoordinate, token)
	}
	s.skipSpaces()
	yText, ok := s.scanNumber()
	if !ok {
		return core.Point{}, errf(ErrInvalidCoordinate, token)
	}
	s.skipSpaces()
	if s.read() != '}' {
		return core.Point{}, errf(ErrInvalidCoordinate, token)
	}
	if s.peek() != eof {
		return core.Point{}, errf(ErrInvalidCoordinate, token)
	}

	x, errX := strconv.ParseFloat(xText, 64)
	y, errY := strconv.ParseFloat(yText, 64)
	if errX != nil || errY != nil || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return core.Point{}, errf(ErrInvalidNumeric, token)
	}
	return core.Point{X: x, Y: y}, nil
}
