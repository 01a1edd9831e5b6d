package parser

import "fmt"

// ErrKind classifies a parse failure. Every kind is terminal for the line
// being parsed.
type ErrKind int

const (
	// ErrEmptyCommand: the input contained no tokens at all.
	ErrEmptyCommand ErrKind = iota
	// ErrEmptyName: tokenization produced an empty command name.
	ErrEmptyName
	// ErrMissingFlagValue: a generic flag had no following value token.
	ErrMissingFlagValue
	// ErrMissingCoordinateValue: a -coord_N flag had no following token.
	ErrMissingCoordinateValue
	// ErrInvalidCoordinate: a coordinate token did not match {x,y}.
	ErrInvalidCoordinate
	// ErrInvalidNumeric: a coordinate number failed to parse as a finite
	// float.
	ErrInvalidNumeric
	// ErrUnexpectedToken: a bare token appeared where a flag was expected.
	ErrUnexpectedToken
)

// ParseError describes why a line was rejected, carrying the offending flag
// or token so the user can fix the input.
type ParseError struct {
	Kind  ErrKind
	Token string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrEmptyCommand:
		return "No tokens found in the command."
	case ErrEmptyName:
		return "Command name is empty."
	case ErrMissingFlagValue:
		return fmt.Sprintf("Expected value after flag '%s'.", e.Token)
	case ErrMissingCoordinateValue:
		return fmt.Sprintf("Expected coordinate after '%s'.", e.Token)
	case ErrInvalidCoordinate:
		return fmt.Sprintf("Invalid coordinate format '%s'. Expected {x,y}.", e.Token)
	case ErrInvalidNumeric:
		return fmt.Sprintf("Failed to parse numeric values in '%s'.", e.Token)
	case ErrUnexpectedToken:
		return fmt.Sprintf("Unexpected token '%s'. Flags should start with '-'.", e.Token)
	default:
		return fmt.Sprintf("Unknown parse error near '%s'.", e.Token)
	}
}

func errf(kind ErrKind, token string) *ParseError {
	return &ParseError{Kind: kind, Token: token}
}
