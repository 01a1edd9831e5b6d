package shapes

import "errors"

// Validation failures surfaced by the constructors. Callers that talk to a
// user map these to display text; the sentinels themselves stay comparable
// with errors.Is.
var (
	ErrCollinearVertices = errors.New("triangle vertices are collinear")
	ErrNotRectangle      = errors.New("corners do not form a rectangle")
	ErrDegenerateRect    = errors.New("diagonal points share an axis")
	ErrNotSquare         = errors.New("vertices do not form a square")
	ErrInvalidDiagonal   = errors.New("diagonal points do not define a square")
)
