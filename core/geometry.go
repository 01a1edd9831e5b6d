package core

import (
	"math"
	"sort"
)

// Tolerances for the geometry predicates. EpsGeometry is used for angle and
// length comparisons, EpsDiagonal for diagonal non-degeneracy checks.
const (
	EpsGeometry = 1e-6
	EpsDiagonal = 1e-9
)

// Collinear reports whether a, b and c lie on one line, i.e. whether the
// magnitude of the 2D cross product of (b-a) and (c-a) is below eps.
// Near-zero-area triangles count as degenerate.
func Collinear(a, b, c Point, eps float64) bool {
	ab := Sub(b, a)
	ac := Sub(c, a)
	cross := ab.X*ac.Y - ab.Y*ac.X
	return math.Abs(cross) < eps
}

// rightAngle reports whether the angle at b is right: (a-b) . (c-b) == 0.
func rightAngle(a, b, c Point, eps float64) bool {
	v1 := Sub(a, b)
	v2 := Sub(c, b)
	return math.Abs(Dot(v1, v2)) < eps
}

// sortCanonical returns the four points ordered by x, then y. The extremes
// end up at positions 0 and 3; the middle two may be either remaining corner.
func sortCanonical(p1, p2, p3, p4 Point) [4]Point {
	pts := [4]Point{p1, p2, p3, p4}
	sort.Slice(pts[:], func(i, j int) bool {
		if pts[i].X == pts[j].X {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

// IsRectangle reports whether the four points form a rectangle, independent
// of input order. The points are sorted into a canonical arrangement, a
// right angle is probed at both extreme corners (in both pairings, since
// sorted order does not guarantee adjacency) and the opposite squared side
// lengths must match within eps.
//
// This is a tolerance-based heuristic, not a proof: self-intersecting or
// non-convex orderings are not distinguished from their convex hull.
func IsRectangle(p1, p2, p3, p4 Point, eps float64) bool {
	pts := sortCanonical(p1, p2, p3, p4)
	a, b, c, d := pts[0], pts[1], pts[2], pts[3]

	rightA := rightAngle(b, a, c, eps) || rightAngle(c, a, b, eps)
	rightD := rightAngle(b, d, c, eps) || rightAngle(c, d, b, eps)

	dAB := Dist2(a, b)
	dCD := Dist2(c, d)
	dAC := Dist2(a, c)
	dBD := Dist2(b, d)
	oppEqual := math.Abs(dAB-dCD) < eps && math.Abs(dAC-dBD) < eps

	return rightA && rightD && oppEqual
}

// IsSquare reports whether the four points form a square: the rectangle test
// must pass and the squared side estimates adjacent to each extreme corner
// must be equal and strictly greater than eps (a zero-size square is
// rejected).
func IsSquare(p1, p2, p3, p4 Point, eps float64) bool {
	pts := sortCanonical(p1, p2, p3, p4)
	a, b, c, d := pts[0], pts[1], pts[2], pts[3]

	if !IsRectangle(a, b, c, d, eps) {
		return false
	}

	// In the canonical arrangement of a rectangle, b and c are the corners
	// adjacent to both extremes, so these are the two side lengths.
	s1 := Dist2(a, b)
	s2 := Dist2(a, c)
	s3 := Dist2(d, b)
	s4 := Dist2(d, c)
	return math.Abs(s1-s2) < eps && math.Abs(s3-s4) < eps && s1 > eps
}

// IsValidSquareDiagonal reports whether d1 and d2 can serve as the diagonal
// of a square, i.e. the squared distance between them exceeds eps.
func IsValidSquareDiagonal(d1, d2 Point, eps float64) bool {
	return Dist2(d1, d2) > eps
}
