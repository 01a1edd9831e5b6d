// Package core contains the fundamental value types and geometry predicates
// used by shape validation. Everything here is pure: no state, no failure
// modes beyond the boolean answers themselves.
package core

// Point is a 2D coordinate. Immutable value type, no identity.
type Point struct {
	X, Y float64
}

// Sub returns the vector difference a - b.
func Sub(a, b Point) Point {
	return Point{a.X - b.X, a.Y - b.Y}
}

// Dot returns the dot product of the vectors represented by a and b.
func Dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Dist2 returns the squared Euclidean distance between a and b.
func Dist2(a, b Point) float64 {
	v := Sub(a, b)
	return v.X*v.X + v.Y*v.Y
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2.0, (a.Y + b.Y) / 2.0}
}

// BoundsCenter returns the center of the axis-aligned bounding box of pts.
// Returns the zero point for an empty slice.
func BoundsCenter(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Point{(minX + maxX) / 2.0, (minY + maxY) / 2.0}
}
