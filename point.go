package outline

import "math"

// Point is a position in font design units.
// Points have no identity beyond their coordinates and are copied by value.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by the displacement v.
// The sum is computed in float64 and rounded once.
func (p Point) Add(v Vec2) Point {
	return Point{
		X: float32(float64(p.X) + v.X),
		Y: float32(float64(p.Y) + v.Y),
	}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: float64(p.X) - float64(q.X), Y: float64(p.Y) - float64(q.Y)}
}

// Eq reports whether p and q have identical coordinates.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(float64(p.X)) && !math.IsInf(float64(p.X), 0) &&
		!math.IsNaN(float64(p.Y)) && !math.IsInf(float64(p.Y), 0)
}
