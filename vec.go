package outline

import "math"

// Vec2 represents a 2D displacement vector.
// Unlike Point which represents a position in font units, Vec2 is used for
// directions and offsets, and carries float64 precision so that normals and
// bisectors of short edges do not lose accuracy.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
// Positive values mean w is counter-clockwise from v.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
