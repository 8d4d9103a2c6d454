package outline

import "math"

// DefaultSlant is a typical synthetic italic slant (about 14°).
const DefaultSlant = 0.25

// SlantFromAngle returns the shear ratio for a slant of angle radians,
// measured clockwise from the vertical.
func SlantFromAngle(angle float64) float32 {
	return float32(math.Tan(angle))
}

// Oblique shears the glyph horizontally to simulate an italic: every
// point (x, y), control points included, becomes (x + slant·y, y).
// The outline is modified in place and returned.
//
// Shears compose additively: Oblique(k1) followed by Oblique(k2) equals
// Oblique(k1+k2) up to floating-point rounding.
func (o *Outline) Oblique(slant float32) *Outline {
	if o == nil || slant == 0 {
		return o
	}
	for i := range o.contours {
		pts := o.contours[i].points
		for j := range pts {
			pts[j].X += slant * pts[j].Y
		}
	}
	return o
}
