package outline

import "slices"

// Contour is one closed loop of a glyph outline.
//
// A contour is stored as two flat arrays: the verbs in drawing order and
// the points they consume (see Verb.NumPoints). A well-formed contour
// starts with MoveTo, ends with Close and has at least one drawing verb
// in between.
type Contour struct {
	verbs  []Verb
	points []Point
}

// Verbs returns a copy of the contour's verbs.
func (c Contour) Verbs() []Verb {
	return slices.Clone(c.verbs)
}

// Points returns a copy of the contour's points, on-curve and control
// points alike, in storage order.
func (c Contour) Points() []Point {
	return slices.Clone(c.points)
}

// Len returns the number of verbs, including MoveTo and Close.
func (c Contour) Len() int {
	return len(c.verbs)
}

// NumPoints returns the number of stored points.
func (c Contour) NumPoints() int {
	return len(c.points)
}

// SignedArea returns the shoelace area of the polygon through all of the
// contour's points. It is positive for counter-clockwise contours in a
// Y-up coordinate system.
func (c Contour) SignedArea() float64 {
	return signedArea(c.points)
}

func (c Contour) clone() Contour {
	return Contour{verbs: slices.Clone(c.verbs), points: slices.Clone(c.points)}
}

// onCurve reports, for every point of the contour, whether it is an
// on-curve point (the point of a MoveTo or the end point of a segment).
func (c Contour) onCurve() []bool {
	on := make([]bool, 0, len(c.points))
	for _, v := range c.verbs {
		n := v.NumPoints()
		for i := 0; i < n; i++ {
			on = append(on, i == n-1)
		}
	}
	return on
}

func signedArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum float64
	prev := pts[n-1]
	for _, p := range pts {
		sum += float64(prev.X)*float64(p.Y) - float64(p.X)*float64(prev.Y)
		prev = p
	}
	return sum / 2
}
