package outline

// GlyphID is a glyph index within a font.
type GlyphID uint16

// Outline is the vector outline of a single glyph: an ordered sequence of
// closed contours.
//
// An Outline exclusively owns its contours. Accessors hand out copies,
// and the transforms (Embolden, Oblique) mutate the outline in place and
// return the same pointer. Contour order is never changed, since the
// fill rule of the consumer depends on it.
//
// An Outline is not safe for concurrent mutation.
type Outline struct {
	contours []Contour
}

// NumContours returns the number of contours.
func (o *Outline) NumContours() int {
	if o == nil {
		return 0
	}
	return len(o.contours)
}

// Contour returns a copy of the i-th contour.
// It panics if i is out of range.
func (o *Outline) Contour(i int) Contour {
	return o.contours[i].clone()
}

// NumPoints returns the total number of points over all contours.
func (o *Outline) NumPoints() int {
	if o == nil {
		return 0
	}
	n := 0
	for _, c := range o.contours {
		n += len(c.points)
	}
	return n
}

// IsEmpty returns true if the outline has no contours.
func (o *Outline) IsEmpty() bool {
	return o.NumContours() == 0
}

// Clone creates a deep copy of the outline.
func (o *Outline) Clone() *Outline {
	if o == nil {
		return nil
	}
	clone := &Outline{contours: make([]Contour, len(o.contours))}
	for i, c := range o.contours {
		clone.contours[i] = c.clone()
	}
	return clone
}

// BBox returns the bounding box of all points, control points included.
// The box of an empty outline is empty.
func (o *Outline) BBox() BBox {
	box := EmptyBBox()
	if o == nil {
		return box
	}
	for _, c := range o.contours {
		for _, p := range c.points {
			box.Extend(p)
		}
	}
	return box
}

// orientation returns +1 if the filled region lies to the left of the
// direction of travel (counter-clockwise outer contours in a Y-up
// system), -1 if it lies to the right, and 0 if the outline has no area.
func (o *Outline) orientation() float64 {
	var area float64
	for _, c := range o.contours {
		area += c.SignedArea()
	}
	switch {
	case area > 0:
		return 1
	case area < 0:
		return -1
	default:
		return 0
	}
}
