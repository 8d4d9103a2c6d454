package outline

// Verb is the kind of a path segment.
type Verb uint8

const (
	// MoveTo starts a contour at its single point.
	MoveTo Verb = iota

	// LineTo draws a straight line to its single point.
	LineTo

	// QuadTo draws a quadratic Bézier curve.
	// Its points are the control point followed by the end point.
	QuadTo

	// CubicTo draws a cubic Bézier curve.
	// Its points are two control points followed by the end point.
	CubicTo

	// Close ends the contour. It carries no points.
	Close
)

// String returns a string representation of the verb.
func (v Verb) String() string {
	switch v {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case QuadTo:
		return "QuadTo"
	case CubicTo:
		return "CubicTo"
	case Close:
		return "Close"
	default:
		return "Unknown"
	}
}

// NumPoints returns how many points the verb consumes from a contour's
// point array.
func (v Verb) NumPoints() int {
	switch v {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubicTo:
		return 3
	default:
		return 0
	}
}
