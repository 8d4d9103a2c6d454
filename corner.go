package outline

import "math"

// cornerKind classifies a contour vertex for emboldening.
//
// Convexity is measured relative to the offset direction: a corner is
// convex when the offset opens it up (the offset edges would leave a gap)
// and concave when the offset edges run into each other. With a negative
// strength the glyph's convex corners therefore count as concave.
type cornerKind uint8

const (
	// cornerConvexNormal is moved along the bisector by s/cos(θ/2).
	cornerConvexNormal cornerKind = iota

	// cornerConvexSharp would overshoot as a miter. On-curve points are
	// split into two points, each offset along its own edge normal.
	// Control points cannot be split and get a miter-limited bisector.
	cornerConvexSharp

	// cornerConcaveNormal is moved along the bisector by s/cos(θ/2).
	cornerConcaveNormal

	// cornerConcaveSharp is moved along the bisector, but never so far
	// that it slides past the end of the shorter incident edge.
	cornerConcaveSharp
)

func (k cornerKind) String() string {
	switch k {
	case cornerConvexNormal:
		return "convex-normal"
	case cornerConvexSharp:
		return "convex-sharp"
	case cornerConcaveNormal:
		return "concave-normal"
	case cornerConcaveSharp:
		return "concave-sharp"
	default:
		return "Unknown"
	}
}

// CornerPolicy holds the thresholds of the embolden corner table.
// Thresholds are cosines of the turn angle θ between the incoming and the
// outgoing edge: a straight continuation has cos θ = 1, a full reversal
// cos θ = -1.
type CornerPolicy struct {
	// SharpConvexCos is the cosine below which a convex corner is sharp.
	// The default of -0.5 (turns beyond 120°) corresponds to a miter
	// limit of 2.
	SharpConvexCos float64

	// SharpConcaveCos is the cosine below which a concave corner is
	// clamped against its incident edges. The default is 0 (turns
	// beyond 90°).
	SharpConcaveCos float64
}

// DefaultCornerPolicy returns the thresholds used by Embolden unless
// overridden with WithCornerPolicy.
func DefaultCornerPolicy() CornerPolicy {
	return CornerPolicy{
		SharpConvexCos:  -0.5,
		SharpConcaveCos: 0,
	}
}

// miterLimit returns the longest bisector offset, as a multiple of the
// strength, that a convex corner may get before it counts as sharp.
func (p CornerPolicy) miterLimit() float64 {
	h := (1 + p.SharpConvexCos) / 2
	if h <= 0 {
		return math.Inf(1)
	}
	return 1 / math.Sqrt(h)
}

// corner is the local geometry around one vertex.
type corner struct {
	nIn, nOut Vec2    // outward unit normals of the incoming and outgoing edge
	cos       float64 // in·out for the unit edge directions
	sin       float64 // in×out for the unit edge directions
	minLen    float64 // length of the shorter incident edge
}

// newCorner computes the vertex geometry from the vectors of the incoming
// and outgoing edge. sigma is the outline orientation (see
// Outline.orientation); the normals point to its right when sigma is
// positive and to its left otherwise.
func newCorner(in, out Vec2, sigma float64) corner {
	inLen, outLen := in.Length(), out.Length()
	in, out = in.Normalize(), out.Normalize()
	nIn, nOut := in.Perp(), out.Perp()
	if sigma > 0 {
		nIn, nOut = nIn.Neg(), nOut.Neg()
	}
	return corner{
		nIn:    nIn,
		nOut:   nOut,
		cos:    in.Dot(out),
		sin:    in.Cross(out),
		minLen: min(inLen, outLen),
	}
}

// classifyCorner is the embolden decision table.
//
//	turn     | cos θ               | kind
//	---------+---------------------+----------------
//	convex   | >= SharpConvexCos   | convex-normal
//	convex   | <  SharpConvexCos   | convex-sharp
//	concave  | >= SharpConcaveCos  | concave-normal
//	concave  | <  SharpConcaveCos  | concave-sharp
//
// A full reversal (sin θ = 0, cos θ < 0) is a spike and counts as convex.
func classifyCorner(c corner, sigma, strength float64, p CornerPolicy) cornerKind {
	turn := sigma * c.sin
	if strength < 0 {
		turn = -turn
	}
	convex := turn > 0 || (turn == 0 && c.cos < 0)
	switch {
	case convex && c.cos >= p.SharpConvexCos:
		return cornerConvexNormal
	case convex:
		return cornerConvexSharp
	case c.cos >= p.SharpConcaveCos:
		return cornerConcaveNormal
	default:
		return cornerConcaveSharp
	}
}

// cornerOffset is the displacement of one vertex. When split is set the
// vertex becomes two points: d1 offsets it along the incoming edge normal
// and d2 along the outgoing one. Otherwise d1 is the only displacement.
type cornerOffset struct {
	d1, d2 Vec2
	split  bool
}

// cosEpsilon bounds 1+cos θ away from zero before dividing by it.
const cosEpsilon = 1e-9

// offset applies the strategy of kind to the corner c for strength s.
func (p CornerPolicy) offset(c corner, kind cornerKind, s float64, onCurve bool) cornerOffset {
	bisector := c.nIn.Add(c.nOut)
	d := 1 + c.cos

	switch kind {
	case cornerConvexSharp:
		if onCurve {
			return cornerOffset{d1: c.nIn.Mul(s), d2: c.nOut.Mul(s), split: true}
		}
		if bisector.IsZero() {
			return cornerOffset{}
		}
		// |bisector| = 2cos(θ/2), so the miter length s/cos(θ/2) is 2s/|bisector|.
		scale := min(2/bisector.Length(), p.miterLimit())
		return cornerOffset{d1: bisector.Normalize().Mul(s * scale)}

	case cornerConcaveNormal, cornerConcaveSharp:
		// Concave corners never move past the end of the shorter edge.
		q := math.Abs(c.sin)
		if d < cosEpsilon && q < cosEpsilon {
			return cornerOffset{}
		}
		f := s / d
		if d < cosEpsilon || math.Abs(s)*q > c.minLen*d {
			f = math.Copysign(c.minLen/q, s)
		}
		return cornerOffset{d1: bisector.Mul(f)}

	default:
		if d < cosEpsilon {
			return cornerOffset{}
		}
		return cornerOffset{d1: bisector.Mul(s / d)}
	}
}
