package outline

// DefaultEmboldenStrength is the strength, in font units, that FreeType
// uses for synthetic bold.
const DefaultEmboldenStrength = 20

// Embolden thickens the glyph by moving every point, on-curve and control
// points alike, outward by strength font units. A negative strength thins
// the glyph. The outline is modified in place and returned.
//
// Each contour is treated as a closed polygon through all of its points.
// A vertex moves along the bisector of its two edge normals by
// strength/cos(θ/2), so that both offset edges lie exactly strength away
// from the original ones. Corners are handled according to the policy
// table described on CornerPolicy: sharp corners that would overshoot are
// split in two (which adds points to the contour), and sharp corners that
// close up are clamped so that the moved point does not cross its
// neighbours.
//
// Which side is outward is decided once for the whole outline from its
// total signed area, so outer contours grow and holes shrink regardless
// of the font's winding convention. Contours with fewer than three
// distinct points are left alone, as is an outline without area.
//
// Embolden never fails. Strengths that are large relative to the glyph
// can still produce self-intersecting contours.
func (o *Outline) Embolden(strength float32, opts ...EmboldenOption) *Outline {
	if o == nil || strength == 0 {
		return o
	}
	cfg := defaultEmboldenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sigma := o.orientation()
	if sigma == 0 {
		Logger().Debug("outline: embolden skipped, outline has no area")
		return o
	}

	var splits, skipped int
	for i := range o.contours {
		n, ok := emboldenContour(&o.contours[i], float64(strength), sigma, cfg.policy)
		if !ok {
			skipped++
		}
		splits += n
	}
	Logger().Debug("outline: emboldened",
		"strength", strength, "contours", len(o.contours), "skipped", skipped, "splits", splits)
	return o
}

// emboldenContour offsets the points of c and returns the number of split
// corners. It returns false if the contour is degenerate and was left
// unchanged.
func emboldenContour(c *Contour, s, sigma float64, policy CornerPolicy) (int, bool) {
	pts := c.points
	n := len(pts)

	// An explicit closing edge repeats the start point. The duplicate is
	// not a vertex of its own; it follows vertex 0.
	m := n
	closedDup := n > 1 && pts[n-1].Eq(pts[0])
	if closedDup {
		m--
	}
	if distinctVertices(pts[:m]) < 3 {
		return 0, false
	}

	on := c.onCurve()
	offsets := make([]cornerOffset, m)
	splits := 0
	for i := 0; i < m; i++ {
		prev := i
		for pts[prev].Eq(pts[i]) {
			prev = (prev + m - 1) % m
		}
		next := i
		for pts[next].Eq(pts[i]) {
			next = (next + 1) % m
		}

		cr := newCorner(pts[i].Sub(pts[prev]), pts[next].Sub(pts[i]), sigma)
		kind := classifyCorner(cr, sigma, s, policy)
		off := policy.offset(cr, kind, s, on[i])

		// In a run of coincident points only the last one is split; the
		// others take the incoming side so the run stays monotone.
		if off.split && pts[(i+1)%m].Eq(pts[i]) {
			off = cornerOffset{d1: off.d1}
		}
		if off.split {
			splits++
		}
		offsets[i] = off
	}

	if splits == 0 {
		for i := range pts {
			v := i
			if i >= m {
				v = 0
			}
			pts[i] = pts[i].Add(offsets[v].d1)
		}
		return 0, true
	}

	verbs := make([]Verb, 0, len(c.verbs)+splits)
	points := make([]Point, 0, n+splits)
	k := 0
	for _, verb := range c.verbs {
		switch verb {
		case MoveTo:
			off := offsets[0]
			d := off.d1
			if off.split {
				d = off.d2
			}
			verbs = append(verbs, MoveTo)
			points = append(points, pts[0].Add(d))
			k++

		case Close:
			if offsets[0].split && !closedDup {
				verbs = append(verbs, LineTo)
				points = append(points, pts[0].Add(offsets[0].d1))
			}
			verbs = append(verbs, Close)

		default:
			verbs = append(verbs, verb)
			var tail *Point
			for j := 0; j < verb.NumPoints(); j++ {
				idx := k + j
				v := idx
				if idx >= m {
					v = 0
				}
				off := offsets[v]
				points = append(points, pts[idx].Add(off.d1))
				if off.split && v != 0 {
					p := pts[idx].Add(off.d2)
					tail = &p
				}
			}
			if tail != nil {
				verbs = append(verbs, LineTo)
				points = append(points, *tail)
			}
			k += verb.NumPoints()
		}
	}
	c.verbs = verbs
	c.points = points
	return splits, true
}

// distinctVertices counts the points of a closed polygon that differ from
// their predecessor.
func distinctVertices(pts []Point) int {
	if len(pts) == 0 {
		return 0
	}
	count := 0
	for i, p := range pts {
		prev := pts[(i+len(pts)-1)%len(pts)]
		if !p.Eq(prev) {
			count++
		}
	}
	return count
}
