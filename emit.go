package outline

// Emit replays the outline into sink, contour by contour and segment by
// segment in stored order. Nothing is reordered, merged or normalized, so
// the points added by Embolden's corner splitting reach the sink as they
// are. Emit does not modify the outline.
func (o *Outline) Emit(sink PathSink) {
	if o == nil {
		return
	}
	for _, c := range o.contours {
		k := 0
		for _, v := range c.verbs {
			p := c.points[k : k+v.NumPoints()]
			switch v {
			case MoveTo:
				sink.MoveTo(p[0].X, p[0].Y)
			case LineTo:
				sink.LineTo(p[0].X, p[0].Y)
			case QuadTo:
				sink.QuadTo(p[0].X, p[0].Y, p[1].X, p[1].Y)
			case CubicTo:
				sink.CubeTo(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
			case Close:
				sink.ClosePath()
			}
			k += v.NumPoints()
		}
	}
}
