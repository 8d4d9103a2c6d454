package outline

// PathSink receives a glyph outline as a stream of drawing commands.
//
// The same capability is used in both directions: extraction sources
// write into a PathSink (usually a Builder), and Outline.Emit replays an
// outline into one. The method set matches golang.org/x/image/vector's
// Rasterizer, so a *vector.Rasterizer is a PathSink as is.
type PathSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(cx, cy, x, y float32)
	CubeTo(c1x, c1y, c2x, c2y, x, y float32)
	ClosePath()
}

// Source is a glyph outline provider, typically a parsed font.
//
// Decompose writes the outline of gid into sink as a sequence of
// MoveTo/LineTo/QuadTo/CubeTo/ClosePath calls. A source reports a glyph
// without a vector outline by returning an error that wraps ErrNoOutline.
type Source interface {
	Decompose(gid GlyphID, sink PathSink) error
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(gid GlyphID, sink PathSink) error

// Decompose implements Source.
func (f SourceFunc) Decompose(gid GlyphID, sink PathSink) error {
	return f(gid, sink)
}

// Event is one recorded PathSink call.
type Event struct {
	Verb Verb

	// Points holds the call's arguments: one point for MoveTo and LineTo,
	// control then end point for QuadTo, two controls then end point for
	// CubicTo. Unused entries are zero.
	Points [3]Point
}

// Recorder is a PathSink that records every call it receives.
// The zero value is ready to use.
type Recorder struct {
	Events []Event
}

// MoveTo implements PathSink.
func (r *Recorder) MoveTo(x, y float32) {
	r.Events = append(r.Events, Event{Verb: MoveTo, Points: [3]Point{{x, y}}})
}

// LineTo implements PathSink.
func (r *Recorder) LineTo(x, y float32) {
	r.Events = append(r.Events, Event{Verb: LineTo, Points: [3]Point{{x, y}}})
}

// QuadTo implements PathSink.
func (r *Recorder) QuadTo(cx, cy, x, y float32) {
	r.Events = append(r.Events, Event{Verb: QuadTo, Points: [3]Point{{cx, cy}, {x, y}}})
}

// CubeTo implements PathSink.
func (r *Recorder) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	r.Events = append(r.Events, Event{Verb: CubicTo, Points: [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// ClosePath implements PathSink.
func (r *Recorder) ClosePath() {
	r.Events = append(r.Events, Event{Verb: Close})
}

// Reset discards all recorded events, keeping the allocated storage.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// Replay sends the recorded events to sink in order.
func (r *Recorder) Replay(sink PathSink) {
	for _, e := range r.Events {
		e.send(sink)
	}
}

func (e Event) send(sink PathSink) {
	p := e.Points
	switch e.Verb {
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
}
