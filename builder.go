package outline

import (
	"errors"
	"fmt"
)

// Builder assembles an Outline from PathSink calls.
//
// The accepted grammar is, per contour, one MoveTo, any number of
// LineTo/QuadTo/CubeTo calls and one ClosePath. The first call that breaks
// the grammar is recorded as a *MalformedOutlineError and every later
// call is ignored, so a misbehaving source can never leave a partially
// built outline behind. Contours consisting of a MoveTo directly followed
// by ClosePath are dropped.
//
// The zero value is ready to use.
type Builder struct {
	contours []Contour
	cur      Contour
	open     bool
	index    int
	dropped  int
	err      *MalformedOutlineError
}

// NewBuilder creates a new, empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// MoveTo implements PathSink.
func (b *Builder) MoveTo(x, y float32) {
	if !b.accept(MoveTo, Pt(x, y)) {
		return
	}
	if b.open {
		b.fail(MoveTo, "contour not closed before MoveTo")
		return
	}
	b.open = true
	b.cur = Contour{
		verbs:  []Verb{MoveTo},
		points: []Point{{x, y}},
	}
}

// LineTo implements PathSink.
func (b *Builder) LineTo(x, y float32) {
	b.segment(LineTo, Pt(x, y))
}

// QuadTo implements PathSink.
func (b *Builder) QuadTo(cx, cy, x, y float32) {
	b.segment(QuadTo, Pt(cx, cy), Pt(x, y))
}

// CubeTo implements PathSink.
func (b *Builder) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	b.segment(CubicTo, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
}

// ClosePath implements PathSink.
func (b *Builder) ClosePath() {
	if !b.accept(Close) {
		return
	}
	if !b.open {
		b.fail(Close, "ClosePath without an open contour")
		return
	}
	b.open = false
	if len(b.cur.verbs) == 1 {
		b.dropped++
		b.cur = Contour{}
		return
	}
	b.cur.verbs = append(b.cur.verbs, Close)
	b.contours = append(b.contours, b.cur)
	b.cur = Contour{}
}

// Outline returns the assembled outline and resets the builder.
//
// It returns a *MalformedOutlineError if the grammar was violated or the
// stream ended inside an open contour, and ErrNoOutline if no
// non-degenerate contour was seen.
func (b *Builder) Outline() (*Outline, error) {
	defer b.Reset()

	if b.err == nil && b.open {
		b.index++
		b.fail(Close, "stream ended inside an open contour")
	}
	if b.err != nil {
		Logger().Warn("outline: rejecting malformed glyph",
			"index", b.err.Index, "verb", b.err.Verb.String(), "reason", b.err.Reason)
		return nil, b.err
	}
	if b.dropped > 0 {
		Logger().Debug("outline: dropped empty contours", "count", b.dropped)
	}
	if len(b.contours) == 0 {
		return nil, ErrNoOutline
	}
	return &Outline{contours: b.contours}, nil
}

// Reset discards all state, including a latched error.
func (b *Builder) Reset() {
	*b = Builder{}
}

func (b *Builder) segment(v Verb, pts ...Point) {
	if !b.accept(v, pts...) {
		return
	}
	if !b.open {
		b.fail(v, "segment outside of a contour")
		return
	}
	b.cur.verbs = append(b.cur.verbs, v)
	b.cur.points = append(b.cur.points, pts...)
}

// accept counts the event and reports whether it should be processed.
func (b *Builder) accept(v Verb, pts ...Point) bool {
	if b.err != nil {
		return false
	}
	b.index++
	for _, p := range pts {
		if !p.IsFinite() {
			b.fail(v, "non-finite coordinate")
			return false
		}
	}
	return true
}

func (b *Builder) fail(v Verb, reason string) {
	b.err = &MalformedOutlineError{Index: b.index - 1, Verb: v, Reason: reason}
	b.contours = nil
	b.cur = Contour{}
	b.open = false
}

// Build extracts the outline of gid from src.
//
// It returns ErrNoOutline (possibly wrapped by the source) if the glyph
// has no vector outline, and an error matching ErrMalformedOutline if the
// source produced an invalid event stream. On error the returned outline
// is nil.
func Build(src Source, gid GlyphID) (*Outline, error) {
	b := NewBuilder()
	if err := src.Decompose(gid, b); err != nil {
		if errors.Is(err, ErrNoOutline) {
			return nil, err
		}
		return nil, fmt.Errorf("outline: decompose glyph %d: %w", gid, err)
	}
	o, err := b.Outline()
	if err != nil {
		return nil, err
	}
	Logger().Debug("outline: built glyph", "gid", gid, "contours", o.NumContours(), "points", o.NumPoints())
	return o, nil
}
