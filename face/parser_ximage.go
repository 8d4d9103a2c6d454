package face

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/outline"
)

// ximageParser implements Parser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements Parser.Parse.
func (ximageParser) Parse(data []byte, index int) (Font, error) {
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("face: failed to parse font: %w", err)
	}
	if index >= c.NumFonts() {
		return nil, &IndexError{Index: index, Count: c.NumFonts()}
	}
	f, err := c.Font(index)
	if err != nil {
		return nil, fmt.Errorf("face: failed to parse font %d: %w", index, err)
	}
	return &ximageFont{font: f}, nil
}

// ximageFont implements Font using sfnt.Font.
type ximageFont struct {
	font *sfnt.Font

	// mu guards buf; sfnt.Buffer is not safe for concurrent use.
	mu  sync.Mutex
	buf sfnt.Buffer
}

// Name implements Font.Name.
func (f *ximageFont) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, err := f.font.Name(&f.buf, sfnt.NameIDFull)
	if err != nil {
		return ""
	}
	return name
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *ximageFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements Font.GlyphIndex.
func (f *ximageFont) GlyphIndex(r rune) (outline.GlyphID, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return outline.GlyphID(idx), true
}

// Decompose implements Font.Decompose.
//
// The glyph is loaded at a ppem equal to the em size, so the 26.6 fixed
// point coordinates are font units with 1/64 precision. sfnt's Y axis
// points down and is flipped back to font space.
func (f *ximageFont) Decompose(gid outline.GlyphID, sink outline.PathSink) error {
	if int(gid) >= f.font.NumGlyphs() {
		return fmt.Errorf("face: glyph %d: %w", gid, outline.ErrNoOutline)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	ppem := fixed.I(int(f.font.UnitsPerEm()))
	segments, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		// ErrNotFound means the glyph doesn't exist,
		// ErrColoredGlyph means it's a color glyph (COLR/sbix).
		if errors.Is(err, sfnt.ErrNotFound) || errors.Is(err, sfnt.ErrColoredGlyph) {
			return fmt.Errorf("face: glyph %d: %w: %w", gid, outline.ErrNoOutline, err)
		}
		return fmt.Errorf("face: glyph %d: %w", gid, err)
	}
	if len(segments) == 0 {
		return fmt.Errorf("face: glyph %d: %w", gid, outline.ErrNoOutline)
	}

	c := &closer{sink: sink}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p := fixedToPoint(seg.Args[0])
			c.MoveTo(p.X, p.Y)
		case sfnt.SegmentOpLineTo:
			p := fixedToPoint(seg.Args[0])
			c.LineTo(p.X, p.Y)
		case sfnt.SegmentOpQuadTo:
			p0 := fixedToPoint(seg.Args[0]) // Control
			p1 := fixedToPoint(seg.Args[1]) // Target
			c.QuadTo(p0.X, p0.Y, p1.X, p1.Y)
		case sfnt.SegmentOpCubeTo:
			p0 := fixedToPoint(seg.Args[0]) // Control 1
			p1 := fixedToPoint(seg.Args[1]) // Control 2
			p2 := fixedToPoint(seg.Args[2]) // Target
			c.CubeTo(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y)
		}
	}
	c.finish()
	return nil
}

// fixedToPoint converts a Y-down fixed.Point26_6 to a Y-up outline.Point.
func fixedToPoint(p fixed.Point26_6) outline.Point {
	return outline.Point{
		X: float32(p.X) / 64.0,
		Y: -float32(p.Y) / 64.0,
	}
}
