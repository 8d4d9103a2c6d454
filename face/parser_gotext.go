package face

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/outline"
)

// gotextParser implements Parser using go-text/typesetting.
type gotextParser struct{}

// Parse implements Parser.Parse.
func (gotextParser) Parse(data []byte, index int) (Font, error) {
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("face: failed to parse font: %w", err)
	}
	if index >= len(faces) {
		return nil, &IndexError{Index: index, Count: len(faces)}
	}
	return &gotextFont{face: faces[index]}, nil
}

// gotextFont implements Font using a go-text font.Face.
//
// font.Face caches glyph lookups and is NOT safe for concurrent use, so
// every access goes through mu.
type gotextFont struct {
	mu   sync.Mutex
	face *font.Face
}

// Name implements Font.Name.
// go-text only exposes the family name.
func (f *gotextFont) Name() string {
	return f.face.Describe().Family
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *gotextFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// GlyphIndex implements Font.GlyphIndex.
func (f *gotextFont) GlyphIndex(r rune) (outline.GlyphID, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 || gid > 0xFFFF {
		return 0, false
	}
	return outline.GlyphID(gid), true
}

// Decompose implements Font.Decompose.
//
// Only 'glyf', 'CFF ' and 'CFF2' outlines are decomposed; glyphs that
// go-text resolves to bitmap, SVG or COLR data report ErrNoOutline.
func (f *gotextFont) Decompose(gid outline.GlyphID, sink outline.PathSink) error {
	f.mu.Lock()
	data := f.face.GlyphData(font.GID(gid))
	f.mu.Unlock()

	var segments []font.Segment
	switch g := data.(type) {
	case font.GlyphOutline:
		segments = g.Segments
	case nil:
		return fmt.Errorf("face: glyph %d: %w", gid, outline.ErrNoOutline)
	default:
		return fmt.Errorf("face: glyph %d has %T data: %w", gid, data, outline.ErrNoOutline)
	}
	if len(segments) == 0 {
		return fmt.Errorf("face: glyph %d: %w", gid, outline.ErrNoOutline)
	}

	c := &closer{sink: sink}
	for _, seg := range segments {
		a := seg.Args
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			c.MoveTo(a[0].X, a[0].Y)
		case ot.SegmentOpLineTo:
			c.LineTo(a[0].X, a[0].Y)
		case ot.SegmentOpQuadTo:
			c.QuadTo(a[0].X, a[0].Y, a[1].X, a[1].Y)
		case ot.SegmentOpCubeTo:
			c.CubeTo(a[0].X, a[0].Y, a[1].X, a[1].Y, a[2].X, a[2].Y)
		}
	}
	c.finish()
	return nil
}
