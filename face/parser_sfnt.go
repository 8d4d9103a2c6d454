package face

import (
	"bytes"
	"fmt"

	geompath "seehuhn.de/go/geom/path"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"github.com/gogpu/outline"
)

// sfntParser implements Parser using seehuhn.de/go/sfnt.
// It reads single fonts only; collections must use another backend.
type sfntParser struct{}

// Parse implements Parser.Parse.
func (sfntParser) Parse(data []byte, index int) (Font, error) {
	if index != 0 {
		return nil, &IndexError{Index: index, Count: 1}
	}
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("face: failed to parse font: %w", err)
	}

	f := &sfntFont{info: info}
	if subtable, err := info.CMapTable.GetBest(); err == nil && subtable != nil {
		f.lookup = subtable.Lookup
		f.low, f.high = subtable.CodeRange()
	}
	return f, nil
}

// sfntFont implements Font using a decoded sfnt.Font.
type sfntFont struct {
	info   *sfnt.Font
	lookup func(rune) glyph.ID // nil without a usable cmap

	// Code point range of the cmap subtable. Format 4 lookups truncate
	// runes to 16 bits, so runes outside the range are never looked up.
	low, high rune
}

// Name implements Font.Name.
func (f *sfntFont) Name() string {
	return f.info.FullName()
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *sfntFont) UnitsPerEm() int {
	return int(f.info.UnitsPerEm)
}

// GlyphIndex implements Font.GlyphIndex.
func (f *sfntFont) GlyphIndex(r rune) (outline.GlyphID, bool) {
	if f.lookup == nil || r < f.low || r > f.high {
		return 0, false
	}
	gid := f.lookup(r)
	if gid == 0 {
		return 0, false
	}
	return outline.GlyphID(gid), true
}

// Decompose implements Font.Decompose.
func (f *sfntFont) Decompose(gid outline.GlyphID, sink outline.PathSink) error {
	if f.info.Outlines == nil || int(gid) >= f.info.NumGlyphs() {
		return fmt.Errorf("face: glyph %d: %w", gid, outline.ErrNoOutline)
	}

	c := &closer{sink: sink}
	empty := true
	for cmd, pts := range f.info.Outlines.Path(glyph.ID(gid)) {
		empty = false
		switch cmd {
		case geompath.CmdMoveTo:
			c.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case geompath.CmdLineTo:
			c.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case geompath.CmdQuadTo:
			c.QuadTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y))
		case geompath.CmdCubeTo:
			c.CubeTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case geompath.CmdClose:
			c.ClosePath()
		}
	}
	if empty {
		return fmt.Errorf("face: glyph %d: %w", gid, outline.ErrNoOutline)
	}
	c.finish()
	return nil
}
