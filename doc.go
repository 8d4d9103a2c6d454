// Package outline synthesizes bold and italic variants of font glyphs by
// transforming their vector outlines.
//
// # Overview
//
// A glyph outline is a set of closed contours made of line and Bézier
// segments. This package builds an Outline from the drawing commands of a
// font backend, applies two geometric transforms to it, and replays the
// result into any consumer:
//
//   - Embolden moves every point outward along its local normal,
//     simulating a heavier stroke weight.
//   - Oblique shears the glyph, simulating an italic slant.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/outline"
//	    "github.com/gogpu/outline/face"
//	)
//
//	f, err := face.Load("DejaVuSans.ttf")
//	if err != nil { ... }
//	gid, _ := f.GlyphIndex('C')
//
//	o, err := outline.Build(f, gid)
//	if err != nil { ... } // outline.ErrNoOutline for bitmap or empty glyphs
//
//	o.Embolden(outline.DefaultEmboldenStrength).Oblique(outline.DefaultSlant)
//	o.Emit(sink) // any outline.PathSink, e.g. a *vector.Rasterizer
//
// # Data Flow
//
// Sources (package face) write into a PathSink; a Builder is the PathSink
// that assembles an Outline. Outline.Emit writes into a PathSink again,
// typically one from package pathsink. Contour order and point order are
// preserved end to end.
//
// # Coordinate System
//
// Coordinates are font design units with the Y axis pointing up, as in
// the font file. No scaling is performed.
//
// # Concurrency
//
// Everything is synchronous and allocation-light. Distinct outlines may
// be transformed on different goroutines; a single Outline must not be
// mutated concurrently.
package outline
