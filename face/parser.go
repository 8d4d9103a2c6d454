// Package face loads fonts and exposes their glyph outlines as
// outline.Source values.
//
// Three parser backends are registered by default:
//
//   - "ximage": golang.org/x/image/font/sfnt (the default)
//   - "gotext": github.com/go-text/typesetting/font
//   - "sfnt":   seehuhn.de/go/sfnt
//
// All backends report coordinates in font design units with the Y axis
// pointing up, close every contour explicitly, and return an error
// wrapping outline.ErrNoOutline for glyphs without a vector outline.
package face

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/gogpu/outline"
)

// Parser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library.
type Parser interface {
	// Parse parses font data (TTF, OTF or a collection) and returns the
	// font at the given index. Index 0 selects the only font of a
	// non-collection file.
	Parse(data []byte, index int) (Font, error)
}

// Font is a parsed font that can decompose its glyphs.
// Every Font is an outline.Source.
type Font interface {
	// Name returns the full font name, or the family name where the
	// backend exposes only that. It is empty if the font has neither.
	Name() string

	// UnitsPerEm returns the size of the em square in font units.
	UnitsPerEm() int

	// GlyphIndex returns the glyph used for r by the font's character
	// map, and false if the font does not map r.
	GlyphIndex(r rune) (outline.GlyphID, bool)

	// Decompose writes the outline of gid into sink.
	Decompose(gid outline.GlyphID, sink outline.PathSink) error
}

// parserRegistry holds registered font parsers.
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]Parser{
		"ximage": ximageParser{},
		"gotext": gotextParser{},
		"sfnt":   sfntParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser under name, replacing any
// parser previously registered under the same name.
func RegisterParser(name string, parser Parser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// Parsers returns the names of all registered parsers in sorted order.
func Parsers() []string {
	parserMu.RLock()
	defer parserMu.RUnlock()
	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// getParser returns the parser registered under name.
func getParser(name string) (Parser, error) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p, nil
	}
	return nil, &UnknownParserError{Name: name}
}

// Parse parses font data with the configured parser.
func Parse(data []byte, opts ...Option) (Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.index < 0 {
		return nil, &IndexError{Index: cfg.index}
	}

	p, err := getParser(cfg.parserName)
	if err != nil {
		return nil, err
	}
	f, err := p.Parse(data, cfg.index)
	if err != nil {
		return nil, err
	}
	outline.Logger().Debug("face: parsed font",
		"parser", cfg.parserName, "index", cfg.index, "name", f.Name(), "upem", f.UnitsPerEm())
	return f, nil
}

// Load reads and parses the font file at path.
func Load(path string, opts ...Option) (Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("face: %w", err)
	}
	return Parse(data, opts...)
}
