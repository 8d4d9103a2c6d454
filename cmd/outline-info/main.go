// Command outline-info prints the outline of a single glyph, optionally
// emboldened and slanted.
//
// Usage:
//
//	outline-info [flags] FONT_FILE
//
// The bounding box is printed first, followed by one drawing command per
// line (M, L, Q, C, Z) or by SVG path data with -format svg. With -png the
// transformed glyph is also rendered to an image. With -i the command
// starts an interactive session on the loaded font.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/pterm/pterm"
	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/face"
	"github.com/gogpu/outline/pathsink"
)

// pngMargin is the blank border around a rendered glyph, in pixels.
const pngMargin = 8

func main() {
	var (
		faceIndex = flag.Int("face-index", 0, "font index within a collection")
		char      = flag.String("char", "C", "character to look up")
		gid       = flag.Int("gid", -1, "glyph id (overrides -char)")
		embolden  = flag.Bool("embolden", false, "embolden the outline")
		strength  = flag.Float64("strength", outline.DefaultEmboldenStrength, "embolden strength in font units")
		oblique   = flag.Bool("oblique", false, "slant the outline")
		slant     = flag.Float64("slant", outline.DefaultSlant, "horizontal shear per unit of height")
		parser    = flag.String("parser", "ximage", "font parser (ximage, gotext, sfnt)")
		format    = flag.String("format", "lines", "output format (lines, svg)")
		pngPath   = flag.String("png", "", "also render the glyph to this PNG file")
		size      = flag.Int("size", 256, "PNG size in pixels")
		repl      = flag.Bool("i", false, "interactive mode")
		verbose   = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] FONT_FILE\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	initDisplay()
	if *verbose {
		outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	f, err := face.Load(flag.Arg(0), face.WithParser(*parser), face.WithIndex(*faceIndex))
	if err != nil {
		fatal(err)
	}

	outFormat, err := pathsink.ParseFormat(*format)
	if err != nil {
		fatal(err)
	}

	s := &session{
		font:     f,
		path:     flag.Arg(0),
		parser:   *parser,
		embolden: *embolden,
		strength: float32(*strength),
		oblique:  *oblique,
		slant:    float32(*slant),
		format:   outFormat,
		pngPath:  *pngPath,
		size:     *size,
	}

	if *gid >= 0 {
		if *gid > 0xFFFF {
			fatal(fmt.Errorf("glyph id %d out of range", *gid))
		}
		s.gid = outline.GlyphID(*gid)
	} else {
		r, err := parseChar(*char)
		if err != nil {
			fatal(err)
		}
		if err := s.selectRune(r); err != nil {
			fatal(err)
		}
	}

	if *repl {
		if err := s.interact(); err != nil {
			fatal(err)
		}
		return
	}

	if err := s.render(os.Stdout); err != nil {
		fatal(err)
	}
}

// initDisplay sets up pterm prefixes. Styling is disabled when stdout is
// not a terminal so piped output stays plain.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}
}

func fatal(err error) {
	pterm.Error.Println(err.Error())
	os.Exit(1)
}

// parseChar returns the single character in s after NFC normalization,
// so a decomposed "é" selects the precomposed glyph.
func parseChar(s string) (rune, error) {
	s = norm.NFC.String(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// session holds the glyph selection and transform settings.
type session struct {
	font   face.Font
	path   string
	parser string
	gid    outline.GlyphID
	char   rune // 0 when selected by id

	embolden bool
	strength float32
	oblique  bool
	slant    float32

	format  pathsink.Format
	pngPath string
	size    int
}

func (s *session) selectRune(r rune) error {
	gid, ok := s.font.GlyphIndex(r)
	if !ok {
		return fmt.Errorf("font has no glyph for %q", r)
	}
	s.gid = gid
	s.char = r
	return nil
}

func (s *session) options() []outline.Option {
	var opts []outline.Option
	if s.embolden {
		opts = append(opts, outline.WithEmbolden(s.strength))
	}
	if s.oblique {
		opts = append(opts, outline.WithOblique(s.slant))
	}
	return opts
}

// render writes the bounding box and the transformed outline to w, and
// the PNG if one was requested.
func (s *session) render(w io.Writer) error {
	var rec outline.Recorder
	bbox, err := outline.Synthesize(s.font, s.gid, &rec, s.options()...)
	if err != nil {
		if errors.Is(err, outline.ErrNoOutline) {
			return fmt.Errorf("glyph %d has no outline", s.gid)
		}
		return err
	}

	fmt.Fprintf(w, "bbox: %g %g %g %g\n", bbox.MinX, bbox.MinY, bbox.MaxX, bbox.MaxY)
	p := pathsink.NewPrinter(w, s.format)
	rec.Replay(p)
	if err := p.Flush(); err != nil {
		return err
	}

	if s.pngPath == "" {
		return nil
	}
	return s.writePNG(&rec, bbox)
}

func (s *session) writePNG(rec *outline.Recorder, bbox outline.BBox) error {
	r, err := pathsink.FitRaster(bbox, s.size, pngMargin)
	if err != nil {
		return err
	}
	rec.Replay(r)

	f, err := os.Create(s.pngPath)
	if err != nil {
		return err
	}
	if err := r.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
