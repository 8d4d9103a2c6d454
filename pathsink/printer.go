// Package pathsink provides outline.PathSink implementations that turn a
// glyph outline into text or pixels.
//
// Printer writes drawing commands as text, either one per line or as SVG
// path data. Raster fills the outline into an alpha mask using
// golang.org/x/image/vector and can encode it as PNG.
package pathsink

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Format selects the Printer output syntax.
type Format int

const (
	// Lines writes one command per line: "M x y", "L x y",
	// "Q cx cy x y", "C c1x c1y c2x c2y x y" and "Z".
	Lines Format = iota

	// SVG writes the commands as a single line of SVG path data.
	SVG
)

// String returns the format name as accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case Lines:
		return "lines"
	case SVG:
		return "svg"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("pathsink: unknown format")

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "lines":
		return Lines, nil
	case "svg":
		return SVG, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// Printer is an outline.PathSink that writes commands to an io.Writer.
//
// The first write error is kept and returned by Err; later commands are
// discarded.
type Printer struct {
	w      io.Writer
	format Format
	buf    []byte
	n      int // commands written
	err    error
}

// NewPrinter returns a Printer writing to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// MoveTo implements outline.PathSink.
func (p *Printer) MoveTo(x, y float32) {
	p.write('M', x, y)
}

// LineTo implements outline.PathSink.
func (p *Printer) LineTo(x, y float32) {
	p.write('L', x, y)
}

// QuadTo implements outline.PathSink.
func (p *Printer) QuadTo(cx, cy, x, y float32) {
	p.write('Q', cx, cy, x, y)
}

// CubeTo implements outline.PathSink.
func (p *Printer) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	p.write('C', c1x, c1y, c2x, c2y, x, y)
}

// ClosePath implements outline.PathSink.
func (p *Printer) ClosePath() {
	p.write('Z')
}

// Flush terminates SVG path data with a newline. It is a no-op for the
// Lines format or when nothing was written. Flush returns Err.
func (p *Printer) Flush() error {
	if p.format == SVG && p.n > 0 && p.err == nil {
		_, p.err = io.WriteString(p.w, "\n")
		p.n = 0
	}
	return p.err
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) write(cmd byte, coords ...float32) {
	if p.err != nil {
		return
	}

	b := p.buf[:0]
	if p.format == SVG && p.n > 0 {
		b = append(b, ' ')
	}
	b = append(b, cmd)
	for i, v := range coords {
		if p.format == Lines || i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendFloat(b, float64(v), 'g', -1, 32)
	}
	if p.format == Lines {
		b = append(b, '\n')
	}
	p.buf = b

	if _, err := p.w.Write(b); err != nil {
		p.err = fmt.Errorf("pathsink: write: %w", err)
		return
	}
	p.n++
}
