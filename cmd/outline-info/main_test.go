package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/face"
	"github.com/gogpu/outline/pathsink"
)

func TestParseChar(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"C", 'C', false},
		{"é", 'é', false},
		{"e\u0301", 'é', false},
		{"", 0, true},
		{"ab", 0, true},
	}
	for _, tt := range tests {
		got, err := parseChar(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseChar(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseChar(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func newTestSession(t *testing.T) *session {
	t.Helper()
	f, err := face.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("face.Parse() error = %v", err)
	}
	s := &session{
		font:     f,
		parser:   "ximage",
		strength: outline.DefaultEmboldenStrength,
		slant:    outline.DefaultSlant,
		format:   pathsink.Lines,
		size:     64,
	}
	if err := s.selectRune('C'); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSessionRender(t *testing.T) {
	s := newTestSession(t)

	var buf bytes.Buffer
	if err := s.render(&buf); err != nil {
		t.Fatalf("render() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !strings.HasPrefix(lines[0], "bbox: ") {
		t.Errorf("first line = %q, want bbox", lines[0])
	}
	if !strings.HasPrefix(lines[1], "M ") {
		t.Errorf("second line = %q, want a MoveTo", lines[1])
	}
	if lines[len(lines)-1] != "Z" {
		t.Errorf("last line = %q, want Z", lines[len(lines)-1])
	}
}

func TestSessionExecute(t *testing.T) {
	s := newTestSession(t)
	var buf bytes.Buffer
	gidA, ok := s.font.GlyphIndex('A')
	if !ok {
		t.Fatal("no glyph for 'A'")
	}

	steps := []struct {
		line  string
		check func() bool
	}{
		{":embolden 10", func() bool { return s.embolden && s.strength == 10 }},
		{":oblique", func() bool { return s.oblique && s.slant == outline.DefaultSlant }},
		{":plain", func() bool { return !s.embolden && !s.oblique }},
		{":format svg", func() bool { return s.format == pathsink.SVG }},
		{"O", func() bool { return s.char == 'O' }},
		{fmt.Sprintf(":gid %d", gidA), func() bool { return s.gid == gidA && s.char == 0 }},
	}
	for _, st := range steps {
		buf.Reset()
		if err := s.execute(st.line, &buf); err != nil {
			t.Fatalf("execute(%q) error = %v", st.line, err)
		}
		if !st.check() {
			t.Errorf("execute(%q) left session %+v", st.line, s)
		}
		if buf.Len() == 0 {
			t.Errorf("execute(%q) rendered nothing", st.line)
		}
	}

	if err := s.execute(":quit", &buf); !errors.Is(err, errQuit) {
		t.Errorf("execute(:quit) error = %v, want errQuit", err)
	}
	for _, bad := range []string{":", ":frobnicate", ":gid x", ":embolden heavy", ":format pdf"} {
		if err := s.execute(bad, &buf); err == nil {
			t.Errorf("execute(%q) succeeded", bad)
		}
	}
}
