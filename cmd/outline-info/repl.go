package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/pathsink"
)

var errQuit = errors.New("quit")

const replHelp = `Enter a single character to show its glyph, or one of:
  :gid N          select a glyph by id
  :embolden [S]   embolden, optionally with strength S
  :oblique [K]    slant, optionally with slant K
  :plain          turn off embolden and oblique
  :format F       output format (lines, svg)
  :png [FILE]     also render to FILE; without FILE stop rendering
  :info           show font and settings
  :help           show this text
  :quit           leave (or <ctrl>D)`

// interact runs the read-eval-print loop on stdin.
func (s *session) interact() error {
	rl, err := readline.New("outline > ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("Quit with <ctrl>D")
	s.printInfo()
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		err = s.execute(line, os.Stdout)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

// execute runs one REPL line. Commands that change the glyph or the
// transforms render the result to w.
func (s *session) execute(line string, w io.Writer) error {
	if !strings.HasPrefix(line, ":") {
		r, err := parseChar(line)
		if err != nil {
			return err
		}
		if err := s.selectRune(r); err != nil {
			return err
		}
		return s.render(w)
	}

	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return fmt.Errorf("empty command, try :help")
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", "q":
		return errQuit
	case "help", "h":
		fmt.Fprintln(w, replHelp)
		return nil
	case "info":
		s.printInfo()
		return nil
	case "gid":
		if len(args) != 1 {
			return fmt.Errorf(":gid needs one argument")
		}
		n, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			return fmt.Errorf("bad glyph id %q", args[0])
		}
		s.gid = outline.GlyphID(n)
		s.char = 0
	case "embolden":
		v, err := optionalFloat(args, s.strength)
		if err != nil {
			return err
		}
		s.embolden, s.strength = true, v
	case "oblique":
		v, err := optionalFloat(args, s.slant)
		if err != nil {
			return err
		}
		s.oblique, s.slant = true, v
	case "plain":
		s.embolden, s.oblique = false, false
	case "format":
		if len(args) != 1 {
			return fmt.Errorf(":format needs one argument")
		}
		f, err := pathsink.ParseFormat(args[0])
		if err != nil {
			return err
		}
		s.format = f
	case "png":
		s.pngPath = ""
		if len(args) > 0 {
			s.pngPath = args[0]
		}
	default:
		return fmt.Errorf("unknown command %q, try :help", cmd)
	}
	return s.render(w)
}

func optionalFloat(args []string, def float32) (float32, error) {
	if len(args) == 0 {
		return def, nil
	}
	v, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", args[0])
	}
	return float32(v), nil
}

// printInfo shows the font and the current settings as a table.
func (s *session) printInfo() {
	glyph := strconv.Itoa(int(s.gid))
	if s.char != 0 {
		glyph = fmt.Sprintf("%d (%q)", s.gid, s.char)
	}
	transforms := "none"
	switch {
	case s.embolden && s.oblique:
		transforms = fmt.Sprintf("embolden %g, oblique %g", s.strength, s.slant)
	case s.embolden:
		transforms = fmt.Sprintf("embolden %g", s.strength)
	case s.oblique:
		transforms = fmt.Sprintf("oblique %g", s.slant)
	}

	data := pterm.TableData{
		{"Property", "Value"},
		{"File", s.path},
		{"Parser", s.parser},
		{"Name", s.font.Name()},
		{"Units per em", strconv.Itoa(s.font.UnitsPerEm())},
		{"Glyph", glyph},
		{"Transforms", transforms},
		{"Format", s.format.String()},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err.Error())
	}
}
