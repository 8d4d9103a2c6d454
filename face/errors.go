package face

import (
	"errors"
	"fmt"
)

// Sentinel errors for face package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("face: empty font data")

	// ErrUnknownParser is matched by UnknownParserError.
	ErrUnknownParser = errors.New("face: unknown parser")

	// ErrIndexOutOfRange is matched by IndexError.
	ErrIndexOutOfRange = errors.New("face: font index out of range")
)

// UnknownParserError is returned when no parser is registered under the
// requested name.
type UnknownParserError struct {
	Name string
}

func (e *UnknownParserError) Error() string {
	return fmt.Sprintf("face: unknown parser %q", e.Name)
}

// Is reports whether target is ErrUnknownParser.
func (e *UnknownParserError) Is(target error) bool {
	return target == ErrUnknownParser
}

// IndexError is returned when a font index does not exist in the data.
type IndexError struct {
	Index int
	Count int // number of fonts available, 0 if unknown
}

func (e *IndexError) Error() string {
	if e.Count > 0 {
		return fmt.Sprintf("face: font index %d out of range [0, %d)", e.Index, e.Count)
	}
	return fmt.Sprintf("face: font index %d out of range", e.Index)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
