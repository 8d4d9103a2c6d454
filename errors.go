package outline

import (
	"errors"
	"fmt"
)

// Sentinel errors for outline construction.
var (
	// ErrNoOutline is returned when a glyph exists but carries no vector
	// outline (bitmap, color or empty glyph, or an unknown glyph id).
	ErrNoOutline = errors.New("outline: no outline")

	// ErrMalformedOutline is returned when the event stream violates the
	// move, segments, close grammar.
	ErrMalformedOutline = errors.New("outline: malformed outline")
)

// MalformedOutlineError describes the first grammar violation seen by a
// Builder. It matches ErrMalformedOutline under errors.Is.
type MalformedOutlineError struct {
	// Index is the zero-based position of the offending event.
	Index int

	// Verb is the offending event.
	Verb Verb

	// Reason says what was wrong with it.
	Reason string
}

func (e *MalformedOutlineError) Error() string {
	return fmt.Sprintf("outline: malformed outline: event %d (%s): %s", e.Index, e.Verb, e.Reason)
}

// Is reports whether target is ErrMalformedOutline.
func (e *MalformedOutlineError) Is(target error) bool {
	return target == ErrMalformedOutline
}
