package spell

import (
	"errors"
	"fmt"
)

// Sentinel errors returned at the boundaries described by the error
// handling design: invalid construction/query arguments are surfaced,
// while per-line parse and encoding problems are recovered locally and
// only counted.
var (
	// ErrInvalidArgument is returned for malformed configuration or
	// out-of-range query parameters, e.g. a max edit distance greater
	// than the dictionary was built with.
	ErrInvalidArgument = errors.New("spell: invalid argument")

	// ErrNotFound is returned by RemoveEntry when the term isn't present.
	ErrNotFound = errors.New("spell: term not found")

	// ErrParse is the sentinel wrapped by ParseError.
	ErrParse = errors.New("spell: parse error")

	// ErrIO is returned when a loader can't open or read its source.
	ErrIO = errors.New("spell: io error")

	// ErrEncoding is returned when input bytes can't be decoded under the
	// configured encoding.
	ErrEncoding = errors.New("spell: encoding error")
)

// ParseError describes a single rejected line from a dictionary or
// bigram file. Loaders accumulate these as a count rather than aborting.
type ParseError struct {
	Line   int
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("spell: parse error in %s, line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("spell: parse error, line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}
