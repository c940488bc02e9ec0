/*
Package fonterr defines the error taxonomy shared by the font assembler and the
contour pseudo-closer.

Every error of this package is fatal for a run. Clients will re-run the tools
after having fixed the glyph sources, thus there is no recovery path.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fonterr

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind int

const (
	// Configuration flags author errors: bad table references or malformed
	// glyph source file names.
	Configuration Kind = iota
	// Parse flags unreadable or malformed source files and path data.
	Parse
	// Geometry flags path geometry which cannot be processed, e.g. a closed
	// contour ending in a zero-length segment.
	Geometry
)

// String returns a human-readable representation of an error kind.
func (k Kind) String() string {
	switch k {
	case Configuration:
		return "CONFIGURATION"
	case Parse:
		return "PARSE"
	case Geometry:
		return "GEOMETRY"
	default:
		return "UNKNOWN"
	}
}

// Error is the error type for all failures reported by this module.
type Error struct {
	Kind   Kind   // classification
	Source string // file name, glyph or table key the error refers to (may be empty)
	Issue  string // human-readable description of the issue
	Offset int    // byte offset into path data or file, -1 if unknown
	Err    error  // underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	s := fmt.Sprintf("[%s]", e.Kind)
	if e.Source != "" {
		s += " " + e.Source
		if e.Offset >= 0 {
			s += fmt.Sprintf(" at offset %d", e.Offset)
		}
		s += ":"
	} else if e.Offset >= 0 {
		s += fmt.Sprintf(" at offset %d:", e.Offset)
	}
	s += " " + e.Issue
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Configurationf creates a configuration error for source.
func Configurationf(source string, format string, args ...interface{}) *Error {
	return &Error{Kind: Configuration, Source: source, Issue: fmt.Sprintf(format, args...), Offset: -1}
}

// Parsef creates a parse error for source.
func Parsef(source string, format string, args ...interface{}) *Error {
	return &Error{Kind: Parse, Source: source, Issue: fmt.Sprintf(format, args...), Offset: -1}
}

// ParseAt creates a parse error located at a byte offset of source.
func ParseAt(source string, offset int, format string, args ...interface{}) *Error {
	return &Error{Kind: Parse, Source: source, Issue: fmt.Sprintf(format, args...), Offset: offset}
}

// Geometryf creates a geometry error for source.
func Geometryf(source string, format string, args ...interface{}) *Error {
	return &Error{Kind: Geometry, Source: source, Issue: fmt.Sprintf(format, args...), Offset: -1}
}

// WrapParse wraps an I/O or decoding error as a parse error.
func WrapParse(source string, issue string, err error) *Error {
	return &Error{Kind: Parse, Source: source, Issue: issue, Offset: -1, Err: err}
}

// IsKind returns true if err or any error it wraps is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}
