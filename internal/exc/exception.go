package exc

import (
	"fmt"
)

// Exception is a diagnostic produced anywhere in the front-end: the
// scanner, the node/value model, or (eventually) a parser built on top of
// them. It always carries a source location, even if that location later
// turns out to be the zero value for input that predates any position.
type Exception interface {
	error
	Code() string
	Message() string
	Location() Location
}

// Location pins an Exception to a position in a named input, together
// with the line/column it maps to via the position registry. Line and
// Column are 1-based; Offset holds the registry's srcpos.Pos scalar, which
// is counted across all opened inputs and starts at 1.
type Location struct {
	URI    string
	Line   int32
	Column int32
	Offset int64
}

type exc struct {
	code     string
	message  string
	location Location
}

func (e *exc) Error() string {
	return fmt.Sprintf("%s:%d:%d -- %s: %s", e.location.URI, e.location.Line, e.location.Column, e.code, e.message)
}

func (e *exc) Code() string {
	return e.code
}

func (e *exc) Message() string {
	return e.message
}

func (e *exc) Location() Location {
	return e.location
}

type excUnwrap struct {
	Exception
	cause error
}

func (e *excUnwrap) Unwrap() error {
	return e.cause
}

// New builds an Exception from a location, a taxonomy code (see codes.go)
// and a human-readable message.
func New(location Location, code string, message string) Exception {
	return &exc{
		location: location,
		message:  message,
		code:     code,
	}
}

// Wrap attaches a location and code to an arbitrary error, preserving it as
// the cause for errors.Unwrap.
func Wrap(location Location, code string, err error) Exception {
	if err == nil {
		return nil
	}
	if e, ok := err.(Exception); ok {
		return &excUnwrap{
			Exception: New(location, code, e.Message()),
			cause:     e,
		}
	}
	return &excUnwrap{
		cause:     err,
		Exception: New(location, code, err.Error()),
	}
}

func WrapUnknown(location Location, err error) Exception {
	return Wrap(location, CodeUnknownFatal, err)
}
