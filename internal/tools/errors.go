// Package tools holds the pure conversions behind each page. Every function
// is synchronous and returns a sentinel-wrapped error that pages render as
// status text.
package tools

import "errors"

var (
	// ErrInvalidBase64 is returned when input is not valid for the chosen alphabet.
	ErrInvalidBase64 = errors.New("invalid base64")
	// ErrInvalidUTF8 is returned when decoded bytes are not UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")
	// ErrInvalidNumber is returned when input has digits outside the base.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrOverflow is returned when a number does not fit in 128 bits.
	ErrOverflow = errors.New("number exceeds 128 bits")
	// ErrInvalidTime is returned when input is neither a timestamp nor a datetime.
	ErrInvalidTime = errors.New("invalid input")
	// ErrUnknownAlgorithm is returned for an out of range hash algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
