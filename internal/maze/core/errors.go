package core

import "errors"

var (
	// ErrMalformedInput is returned when a maze source contains a token
	// that cannot be decoded.
	ErrMalformedInput = errors.New("malformed input")

	// ErrMalformedGrid is returned when the decoded rows do not form a square.
	ErrMalformedGrid = errors.New("malformed grid")

	// ErrOutOfBounds is returned when a detonation targets a coordinate
	// outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrIO wraps read and write failures of maze files.
	ErrIO = errors.New("io failure")
)

// ErrorCode maps an error to a stable code for error files and run history.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMalformedInput):
		return "malformed_input"
	case errors.Is(err, ErrMalformedGrid):
		return "malformed_grid"
	case errors.Is(err, ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, ErrIO):
		return "io_failure"
	default:
		return "unknown"
	}
}
