package pace

import "errors"

// ErrInvalidInput is returned for non-positive paces or speeds and for
// time strings that cannot be parsed
var ErrInvalidInput = errors.New("invalid input")

// ErrUnknownUnit is returned when a unit token is not recognized
var ErrUnknownUnit = errors.New("unknown unit")

// ErrNotRecognized is returned when free-text input matches no command shape
var ErrNotRecognized = errors.New("command not recognized")
