package circstack

import "errors"

// ErrInvalidArgument indicates a nil payload.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrOutOfRange indicates a position outside of the stack.
var ErrOutOfRange = errors.New("index out of range")
