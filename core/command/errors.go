package command

import "errors"

var (
	// ErrNilCommand is the panic value when a nil command or effect is bound.
	ErrNilCommand = errors.New("command: nil command")

	// ErrCommandPanicked wraps a panic recovered by the Recover middleware.
	ErrCommandPanicked = errors.New("command panicked")
)
