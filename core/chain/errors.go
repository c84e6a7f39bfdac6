package chain

import "errors"

var (
	// ErrEmptyChain is returned by Build when no handlers are given.
	ErrEmptyChain = errors.New("chain: no handlers")

	// ErrNilHandler is returned by Build for a nil handler.
	ErrNilHandler = errors.New("chain: nil handler")

	// ErrCycle is returned by Build when a handler appears more than once.
	ErrCycle = errors.New("chain: handler appears more than once")
)
