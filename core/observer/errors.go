package observer

import "errors"

var (
	// ErrNilObserver is the panic value when Attach receives nil.
	ErrNilObserver = errors.New("observer: nil observer")

	// ErrObserverPanicked wraps a panic recovered from an observer's Notify.
	ErrObserverPanicked = errors.New("observer panicked")
)
