package builder

import "errors"

// ErrNilBuilder is the panic value when a director is given a nil builder.
var ErrNilBuilder = errors.New("builder: nil builder")
