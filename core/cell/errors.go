package cell

import "errors"

// ErrNilFactory is the panic value when a cell is created without a factory.
var ErrNilFactory = errors.New("cell: factory must not be nil")
