package strategy

import "errors"

// ErrReentrantSwap is the panic value when a behavior replaces itself mid-Invoke.
var ErrReentrantSwap = errors.New("strategy: behavior swapped during invoke")
