package factory

import "errors"

var (
	ErrUnknownFamily   = errors.New("factory: unknown family")
	ErrDuplicateFamily = errors.New("factory: family already registered")
	ErrNilConstructor  = errors.New("factory: nil constructor")
	ErrEmptyName       = errors.New("factory: empty family name")
)
