package config

import "errors"

var (
	ErrNilConfig  = errors.New("config: nil destination")
	ErrDotenv     = errors.New("config: load .env")
	ErrParse      = errors.New("config: parse environment")
	ErrInvalid    = errors.New("config: validation failed")
	ErrReadFile   = errors.New("config: read file")
	ErrDecodeFile = errors.New("config: decode yaml")
)
