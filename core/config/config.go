package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/compose/core/cell"
)

// loadDotenv reads .env from the working directory once per process.
// Variables already set are never overridden.
var loadDotenv = sync.OnceValue(func() error {
	return loadDotenvFile(".env")
})

// loadDotenvFile loads path into the environment. A missing file is not an
// error; an unreadable or malformed one is.
func loadDotenvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrDotenv, path, err)
	}
	return nil
}

var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// loaded is the per-type cache entry held in a process-wide cell.
type loaded[T any] struct {
	cfg T
	err error
}

// Load fills cfg from the environment.
//
// The first call for a type T parses and validates it; every later call for
// the same T copies the cached result, including a cached failure.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	shared := cell.For(func() loaded[T] {
		var c T
		return loaded[T]{cfg: c, err: parse(&c)}
	})

	entry := shared.Load()
	if entry.err != nil {
		return entry.err
	}
	*cfg = entry.cfg
	return nil
}

// MustLoad is like Load but panics on error. Use it at startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// LoadFile fills cfg from a YAML file, then applies environment overrides and
// validates the result. It is not cached: every call reads the file.
//
// Fields with an envDefault tag take the default when the variable is unset,
// replacing the YAML value; omit envDefault on fields the file should own.
func LoadFile[T any](path string, cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodeFile, path, err)
	}

	return parse(cfg)
}

func parse[T any](cfg *T) error {
	if err := loadDotenv(); err != nil {
		return err
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	if err := validate().Struct(cfg); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			// Non-struct configs carry no validate tags.
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
