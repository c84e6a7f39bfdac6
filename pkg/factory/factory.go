package factory

import (
	"fmt"
	"slices"
	"sync"
)

// Constructor builds a new value of a family.
type Constructor[T any] func() T

// Factory builds values from a closed set of named families.
// Registration is safe for concurrent use, so families may be registered
// from init functions in several packages.
//
// Example:
//
//	shapes := factory.New[Shape]()
//	shapes.Register("circle", func() Shape { return Circle{} })
//	shapes.Register("rectangle", func() Shape { return Rectangle{} })
//
//	s := shapes.MustCreate("circle")
//	s.Draw() // draw a circle!
type Factory[T any] struct {
	mu    sync.RWMutex
	ctors map[string]Constructor[T]
}

// New returns an empty factory.
func New[T any]() *Factory[T] {
	return &Factory[T]{ctors: make(map[string]Constructor[T])}
}

// Register adds a family. It panics on an empty name, a nil constructor or a
// name that is already registered.
func (f *Factory[T]) Register(name string, ctor Constructor[T]) {
	if name == "" {
		panic(ErrEmptyName)
	}
	if ctor == nil {
		panic(fmt.Errorf("%w: %s", ErrNilConstructor, name))
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.ctors[name]; exists {
		panic(fmt.Errorf("%w: %s", ErrDuplicateFamily, name))
	}
	f.ctors[name] = ctor
}

// Create builds a value of the named family.
// An unknown name returns an error wrapping ErrUnknownFamily.
func (f *Factory[T]) Create(name string) (T, error) {
	f.mu.RLock()
	ctor, ok := f.ctors[name]
	f.mu.RUnlock()

	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
	return ctor(), nil
}

// MustCreate is like Create but panics on an unknown family.
// Asking for a family outside the registered set is a programming error and
// no default is substituted.
func (f *Factory[T]) MustCreate(name string) T {
	v, err := f.Create(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Families returns the registered family names in sorted order.
func (f *Factory[T]) Families() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.ctors))
	for name := range f.ctors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
