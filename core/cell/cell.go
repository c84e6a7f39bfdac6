package cell

import (
	"reflect"
	"sync"
)

// Cell lazily constructs a single shared value.
// The factory runs at most once no matter how many goroutines call Get
// concurrently; every caller blocks until construction finishes and then
// observes the same fully built *Shared[T].
type Cell[T any] struct {
	get func() *Shared[T]
}

// New returns a cell that builds its value with factory on first access.
// If factory panics, Get re-panics with the same value on every call;
// a cell never retries construction.
func New[T any](factory func() T) *Cell[T] {
	if factory == nil {
		panic(ErrNilFactory)
	}
	return &Cell[T]{
		get: sync.OnceValue(func() *Shared[T] {
			return &Shared[T]{value: factory()}
		}),
	}
}

// Get returns the shared instance, constructing it on the first call.
func (c *Cell[T]) Get() *Shared[T] {
	return c.get()
}

// Process-wide cells keyed by the value type.
var cells sync.Map // map[reflect.Type]any (*Cell[T])

// For returns the process-wide shared instance for type T.
// The first caller's factory wins; factories passed by later callers are
// ignored. The instance lives until process exit.
func For[T any](factory func() T) *Shared[T] {
	key := reflect.TypeFor[T]()

	if c, ok := cells.Load(key); ok {
		return c.(*Cell[T]).Get()
	}

	c, _ := cells.LoadOrStore(key, New(factory))
	return c.(*Cell[T]).Get()
}
