package observer

import (
	"context"
	"reflect"

	"github.com/google/uuid"
)

// Observer receives events broadcast by a Registry.
type Observer[E any] interface {
	Notify(ctx context.Context, event E) error
}

// ObserverFunc adapts a function to the Observer interface.
// Function values have no identity, so a registry can only remove them by
// the Handle returned from Attach.
type ObserverFunc[E any] func(ctx context.Context, event E) error

// Notify calls f(ctx, event).
func (f ObserverFunc[E]) Notify(ctx context.Context, event E) error {
	return f(ctx, event)
}

// Handle is an opaque reference to an attached observer.
// The zero Handle refers to nothing.
type Handle struct {
	id uuid.UUID
}

func newHandle() Handle {
	return Handle{id: uuid.New()}
}

// String returns the handle's textual form, suitable for logs.
func (h Handle) String() string {
	if h.IsZero() {
		return ""
	}
	return h.id.String()
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.id == uuid.Nil
}

// hasIdentity reports whether o can be matched by identity.
// Only reference-shaped dynamic types qualify; two distinct struct values that
// happen to compare equal are not the same observer.
func hasIdentity(o any) bool {
	if o == nil {
		return false
	}
	switch reflect.TypeOf(o).Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
