package observer

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Envelope wraps an event payload with identifying metadata.
type Envelope[T any] struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Payload   T         `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// NewEnvelope wraps payload with a fresh UUID and the current time.
// The name is the payload's type name with pointers unwrapped, e.g. "PostPublished".
//
// Example:
//
//	reg := observer.New[observer.Envelope[PostPublished]]()
//	err := reg.NotifyAll(ctx, observer.NewEnvelope(PostPublished{Title: "Hello"}))
func NewEnvelope[T any](payload T) Envelope[T] {
	return Envelope[T]{
		ID:        uuid.New().String(),
		Name:      eventName(payload),
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

// eventName returns the bare type name without package path.
// Falls back to the static type when payload is a nil interface.
func eventName[T any](payload T) string {
	t := reflect.TypeOf(payload)
	if t == nil {
		t = reflect.TypeFor[T]()
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
