package observer

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/compose/core/logger"
)

type entry[E any] struct {
	handle   Handle
	observer Observer[E]
	identity bool
}

// Registry keeps an ordered set of observers and broadcasts events to them.
//
// A Registry is meant for one caller at a time and holds no lock; guard it
// externally if several goroutines share it. Observers may attach or detach
// (including themselves) from inside Notify.
type Registry[E any] struct {
	entries []entry[E]
	logger  *slog.Logger
}

// New creates an empty registry.
//
// Example:
//
//	reg := observer.New[PriceChanged](observer.WithLogger(log))
//	h := reg.Attach(observer.ObserverFunc[PriceChanged](onPrice))
//	defer reg.DetachHandle(h)
func New[E any](opts ...Option) *Registry[E] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[E]{logger: o.logger}
}

// Attach appends o unless the same observer is already attached, in which case
// the existing handle is returned and nothing changes. Identity applies to
// pointer and channel observers; any other observer is appended every time.
// Attaching nil panics.
func (r *Registry[E]) Attach(o Observer[E]) Handle {
	if o == nil {
		panic(ErrNilObserver)
	}

	identity := hasIdentity(o)
	if identity {
		if i := r.indexOf(o); i >= 0 {
			return r.entries[i].handle
		}
	}

	h := newHandle()
	r.entries = append(r.entries, entry[E]{handle: h, observer: o, identity: identity})

	r.logger.Debug("observer attached",
		logger.Component("observer"),
		logger.Handle(h.String()),
		logger.Count("observers", len(r.entries)))

	return h
}

// Detach removes the first attached observer identical to o.
// It reports false, and changes nothing, when o is not attached or has no identity.
func (r *Registry[E]) Detach(o Observer[E]) bool {
	if !hasIdentity(o) {
		return false
	}
	i := r.indexOf(o)
	if i < 0 {
		return false
	}
	r.removeAt(i)
	return true
}

// DetachHandle removes the observer attached under h.
// It reports false for unknown or already detached handles.
func (r *Registry[E]) DetachHandle(h Handle) bool {
	if h.IsZero() {
		return false
	}
	for i, e := range r.entries {
		if e.handle == h {
			r.removeAt(i)
			return true
		}
	}
	return false
}

// NotifyAll calls Notify on every observer attached when the call starts, in
// attachment order, on the caller's goroutine. Changes made to the registry
// during the broadcast take effect for the next one: observers detached midway
// are still notified this time, observers attached midway are not.
//
// Every observer runs even if earlier ones fail. Errors and recovered panics
// are joined with errors.Join.
func (r *Registry[E]) NotifyAll(ctx context.Context, event E) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot := slices.Clone(r.entries)

	var errs []error
	for _, e := range snapshot {
		if err := r.notify(ctx, e, event); err != nil {
			errs = append(errs, fmt.Errorf("observer %s: %w", e.handle, err))
		}
	}

	return errors.Join(errs...)
}

// Len returns the number of attached observers.
func (r *Registry[E]) Len() int {
	return len(r.entries)
}

// Observers iterates over the attached observers in attachment order.
// The sequence works on a copy, so the registry may change while iterating.
func (r *Registry[E]) Observers() iter.Seq[Observer[E]] {
	snapshot := slices.Clone(r.entries)
	return func(yield func(Observer[E]) bool) {
		for _, e := range snapshot {
			if !yield(e.observer) {
				return
			}
		}
	}
}

func (r *Registry[E]) notify(ctx context.Context, e entry[E], event E) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrObserverPanicked, rec)
			r.logger.ErrorContext(ctx, "observer panicked",
				logger.Component("observer"),
				logger.Handle(e.handle.String()),
				logger.Panic(rec))
		}
	}()

	if err := e.observer.Notify(ctx, event); err != nil {
		r.logger.ErrorContext(ctx, "observer failed",
			logger.Component("observer"),
			logger.Handle(e.handle.String()),
			logger.Error(err))
		return err
	}
	return nil
}

func (r *Registry[E]) indexOf(o Observer[E]) int {
	for i, e := range r.entries {
		if e.identity && e.observer == o {
			return i
		}
	}
	return -1
}

func (r *Registry[E]) removeAt(i int) {
	h := r.entries[i].handle
	// Snapshots held by a running NotifyAll own their backing array.
	r.entries = slices.Delete(r.entries, i, i+1)

	r.logger.Debug("observer detached",
		logger.Component("observer"),
		logger.Handle(h.String()),
		logger.Count("observers", len(r.entries)))
}
