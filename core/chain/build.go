package chain

import (
	"fmt"
	"reflect"
)

// Build links handlers in the given order and returns the head.
// The last handler's successor is cleared so the chain always terminates.
//
// A handler may appear only once: Build returns ErrCycle instead of linking
// a handler into its own ancestor list.
//
// Example:
//
//	head, err := chain.Build[*Request](auth, rateLimit, serve)
//	if err != nil {
//		return err
//	}
//	err = head.Handle(ctx, req)
func Build[R any](handlers ...Handler[R]) (Handler[R], error) {
	if len(handlers) == 0 {
		return nil, ErrEmptyChain
	}

	for i, h := range handlers {
		if h == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilHandler, i)
		}
		for j := range i {
			if sameHandler(handlers[j], h) {
				return nil, fmt.Errorf("%w: positions %d and %d", ErrCycle, j, i)
			}
		}
	}

	for i := 0; i < len(handlers)-1; i++ {
		handlers[i].SetNext(handlers[i+1])
	}
	handlers[len(handlers)-1].SetNext(nil)

	return handlers[0], nil
}

// Len counts the handlers reachable from head by following Next.
// It stops after max hops so that a chain made cyclic by hand cannot hang it;
// a result equal to max means the chain is at least that long.
func Len[R any](head Handler[R], max int) int {
	n := 0
	for h := head; h != nil && n < max; h = h.Next() {
		n++
	}
	return n
}

// sameHandler compares by identity of the innermost handler, so a decorated
// handler and its undecorated self count as the same link. Only pointer-shaped
// handlers have identity; anything else is treated as distinct.
func sameHandler[R any](a, b Handler[R]) bool {
	a, b = innermost(a), innermost(b)
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || ta.Kind() != reflect.Pointer {
		return false
	}
	return a == b
}

type unwrapper[R any] interface {
	unwrap() Handler[R]
}

// innermost strips decorators, which share the wrapped handler's successor.
func innermost[R any](h Handler[R]) Handler[R] {
	for {
		u, ok := h.(unwrapper[R])
		if !ok {
			return h
		}
		h = u.unwrap()
	}
}
