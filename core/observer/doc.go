// Package observer implements a synchronous publish/subscribe registry.
//
// A Registry keeps observers in attachment order and broadcasts events to all of
// them with NotifyAll. Broadcasting is a plain loop on the caller's goroutine:
// no channels, no workers, no queueing.
//
// # Identity and Handles
//
// Attach returns a Handle. Pointer and channel observers also have identity:
// attaching the same pointer twice is a no-op that returns the first handle, and
// Detach(o) removes it. Values without identity (ObserverFunc, plain structs) are
// appended on every Attach and are removed with DetachHandle.
//
//	type auditLog struct{ lines []string }
//
//	func (a *auditLog) Notify(_ context.Context, e string) error {
//		a.lines = append(a.lines, e)
//		return nil
//	}
//
//	reg := observer.New[string]()
//	audit := &auditLog{}
//	reg.Attach(audit)
//	h := reg.Attach(observer.ObserverFunc[string](func(ctx context.Context, e string) error {
//		fmt.Println("got", e)
//		return nil
//	}))
//
//	_ = reg.NotifyAll(ctx, "published")
//	reg.Detach(audit)
//	reg.DetachHandle(h)
//
// # Mutation During Broadcast
//
// NotifyAll iterates over a snapshot taken when it starts. An observer may detach
// itself or others, or attach new observers, from inside Notify; every observer
// present at the start is notified exactly once and the change applies to the
// next broadcast.
//
// # Errors
//
// A failing or panicking observer does not stop the broadcast. NotifyAll returns
// errors.Join of every failure, each prefixed with the observer's handle.
// Panics are wrapped with ErrObserverPanicked.
//
// # Envelopes
//
// NewEnvelope adds an ID, a type-derived name and a timestamp to any payload,
// for registries that need event metadata:
//
//	reg := observer.New[observer.Envelope[PostPublished]]()
//	_ = reg.NotifyAll(ctx, observer.NewEnvelope(PostPublished{ID: "p1"}))
//
// # Concurrency
//
// A Registry is not synchronized. Ordering guarantees hold for one caller at a
// time; share it across goroutines only behind your own lock.
package observer
