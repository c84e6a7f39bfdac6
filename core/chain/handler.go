package chain

import "context"

// Handler is one link of a responsibility chain.
//
// Handle may service the request, forward it to its successor, or both.
// Forwarding happens in the same call stack; a handler without a successor
// ends the chain and returns nil.
type Handler[R any] interface {
	Handle(ctx context.Context, req R) error

	// SetNext installs or replaces the successor and returns it, so chains
	// read left to right: a.SetNext(b).SetNext(c).
	SetNext(next Handler[R]) Handler[R]

	// Next returns the successor, or nil at the end of the chain.
	Next() Handler[R]
}

// Link holds a handler's single successor. Embed it by value in a handler
// type and call Forward from Handle to pass the request on.
//
// Example:
//
//	type authHandler struct {
//		chain.Link[*Request]
//	}
//
//	func (h *authHandler) Handle(ctx context.Context, r *Request) error {
//		if r.Token == "" {
//			return ErrUnauthorized
//		}
//		return h.Forward(ctx, r)
//	}
type Link[R any] struct {
	next Handler[R]
}

// SetNext installs next as the successor and returns it.
func (l *Link[R]) SetNext(next Handler[R]) Handler[R] {
	l.next = next
	return next
}

// Next returns the successor.
func (l *Link[R]) Next() Handler[R] {
	return l.next
}

// Forward hands req to the successor. Without one it returns nil.
func (l *Link[R]) Forward(ctx context.Context, req R) error {
	if l.next == nil {
		return nil
	}
	return l.next.Handle(ctx, req)
}

// HandlerFunc is the function form of a handler. Calling next forwards the
// request; not calling it stops the chain at this handler.
type HandlerFunc[R any] func(ctx context.Context, req R, next func(context.Context, R) error) error

type funcHandler[R any] struct {
	Link[R]
	fn HandlerFunc[R]
}

// Func builds a Handler from fn.
//
// Example:
//
//	audit := chain.Func(func(ctx context.Context, r *Request, next func(context.Context, *Request) error) error {
//		log.Info("request", "path", r.Path)
//		return next(ctx, r)
//	})
func Func[R any](fn HandlerFunc[R]) Handler[R] {
	return &funcHandler[R]{fn: fn}
}

func (h *funcHandler[R]) Handle(ctx context.Context, req R) error {
	return h.fn(ctx, req, h.Forward)
}
