// Package chain implements an ordered chain of responsibility.
//
// Each Handler holds at most one successor. Handle decides whether to service
// the request, forward it, or both; forwarding is a direct call to the
// successor's Handle, so the whole chain runs on one call stack. Reaching a
// handler with no successor ends the chain without error, whether or not any
// handler serviced the request.
//
// Handlers embed Link to get the successor slot:
//
//	type logHandler struct {
//		chain.Link[string]
//		name string
//	}
//
//	func (h *logHandler) Handle(ctx context.Context, req string) error {
//		fmt.Printf("%s handles %q\n", h.name, req)
//		return h.Forward(ctx, req)
//	}
//
//	dog := &logHandler{name: "dog"}
//	cat := &logHandler{name: "cat"}
//	cat.SetNext(dog)
//	_ = cat.Handle(ctx, "do something...")
//
// Build links a list in order and refuses to put the same handler in twice,
// which keeps chains acyclic when they are assembled through it:
//
//	head, err := chain.Build(auth, limit, serve)
//
// Decorate adds logging or OpenTelemetry tracing to a handler without changing
// its position in the chain. The chain never modifies the request; handlers
// receive exactly what the caller passed in.
//
// Chains are not synchronized. Link them once, then Handle may be called from
// several goroutines only if every handler is itself safe for that.
package chain
