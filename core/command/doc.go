// Package command binds zero-argument actions to keys and runs them on demand.
//
// A Command captures its receiver when it is built. A Registry maps keys to
// commands: binding a key again replaces the previous command, and dispatching
// a key with nothing bound is not an error. Dispatch says which case happened
// through its Result.
//
// # Quick Start
//
//	type TV struct{ on bool }
//
//	func (t *TV) On(ctx context.Context) error  { t.on = true; return nil }
//	func (t *TV) Off(ctx context.Context) error { t.on = false; return nil }
//
//	tv := &TV{}
//	remote := command.NewRegistry[int]()
//	remote.Bind(1, command.Bind(tv, (*TV).On))
//	remote.Bind(2, command.Bind(tv, (*TV).Off))
//
//	res, err := remote.Dispatch(ctx, 1) // Dispatched, nil; tv.on == true
//	res, err = remote.Dispatch(ctx, 9)  // NotBound, nil; nothing ran
//
// # Middleware
//
// Middleware wraps every dispatched command and is fixed at construction.
// The first middleware listed runs outermost:
//
//	remote := command.NewRegistry[string](
//		command.WithLogger(log),
//		command.WithMiddleware(
//			command.LoggingMiddleware(log),
//			command.MetricsMiddleware(prometheus.DefaultRegisterer),
//			command.Recover(),
//		),
//	)
//
// Recover turns a panicking command into an error wrapping ErrCommandPanicked.
// Put it last so the middleware above it sees the panic as an ordinary error.
// MetricsMiddleware exports compose_commands_executed_total and
// compose_command_duration_seconds, both labelled by command key.
//
// # Concurrency
//
// Registry has no internal locking. Build it, bind it and dispatch from the
// same goroutine, or guard it yourself.
package command
