package command

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/compose/core/logger"
)

// Result tells the caller whether Dispatch ran anything.
type Result uint8

const (
	// NotBound means no command was bound to the key and nothing ran.
	NotBound Result = iota
	// Dispatched means the bound command ran; its error is returned alongside.
	Dispatched
)

// String returns "not_bound" or "dispatched".
func (r Result) String() string {
	switch r {
	case Dispatched:
		return "dispatched"
	case NotBound:
		return "not_bound"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// Registry maps keys to commands.
//
// A Registry is not synchronized; bind and dispatch from one goroutine, or
// guard it externally.
//
// Example:
//
//	remote := command.NewRegistry[int](command.WithLogger(log))
//	remote.Bind(1, command.Bind(tv, (*TV).On))
//	remote.Bind(2, command.Bind(tv, (*TV).Off))
//
//	if res, err := remote.Dispatch(ctx, 1); res == command.NotBound {
//		fmt.Println("do nothing.")
//	} else if err != nil {
//		return err
//	}
type Registry[K comparable] struct {
	commands   map[K]Command
	order      []K
	middleware []Middleware
	logger     *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry[K comparable](opts ...Option) *Registry[K] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[K]{
		commands:   make(map[K]Command),
		middleware: o.middleware,
		logger:     o.logger,
	}
}

// Bind installs cmd under key, replacing any previous binding without warning.
// Binding nil panics.
func (r *Registry[K]) Bind(key K, cmd Command) {
	if cmd == nil {
		panic(ErrNilCommand)
	}

	if _, exists := r.commands[key]; exists {
		r.logger.Debug("command rebound",
			logger.Component("command"),
			logger.CommandKey(key))
	} else {
		r.order = append(r.order, key)
	}
	r.commands[key] = cmd
}

// Unbind removes the binding for key and reports whether there was one.
func (r *Registry[K]) Unbind(key K) bool {
	if _, exists := r.commands[key]; !exists {
		return false
	}
	delete(r.commands, key)
	if i := slices.Index(r.order, key); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true
}

// Bound reports whether a command is bound to key.
func (r *Registry[K]) Bound(key K) bool {
	_, ok := r.commands[key]
	return ok
}

// Keys returns the bound keys in the order they were first bound.
func (r *Registry[K]) Keys() []K {
	return slices.Clone(r.order)
}

// Dispatch executes the command bound to key.
//
// With nothing bound it returns NotBound and a nil error without running
// anything. Otherwise it returns Dispatched and whatever the command returned.
func (r *Registry[K]) Dispatch(ctx context.Context, key K) (Result, error) {
	cmd, ok := r.commands[key]
	if !ok {
		r.logger.DebugContext(ctx, "no command bound",
			logger.Component("command"),
			logger.CommandKey(key))
		return NotBound, nil
	}

	if len(r.middleware) > 0 {
		cmd = chainMiddleware(fmt.Sprint(key), cmd, r.middleware)
	}

	return Dispatched, cmd.Execute(ctx)
}
