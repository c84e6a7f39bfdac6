package command

import (
	"log/slog"

	"github.com/dmitrymomot/compose/core/logger"
)

type options struct {
	logger     *slog.Logger
	middleware []Middleware
}

func defaultOptions() options {
	return options{logger: logger.Discard()}
}

// Option configures a Registry.
type Option func(*options)

// WithLogger sets the registry logger. Nil is ignored.
//
// Example:
//
//	remote := command.NewRegistry[int](command.WithLogger(logger))
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMiddleware sets middleware applied to every dispatched command, first
// one outermost. Middleware is fixed at construction.
//
// Example:
//
//	remote := command.NewRegistry[string](
//		command.WithMiddleware(
//			command.LoggingMiddleware(logger),
//			command.MetricsMiddleware(prometheus.DefaultRegisterer),
//			command.Recover(),
//		),
//	)
func WithMiddleware(middleware ...Middleware) Option {
	return func(o *options) {
		o.middleware = middleware
	}
}
