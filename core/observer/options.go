package observer

import (
	"log/slog"

	"github.com/dmitrymomot/compose/core/logger"
)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{logger: logger.Discard()}
}

// Option configures a Registry.
type Option func(*options)

// WithLogger sets the logger used for attach/detach traces and observer failures.
// Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
