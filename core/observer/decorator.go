package observer

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/compose/core/logger"
)

// Decorator wraps an observer to add cross-cutting behavior.
type Decorator[E any] func(Observer[E]) Observer[E]

// Decorate applies decorators left to right: the first one wraps innermost.
//
// The result is a new observer with its own identity; detach it through the
// returned value or its handle, not through the inner observer.
func Decorate[E any](o Observer[E], decorators ...Decorator[E]) Observer[E] {
	for _, d := range decorators {
		o = d(o)
	}
	return o
}

type loggingObserver[E any] struct {
	name   string
	next   Observer[E]
	logger *slog.Logger
}

// Logging returns a decorator that logs each notification with its duration.
func Logging[E any](l *slog.Logger, name string) Decorator[E] {
	return func(next Observer[E]) Observer[E] {
		return &loggingObserver[E]{name: name, next: next, logger: l}
	}
}

func (o *loggingObserver[E]) Notify(ctx context.Context, event E) error {
	start := time.Now()
	err := o.next.Notify(ctx, event)

	if err != nil {
		o.logger.ErrorContext(ctx, "observer notification failed",
			slog.String("observer", o.name),
			logger.Duration(time.Since(start)),
			logger.Error(err))
		return err
	}

	o.logger.InfoContext(ctx, "observer notified",
		slog.String("observer", o.name),
		logger.Duration(time.Since(start)))
	return nil
}
