package chain

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/compose/core/logger"
)

// Decorator wraps a handler while keeping its place in the chain:
// SetNext and Next go to the wrapped handler.
type Decorator[R any] func(Handler[R]) Handler[R]

// Decorate applies decorators left to right: the first one wraps innermost.
// Decorate before linking, so predecessors point at the wrapper.
func Decorate[R any](h Handler[R], decorators ...Decorator[R]) Handler[R] {
	for _, d := range decorators {
		h = d(h)
	}
	return h
}

type decorated[R any] struct {
	inner  Handler[R]
	around func(ctx context.Context, req R, call func(context.Context, R) error) error
}

func (d *decorated[R]) Handle(ctx context.Context, req R) error {
	return d.around(ctx, req, d.inner.Handle)
}

func (d *decorated[R]) SetNext(next Handler[R]) Handler[R] {
	return d.inner.SetNext(next)
}

func (d *decorated[R]) Next() Handler[R] {
	return d.inner.Next()
}

func (d *decorated[R]) unwrap() Handler[R] {
	return d.inner
}

// Logging logs entry into the named handler and the outcome of its subtree.
func Logging[R any](l *slog.Logger, name string) Decorator[R] {
	return func(h Handler[R]) Handler[R] {
		return &decorated[R]{
			inner: h,
			around: func(ctx context.Context, req R, call func(context.Context, R) error) error {
				start := time.Now()
				l.DebugContext(ctx, "chain handler entered",
					logger.Component("chain"),
					slog.String("handler", name))

				err := call(ctx, req)
				if err != nil {
					l.ErrorContext(ctx, "chain handler failed",
						logger.Component("chain"),
						slog.String("handler", name),
						logger.Duration(time.Since(start)),
						logger.Error(err))
					return err
				}

				l.DebugContext(ctx, "chain handler completed",
					logger.Component("chain"),
					slog.String("handler", name),
					logger.Duration(time.Since(start)))
				return nil
			},
		}
	}
}

// Tracing opens a span named "chain.<name>" around the handler. Successors
// run inside it, so a traced chain shows up as nested spans.
func Tracing[R any](tracer trace.Tracer, name string) Decorator[R] {
	return func(h Handler[R]) Handler[R] {
		return &decorated[R]{
			inner: h,
			around: func(ctx context.Context, req R, call func(context.Context, R) error) error {
				ctx, span := tracer.Start(ctx, "chain."+name,
					trace.WithAttributes(attribute.String("chain.handler", name)))
				defer span.End()

				if err := call(ctx, req); err != nil {
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
					return err
				}
				return nil
			},
		}
	}
}
