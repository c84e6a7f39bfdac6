package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/compose/core/logger"
)

// Middleware wraps a command dispatched under name.
// Middleware can be used for logging, metrics, panic recovery, etc.
type Middleware func(name string, next Command) Command

// chainMiddleware applies middleware so that the first one runs first.
func chainMiddleware(name string, cmd Command, middleware []Middleware) Command {
	for i := len(middleware) - 1; i >= 0; i-- {
		cmd = middleware[i](name, cmd)
	}
	return cmd
}

// LoggingMiddleware logs command start, completion and failure with timing.
func LoggingMiddleware(l *slog.Logger) Middleware {
	return func(name string, next Command) Command {
		return Func(func(ctx context.Context) error {
			start := time.Now()
			l.InfoContext(ctx, "command started",
				slog.String("command", name))

			err := next.Execute(ctx)
			if err != nil {
				l.ErrorContext(ctx, "command failed",
					slog.String("command", name),
					logger.Duration(time.Since(start)),
					logger.Error(err))
				return err
			}

			l.InfoContext(ctx, "command completed",
				slog.String("command", name),
				logger.Duration(time.Since(start)))
			return nil
		})
	}
}

// Recover converts a panic inside a command into an error wrapping ErrCommandPanicked.
func Recover() Middleware {
	return func(name string, next Command) Command {
		return Func(func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: command %s: %v", ErrCommandPanicked, name, r)
				}
			}()
			return next.Execute(ctx)
		})
	}
}

// MetricsMiddleware counts executions per command and outcome and observes
// their duration:
//
//	compose_commands_executed_total{command, result="success"|"error"}
//	compose_command_duration_seconds{command}
//
// Collectors already registered on reg by an earlier call are reused, so
// several registries can share one Prometheus registerer.
//
// A panic unwinds past this middleware without being counted. List Recover
// after it so panics reach it as errors:
//
//	command.WithMiddleware(command.MetricsMiddleware(reg), command.Recover())
func MetricsMiddleware(reg prometheus.Registerer) Middleware {
	executed := registerOrReuse(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compose_commands_executed_total",
			Help: "Commands executed through a command registry, by command and result.",
		},
		[]string{"command", "result"},
	))
	duration := registerOrReuse(reg, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "compose_command_duration_seconds",
			Help:    "Command execution time in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	))

	return func(name string, next Command) Command {
		return Func(func(ctx context.Context) error {
			start := time.Now()
			err := next.Execute(ctx)
			duration.WithLabelValues(name).Observe(time.Since(start).Seconds())

			result := "success"
			if err != nil {
				result = "error"
			}
			executed.WithLabelValues(name, result).Inc()
			return err
		})
	}
}

func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(fmt.Sprintf("command: register metrics: %v", err))
	}
	return c
}
