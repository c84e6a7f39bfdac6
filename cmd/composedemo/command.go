package main

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/compose/core/command"
	"github.com/dmitrymomot/compose/core/logger"
)

type tv struct {
	log *slog.Logger
	on  bool
}

func (t *tv) On(ctx context.Context) error {
	t.on = true
	t.log.InfoContext(ctx, "tv is on")
	return nil
}

func (t *tv) Off(ctx context.Context) error {
	t.on = false
	t.log.InfoContext(ctx, "tv is off")
	return nil
}

func runCommand(ctx context.Context, log *slog.Logger) error {
	reg := prometheus.NewRegistry()
	remote := command.NewRegistry[int](
		command.WithLogger(log),
		command.WithMiddleware(
			command.LoggingMiddleware(log),
			command.MetricsMiddleware(reg),
			command.Recover(),
		),
	)

	set := &tv{log: log}
	remote.Bind(1, command.Bind(set, (*tv).On))
	remote.Bind(2, command.Bind(set, (*tv).Off))
	remote.Bind(3, command.Func(func(context.Context) error {
		panic("button stuck")
	}))

	for _, key := range []int{1, 2, 9, 3} {
		res, err := remote.Dispatch(ctx, key)
		switch {
		case res == command.NotBound:
			log.InfoContext(ctx, "do nothing.", logger.CommandKey(key))
		case err != nil:
			log.WarnContext(ctx, "button failed", logger.CommandKey(key), logger.Error(err))
		}
	}

	// Rebinding replaces the command; the old one never runs again.
	remote.Bind(1, command.Bind(set, (*tv).Off))
	if _, err := remote.Dispatch(ctx, 1); err != nil {
		return err
	}
	log.InfoContext(ctx, "after rebinding key 1", slog.Bool("tv_on", set.on))

	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{slog.String("metric", mf.GetName())}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, slog.String(lp.GetName(), lp.GetValue()))
			}
			if c := m.GetCounter(); c != nil {
				attrs = append(attrs, slog.Float64("value", c.GetValue()))
			}
			if h := m.GetHistogram(); h != nil {
				attrs = append(attrs, slog.Uint64("samples", h.GetSampleCount()))
			}
			log.DebugContext(ctx, "metric", attrs...)
		}
	}
	return nil
}
