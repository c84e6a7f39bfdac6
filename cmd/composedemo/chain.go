package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/dmitrymomot/compose/core/chain"
	"github.com/dmitrymomot/compose/core/logger"
)

type patient struct {
	Name              string
	RegistrationDone  bool
	DoctorCheckUpDone bool
	MedicineDone      bool
	PaymentDone       bool
}

type reception struct{ chain.Link[*patient] }

func (r *reception) Handle(ctx context.Context, p *patient) error {
	if !p.RegistrationDone {
		p.RegistrationDone = true
	}
	return r.Forward(ctx, p)
}

type doctor struct{ chain.Link[*patient] }

func (d *doctor) Handle(ctx context.Context, p *patient) error {
	if !p.DoctorCheckUpDone {
		p.DoctorCheckUpDone = true
	}
	return d.Forward(ctx, p)
}

type medical struct{ chain.Link[*patient] }

func (m *medical) Handle(ctx context.Context, p *patient) error {
	if !p.MedicineDone {
		p.MedicineDone = true
	}
	return m.Forward(ctx, p)
}

// cashier is the last link; it never forwards.
type cashier struct{ chain.Link[*patient] }

func (c *cashier) Handle(_ context.Context, p *patient) error {
	if p.PaymentDone {
		return fmt.Errorf("patient %s already paid", p.Name)
	}
	p.PaymentDone = true
	return nil
}

func runChain(ctx context.Context, log *slog.Logger, traceOut io.Writer) error {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(traceOut))
	if err != nil {
		return fmt.Errorf("create span exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.WithoutCancel(ctx)) }()
	tracer := tp.Tracer("composedemo")

	wrap := func(name string, h chain.Handler[*patient]) chain.Handler[*patient] {
		return chain.Decorate(h,
			chain.Logging[*patient](log, name),
			chain.Tracing[*patient](tracer, name),
		)
	}

	head, err := chain.Build(
		wrap("reception", &reception{}),
		wrap("doctor", &doctor{}),
		wrap("medical", &medical{}),
		wrap("cashier", &cashier{}),
	)
	if err != nil {
		return err
	}
	log.Info("chain built", logger.Count("handlers", chain.Len(head, 16)))

	p := &patient{Name: "abc"}
	if err := head.Handle(ctx, p); err != nil {
		return err
	}
	log.Info("patient processed",
		slog.Bool("registered", p.RegistrationDone),
		slog.Bool("checked_up", p.DoctorCheckUpDone),
		slog.Bool("medicine", p.MedicineDone),
		slog.Bool("paid", p.PaymentDone))

	// Second visit: every step is already done and the cashier refuses.
	err = head.Handle(ctx, p)
	log.Info("second visit", logger.Error(err))

	// A handler that stops the request short.
	gate := chain.Func(func(ctx context.Context, p *patient, next func(context.Context, *patient) error) error {
		if p.Name == "" {
			log.InfoContext(ctx, "anonymous patient turned away")
			return nil
		}
		return next(ctx, p)
	})
	gate.SetNext(head)
	return gate.Handle(ctx, &patient{})
}
