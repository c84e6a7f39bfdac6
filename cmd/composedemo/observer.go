package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/compose/core/logger"
	"github.com/dmitrymomot/compose/core/observer"
)

type orderPlaced struct {
	OrderID string
	Total   int
}

type mailer struct {
	log *slog.Logger
}

func (m *mailer) Notify(ctx context.Context, e observer.Envelope[orderPlaced]) error {
	m.log.InfoContext(ctx, "sending receipt",
		logger.ID("order_id", e.Payload.OrderID),
		logger.ID("event_id", e.ID))
	return nil
}

func runObserver(ctx context.Context, log *slog.Logger) error {
	orders := observer.New[observer.Envelope[orderPlaced]](observer.WithLogger(log))

	m := &mailer{log: log}
	orders.Attach(m)
	orders.Attach(m) // already attached, no second receipt

	audit := orders.Attach(observer.Decorate(
		observer.ObserverFunc[observer.Envelope[orderPlaced]](func(ctx context.Context, e observer.Envelope[orderPlaced]) error {
			log.InfoContext(ctx, "audit entry", logger.Event(e.Name), logger.Count("total", e.Payload.Total))
			return nil
		}),
		observer.Logging[observer.Envelope[orderPlaced]](log, "audit"),
	))

	// A one-shot observer that detaches itself while the broadcast runs.
	var once observer.Handle
	once = orders.Attach(observer.ObserverFunc[observer.Envelope[orderPlaced]](func(ctx context.Context, _ observer.Envelope[orderPlaced]) error {
		log.InfoContext(ctx, "welcome discount applied")
		orders.DetachHandle(once)
		return nil
	}))

	log.Info("observers attached", logger.Count("observers", orders.Len()))

	if err := orders.NotifyAll(ctx, observer.NewEnvelope(orderPlaced{OrderID: "A-1", Total: 42})); err != nil {
		return err
	}

	orders.DetachHandle(audit)
	orders.Detach(m)
	orders.Detach(m) // no-op

	failing := orders.Attach(observer.ObserverFunc[observer.Envelope[orderPlaced]](func(context.Context, observer.Envelope[orderPlaced]) error {
		return errors.New("warehouse offline")
	}))
	err := orders.NotifyAll(ctx, observer.NewEnvelope(orderPlaced{OrderID: "A-2", Total: 7}))
	log.Info("second broadcast finished",
		logger.Count("observers", orders.Len()),
		logger.Error(err))
	orders.DetachHandle(failing)

	return nil
}
