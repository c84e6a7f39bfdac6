package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/compose/core/strategy"
	"github.com/dmitrymomot/compose/pkg/factory"
)

// flyBehavior is the duck's interchangeable flying algorithm.
type flyBehavior interface {
	strategy.Behavior
}

type canFly struct{ log *slog.Logger }

func (c canFly) Perform(ctx context.Context) error {
	c.log.InfoContext(ctx, "i can fly!~~")
	return nil
}

type canNotFly struct{ log *slog.Logger }

func (c canNotFly) Perform(ctx context.Context) error {
	c.log.InfoContext(ctx, "i can't fly!")
	return nil
}

func flyBehaviors(log *slog.Logger) *factory.Factory[flyBehavior] {
	f := factory.New[flyBehavior]()
	f.Register("can-fly", func() flyBehavior { return canFly{log: log} })
	f.Register("cannot-fly", func() flyBehavior { return canNotFly{log: log} })
	return f
}

func runStrategy(ctx context.Context, log *slog.Logger) error {
	behaviors := flyBehaviors(log)
	log.InfoContext(ctx, "fly behaviors", slog.Any("families", behaviors.Families()))

	model := strategy.NewSlot(behaviors.MustCreate("can-fly"), strategy.WithLogger(log))
	if err := model.Invoke(ctx); err != nil {
		return err
	}

	model.Set(behaviors.MustCreate("cannot-fly"))
	if err := model.Invoke(ctx); err != nil {
		return err
	}

	mallard := strategy.NewSlot(behaviors.MustCreate("can-fly"))
	if err := mallard.Invoke(ctx); err != nil {
		return err
	}

	if _, err := behaviors.Create("rocket"); err != nil {
		log.InfoContext(ctx, "unknown behavior rejected", slog.String("error", err.Error()))
	}
	return nil
}
