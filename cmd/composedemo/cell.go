package main

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/compose/core/cell"
	"github.com/dmitrymomot/compose/core/logger"
)

type settings struct {
	Visits int
	Last   int
}

func runCell(ctx context.Context, log *slog.Logger) error {
	var builds atomic.Int32
	shared := cell.New(func() settings {
		builds.Add(1)
		log.InfoContext(ctx, "building shared settings")
		return settings{}
	})

	const workers = 16
	g, gctx := errgroup.WithContext(ctx)
	for i := range workers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			shared.Get().Update(func(s *settings) {
				s.Visits++
				s.Last = i
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	final := shared.Get().Load()
	log.InfoContext(ctx, "shared settings",
		logger.Count("builds", int(builds.Load())),
		logger.Count("visits", final.Visits),
		logger.Count("last_writer", final.Last))
	return nil
}
