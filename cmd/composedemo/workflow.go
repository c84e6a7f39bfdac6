package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/compose/core/logger"
	"github.com/dmitrymomot/compose/core/observer"
	"github.com/dmitrymomot/compose/core/workflow"
)

type postTransitioned struct {
	From workflow.StateName
	To   workflow.StateName
}

func runWorkflow(ctx context.Context, log *slog.Logger) error {
	// Transitions fan out to subscribers through an observer registry.
	feed := observer.New[postTransitioned](observer.WithLogger(log))
	feed.Attach(observer.ObserverFunc[postTransitioned](func(ctx context.Context, e postTransitioned) error {
		if e.To == workflow.StatePublished {
			log.InfoContext(ctx, "post is live", logger.Transition(e.From.String(), e.To.String()))
		}
		return nil
	}))

	post := workflow.NewPost(workflow.WithLogger(log))
	post.OnTransition(func(from, to workflow.StateName) {
		if err := feed.NotifyAll(ctx, postTransitioned{From: from, To: to}); err != nil {
			log.ErrorContext(ctx, "transition feed failed", logger.Error(err))
		}
	})

	post.AddText("I ate a salad for lunch today")
	show := func(step string) {
		log.InfoContext(ctx, "post",
			logger.Action(step),
			slog.String("state", post.State().String()),
			slog.String("content", post.Content()))
	}

	show("add_text")
	post.Approve()
	show("approve_draft")
	post.RequestReview()
	show("request_review")
	post.Approve()
	show("approve")
	post.RequestReview()
	show("request_review_published")

	return nil
}
