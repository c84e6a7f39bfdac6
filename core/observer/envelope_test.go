package observer_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/compose/core/observer"
)

type PostPublished struct {
	PostID string
}

func TestNewEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("struct payload", func(t *testing.T) {
		t.Parallel()

		env := observer.NewEnvelope(PostPublished{PostID: "p1"})

		assert.Equal(t, "PostPublished", env.Name)
		assert.Equal(t, "p1", env.Payload.PostID)
		assert.WithinDuration(t, time.Now(), env.CreatedAt, time.Second)

		_, err := uuid.Parse(env.ID)
		assert.NoError(t, err, "ID should be a valid UUID")
	})

	t.Run("pointer payload unwraps", func(t *testing.T) {
		t.Parallel()

		env := observer.NewEnvelope(&PostPublished{PostID: "p2"})
		assert.Equal(t, "PostPublished", env.Name)
	})

	t.Run("unique ids", func(t *testing.T) {
		t.Parallel()

		a := observer.NewEnvelope("x")
		b := observer.NewEnvelope("x")
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, "string", a.Name)
	})

	t.Run("broadcast through a registry", func(t *testing.T) {
		t.Parallel()

		var got observer.Envelope[PostPublished]
		reg := observer.New[observer.Envelope[PostPublished]]()
		reg.Attach(observer.ObserverFunc[observer.Envelope[PostPublished]](
			func(_ context.Context, e observer.Envelope[PostPublished]) error {
				got = e
				return nil
			}))

		env := observer.NewEnvelope(PostPublished{PostID: "p3"})
		require.NoError(t, reg.NotifyAll(context.Background(), env))
		assert.Equal(t, env, got)
	})
}
