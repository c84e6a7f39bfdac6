package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/compose/core/command"
)

type tv struct {
	on       bool
	switches int
}

func (t *tv) On(context.Context) error {
	t.on = true
	t.switches++
	return nil
}

func (t *tv) Off(context.Context) error {
	t.on = false
	t.switches++
	return nil
}

func TestBind(t *testing.T) {
	t.Parallel()

	t.Run("applies effect to captured receiver", func(t *testing.T) {
		t.Parallel()

		set := &tv{}
		on := command.Bind(set, (*tv).On)
		off := command.Bind(set, (*tv).Off)

		require.NoError(t, on.Execute(context.Background()))
		assert.True(t, set.on)

		require.NoError(t, off.Execute(context.Background()))
		assert.False(t, set.on)
		assert.Equal(t, 2, set.switches)
	})

	t.Run("returns effect error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		cmd := command.Bind("receiver", func(string, context.Context) error { return boom })

		assert.ErrorIs(t, cmd.Execute(context.Background()), boom)
	})

	t.Run("value receiver is copied at bind time", func(t *testing.T) {
		t.Parallel()

		n := 1
		var seen int
		cmd := command.Bind(n, func(v int, _ context.Context) error {
			seen = v
			return nil
		})
		n = 2

		require.NoError(t, cmd.Execute(context.Background()))
		assert.Equal(t, 1, seen)
		assert.Equal(t, 2, n)
	})

	t.Run("panics on nil effect", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, command.ErrNilCommand, func() {
			command.Bind[*tv](&tv{}, nil)
		})
	})
}

func TestFunc(t *testing.T) {
	t.Parallel()

	called := false
	cmd := command.Func(func(context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, cmd.Execute(context.Background()))
	assert.True(t, called)
}
