package observer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/compose/core/logger"
	"github.com/dmitrymomot/compose/core/observer"
)

// recorder appends its id to a shared log on every notification.
type recorder struct {
	id  int
	log *[]int
	fn  func(ctx context.Context, event string) error
}

func (r *recorder) Notify(ctx context.Context, event string) error {
	*r.log = append(*r.log, r.id)
	if r.fn != nil {
		return r.fn(ctx, event)
	}
	return nil
}

// valueObserver has no identity: distinct values may compare equal.
type valueObserver struct {
	id int
}

func (valueObserver) Notify(context.Context, string) error { return nil }

func TestRegistry_Attach(t *testing.T) {
	t.Parallel()

	t.Run("notifies in attachment order", func(t *testing.T) {
		t.Parallel()

		var log []int
		reg := observer.New[string]()
		reg.Attach(&recorder{id: 1, log: &log})
		reg.Attach(&recorder{id: 2, log: &log})
		reg.Attach(&recorder{id: 3, log: &log})

		require.NoError(t, reg.NotifyAll(context.Background(), "event"))
		assert.Equal(t, []int{1, 2, 3}, log)
	})

	t.Run("duplicate attach is a no-op", func(t *testing.T) {
		t.Parallel()

		var log []int
		reg := observer.New[string]()
		o := &recorder{id: 1, log: &log}

		h1 := reg.Attach(o)
		h2 := reg.Attach(o)

		assert.Equal(t, h1, h2)
		assert.Equal(t, 1, reg.Len())

		require.NoError(t, reg.NotifyAll(context.Background(), "event"))
		assert.Equal(t, []int{1}, log, "observer must be notified once")
	})

	t.Run("func observers are appended every time", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fn := observer.ObserverFunc[string](func(context.Context, string) error {
			calls++
			return nil
		})

		reg := observer.New[string]()
		h1 := reg.Attach(fn)
		h2 := reg.Attach(fn)

		assert.NotEqual(t, h1, h2)
		require.NoError(t, reg.NotifyAll(context.Background(), "event"))
		assert.Equal(t, 2, calls)
	})

	t.Run("equal values are distinct observers", func(t *testing.T) {
		t.Parallel()

		reg := observer.New[string]()
		reg.Attach(valueObserver{id: 1})
		reg.Attach(valueObserver{id: 1})

		assert.Equal(t, 2, reg.Len())
		assert.False(t, reg.Detach(valueObserver{id: 1}), "value observers detach by handle only")
	})

	t.Run("nil observer panics", func(t *testing.T) {
		t.Parallel()

		reg := observer.New[string]()
		assert.PanicsWithValue(t, observer.ErrNilObserver, func() {
			reg.Attach(nil)
		})
	})
}

func TestRegistry_Detach(t *testing.T) {
	t.Parallel()

	t.Run("removes observer", func(t *testing.T) {
		t.Parallel()

		var log []int
		reg := observer.New[string]()
		a := &recorder{id: 1, log: &log}
		b := &recorder{id: 2, log: &log}
		reg.Attach(a)
		reg.Attach(b)

		assert.True(t, reg.Detach(b))
		require.NoError(t, reg.NotifyAll(context.Background(), "event"))
		assert.Equal(t, []int{1}, log)
	})

	t.Run("unattached observer is a no-op", func(t *testing.T) {
		t.Parallel()

		var log []int
		reg := observer.New[string]()
		reg.Attach(&recorder{id: 1, log: &log})

		assert.False(t, reg.Detach(&recorder{id: 1, log: &log}))
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("by handle", func(t *testing.T) {
		t.Parallel()

		calls := 0
		reg := observer.New[string]()
		h := reg.Attach(observer.ObserverFunc[string](func(context.Context, string) error {
			calls++
			return nil
		}))

		assert.True(t, reg.DetachHandle(h))
		assert.False(t, reg.DetachHandle(h), "second detach is a no-op")
		assert.False(t, reg.DetachHandle(observer.Handle{}))

		require.NoError(t, reg.NotifyAll(context.Background(), "event"))
		assert.Zero(t, calls)
	})
}

func TestRegistry_NotifyAll(t *testing.T) {
	t.Parallel()

	t.Run("empty registry", func(t *testing.T) {
		t.Parallel()

		reg := observer.New[string]()
		assert.NoError(t, reg.NotifyAll(context.Background(), "event"))
	})

	t.Run("passes the event through", func(t *testing.T) {
		t.Parallel()

		var got []string
		reg := observer.New[string]()
		reg.Attach(observer.ObserverFunc[string](func(_ context.Context, e string) error {
			got = append(got, e)
			return nil
		}))

		require.NoError(t, reg.NotifyAll(context.Background(), "first"))
		require.NoError(t, reg.NotifyAll(context.Background(), "second"))
		assert.Equal(t, []string{"first", "second"}, got)
	})

	t.Run("errors are joined and do not stop the broadcast", func(t *testing.T) {
		t.Parallel()

		errA := errors.New("a failed")
		errC := errors.New("c failed")

		var log []int
		reg := observer.New[string]()
		reg.Attach(&recorder{id: 1, log: &log, fn: func(context.Context, string) error { return errA }})
		reg.Attach(&recorder{id: 2, log: &log})
		reg.Attach(&recorder{id: 3, log: &log, fn: func(context.Context, string) error { return errC }})

		err := reg.NotifyAll(context.Background(), "event")
		require.Error(t, err)
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errC)
		assert.Equal(t, []int{1, 2, 3}, log)
	})

	t.Run("panics are recovered", func(t *testing.T) {
		t.Parallel()

		var log []int
		reg := observer.New[string]()
		reg.Attach(&recorder{id: 1, log: &log, fn: func(context.Context, string) error { panic("boom") }})
		reg.Attach(&recorder{id: 2, log: &log})

		err := reg.NotifyAll(context.Background(), "event")
		assert.ErrorIs(t, err, observer.ErrObserverPanicked)
		assert.Contains(t, err.Error(), "boom")
		assert.Equal(t, []int{1, 2}, log)
	})

	t.Run("cancelled context notifies nobody", func(t *testing.T) {
		t.Parallel()

		var log []int
		reg := observer.New[string]()
		reg.Attach(&recorder{id: 1, log: &log})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, reg.NotifyAll(ctx, "event"), context.Canceled)
		assert.Empty(t, log)
	})

	t.Run("logs observer failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		reg := observer.New[string](observer.WithLogger(logger.New(logger.WithOutput(&buf))))
		reg.Attach(observer.ObserverFunc[string](func(context.Context, string) error {
			return errors.New("disk full")
		}))

		require.Error(t, reg.NotifyAll(context.Background(), "event"))
		assert.Contains(t, buf.String(), "observer failed")
		assert.Contains(t, buf.String(), "disk full")
	})
}

func TestRegistry_MutationDuringBroadcast(t *testing.T) {
	t.Parallel()

	t.Run("observer detaching itself", func(t *testing.T) {
		t.Parallel()

		var log []int
		reg := observer.New[string]()
		a := &recorder{id: 1, log: &log}
		b := &recorder{id: 2, log: &log}
		c := &recorder{id: 3, log: &log}
		b.fn = func(context.Context, string) error {
			reg.Detach(b)
			return nil
		}
		reg.Attach(a)
		reg.Attach(b)
		reg.Attach(c)

		require.NoError(t, reg.NotifyAll(context.Background(), "first"))
		assert.Equal(t, []int{1, 2, 3}, log, "c must not be skipped when b detaches itself")

		log = log[:0]
		require.NoError(t, reg.NotifyAll(context.Background(), "second"))
		assert.Equal(t, []int{1, 3}, log)
	})

	t.Run("observer detaching a later observer", func(t *testing.T) {
		t.Parallel()

		var log []int
		reg := observer.New[string]()
		a := &recorder{id: 1, log: &log}
		b := &recorder{id: 2, log: &log}
		a.fn = func(context.Context, string) error {
			reg.Detach(b)
			return nil
		}
		reg.Attach(a)
		reg.Attach(b)

		require.NoError(t, reg.NotifyAll(context.Background(), "first"))
		assert.Equal(t, []int{1, 2}, log, "b was attached when the broadcast started")

		log = log[:0]
		require.NoError(t, reg.NotifyAll(context.Background(), "second"))
		assert.Equal(t, []int{1}, log)
	})

	t.Run("observer attaching another", func(t *testing.T) {
		t.Parallel()

		var log []int
		reg := observer.New[string]()
		late := &recorder{id: 9, log: &log}
		first := &recorder{id: 1, log: &log}
		first.fn = func(context.Context, string) error {
			reg.Attach(late)
			return nil
		}
		reg.Attach(first)

		require.NoError(t, reg.NotifyAll(context.Background(), "first"))
		assert.Equal(t, []int{1}, log, "late observer starts with the next broadcast")

		log = log[:0]
		require.NoError(t, reg.NotifyAll(context.Background(), "second"))
		assert.Equal(t, []int{1, 9}, log)
	})
}

func TestRegistry_Observers(t *testing.T) {
	t.Parallel()

	var log []int
	reg := observer.New[string]()
	a := &recorder{id: 1, log: &log}
	b := &recorder{id: 2, log: &log}
	reg.Attach(a)
	reg.Attach(b)

	var seen []observer.Observer[string]
	for o := range reg.Observers() {
		seen = append(seen, o)
		reg.Detach(b)
	}

	require.Len(t, seen, 2)
	assert.Same(t, a, seen[0])
	assert.Same(t, b, seen[1])
	assert.Equal(t, 1, reg.Len())
}

// TestRegistry_Properties checks that for any sequence of attach/detach
// operations a broadcast reaches exactly the attached set, once each, in order.
func TestRegistry_Properties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		var log []int
		pool := make([]*recorder, 6)
		for i := range pool {
			pool[i] = &recorder{id: i, log: &log}
		}

		reg := observer.New[string]()
		var model []int

		ops := rapid.IntRange(1, 40).Draw(rt, "ops")
		for range ops {
			idx := rapid.IntRange(0, len(pool)-1).Draw(rt, "observer")
			if rapid.Bool().Draw(rt, "attach") {
				reg.Attach(pool[idx])
				if !containsInt(model, idx) {
					model = append(model, idx)
				}
			} else {
				removed := reg.Detach(pool[idx])
				require.Equal(rt, containsInt(model, idx), removed)
				model = removeInt(model, idx)
			}

			log = log[:0]
			require.NoError(rt, reg.NotifyAll(context.Background(), "event"))
			if len(model) == 0 {
				require.Empty(rt, log)
			} else {
				require.Equal(rt, model, log)
			}
			require.Equal(rt, len(model), reg.Len())
		}
	})
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func removeInt(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}
