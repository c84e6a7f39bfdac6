package cell_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/compose/core/cell"
)

type dbConfig struct {
	DSN      string
	MaxConns int
}

func TestCell_Get(t *testing.T) {
	t.Parallel()

	t.Run("builds lazily", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		c := cell.New(func() dbConfig {
			calls.Add(1)
			return dbConfig{DSN: "test config"}
		})

		assert.Equal(t, int32(0), calls.Load(), "factory must not run before Get")

		shared := c.Get()
		assert.Equal(t, "test config", shared.Load().DSN)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("returns same instance on every call", func(t *testing.T) {
		t.Parallel()

		c := cell.New(func() dbConfig { return dbConfig{} })
		assert.Same(t, c.Get(), c.Get())
	})

	t.Run("write is visible to later readers", func(t *testing.T) {
		t.Parallel()

		c := cell.New(func() dbConfig { return dbConfig{DSN: "test config"} })

		c.Get().Update(func(cfg *dbConfig) {
			cfg.DSN = "hello"
		})

		assert.Equal(t, "hello", c.Get().Load().DSN)
	})

	t.Run("concurrent first access constructs once", func(t *testing.T) {
		t.Parallel()

		const callers = 64

		var calls atomic.Int32
		c := cell.New(func() dbConfig {
			calls.Add(1)
			return dbConfig{MaxConns: 10}
		})

		start := make(chan struct{})
		results := make([]*cell.Shared[dbConfig], callers)

		var g errgroup.Group
		for i := range callers {
			g.Go(func() error {
				<-start
				results[i] = c.Get()
				return nil
			})
		}
		close(start)
		require.NoError(t, g.Wait())

		assert.Equal(t, int32(1), calls.Load())
		for _, r := range results {
			assert.Same(t, results[0], r)
			assert.Equal(t, 10, r.Load().MaxConns, "callers must see the fully built value")
		}
	})

	t.Run("panicking factory re-panics", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		c := cell.New(func() dbConfig {
			calls.Add(1)
			panic("unknown driver")
		})

		assert.PanicsWithValue(t, "unknown driver", func() { c.Get() })
		assert.PanicsWithValue(t, "unknown driver", func() { c.Get() })
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("nil factory panics", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, cell.ErrNilFactory, func() {
			cell.New[dbConfig](nil)
		})
	})
}

func TestShared_ConcurrentWrites(t *testing.T) {
	t.Parallel()

	type pair struct {
		A, B int
	}

	c := cell.New(func() pair { return pair{} })
	shared := c.Get()

	const writers = 50

	var g errgroup.Group
	for i := 1; i <= writers; i++ {
		g.Go(func() error {
			shared.Update(func(p *pair) {
				p.A = i
				p.B = i
			})
			return nil
		})
		g.Go(func() error {
			shared.Read(func(p pair) {
				assert.Equal(t, p.A, p.B, "reader observed a torn write")
			})
			return nil
		})
	}
	require.NoError(t, g.Wait())

	final := shared.Load()
	assert.Equal(t, final.A, final.B)
	assert.True(t, final.A >= 1 && final.A <= writers, "final value must be one writer's value")
}

func TestShared_Store(t *testing.T) {
	t.Parallel()

	shared := cell.New(func() int { return 1 }).Get()
	shared.Store(42)
	assert.Equal(t, 42, shared.Load())
}

func TestShared_TryUpdate(t *testing.T) {
	t.Parallel()

	shared := cell.New(func() int { return 0 }).Get()

	t.Run("succeeds when free", func(t *testing.T) {
		ok := shared.TryUpdate(func(v *int) { *v = 7 })
		assert.True(t, ok)
		assert.Equal(t, 7, shared.Load())
	})

	t.Run("fails while another writer holds the lock", func(t *testing.T) {
		held := make(chan struct{})
		release := make(chan struct{})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			shared.Update(func(v *int) {
				close(held)
				<-release
				*v = 8
			})
		}()

		<-held
		ok := shared.TryUpdate(func(v *int) { *v = 99 })
		close(release)
		wg.Wait()

		assert.False(t, ok)
		assert.Equal(t, 8, shared.Load())
	})
}

type forTypeA struct{ N int }

type forTypeB struct{ S string }

func TestFor(t *testing.T) {
	t.Parallel()

	t.Run("one instance per type", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		factory := func() forTypeA {
			calls.Add(1)
			return forTypeA{N: 1}
		}

		var g errgroup.Group
		results := make([]*cell.Shared[forTypeA], 16)
		for i := range results {
			g.Go(func() error {
				results[i] = cell.For(factory)
				return nil
			})
		}
		require.NoError(t, g.Wait())

		assert.Equal(t, int32(1), calls.Load())
		for _, r := range results {
			assert.Same(t, results[0], r)
		}
	})

	t.Run("first factory wins", func(t *testing.T) {
		t.Parallel()

		first := cell.For(func() forTypeB { return forTypeB{S: "first"} })
		second := cell.For(func() forTypeB { return forTypeB{S: "second"} })

		assert.Same(t, first, second)
		assert.Equal(t, "first", second.Load().S)
	})
}
