package strategy

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/compose/core/logger"
)

// Behavior is an interchangeable algorithm held by a Slot.
type Behavior interface {
	Perform(ctx context.Context) error
}

// BehaviorFunc adapts a function to the Behavior interface.
type BehaviorFunc func(ctx context.Context) error

// Perform calls f(ctx).
func (f BehaviorFunc) Perform(ctx context.Context) error {
	return f(ctx)
}

// Slot holds exactly one active behavior and delegates to it.
// A Slot is not safe for concurrent use.
//
// Example:
//
//	duck := strategy.NewSlot[FlyBehavior](CanFly{})
//	_ = duck.Invoke(ctx) // "i can fly!"
//	duck.Set(CanNotFly{})
//	_ = duck.Invoke(ctx) // "i can't fly!"
type Slot[B Behavior] struct {
	current  B
	invoking int
	logger   *slog.Logger
}

// Option configures a Slot.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the slot logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewSlot returns a slot holding initial.
func NewSlot[B Behavior](initial B, opts ...Option) *Slot[B] {
	o := options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Slot[B]{current: initial, logger: o.logger}
}

// Set replaces the active behavior. The previous one is released and never
// invoked again by this slot.
//
// Set panics with ErrReentrantSwap when called from inside Invoke on the same slot.
func (s *Slot[B]) Set(b B) {
	if s.invoking > 0 {
		panic(ErrReentrantSwap)
	}

	s.logger.Debug("behavior replaced",
		logger.Component("strategy"),
		logger.Type(typeName(b)))
	s.current = b
}

// Current returns the active behavior.
func (s *Slot[B]) Current() B {
	return s.current
}

// Invoke runs the active behavior.
func (s *Slot[B]) Invoke(ctx context.Context) error {
	s.invoking++
	defer func() { s.invoking-- }()

	return s.current.Perform(ctx)
}
