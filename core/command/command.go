package command

import "context"

// Command is a zero-argument action bound to its receiver at construction.
type Command interface {
	Execute(ctx context.Context) error
}

// Func adapts a function to the Command interface.
type Func func(ctx context.Context) error

// Execute calls f(ctx).
func (f Func) Execute(ctx context.Context) error {
	return f(ctx)
}

type bound[T any] struct {
	receiver T
	effect   func(T, context.Context) error
}

func (b *bound[T]) Execute(ctx context.Context) error {
	return b.effect(b.receiver, ctx)
}

// Bind returns a command that applies effect to receiver.
// effect takes the receiver first, so method expressions such as (*TV).On fit.
// The pair is fixed once built; to change what a key does, bind a new command.
//
// Example:
//
//	tv := &TV{}
//	on := command.Bind(tv, (*TV).On)
//	off := command.Bind(tv, (*TV).Off)
func Bind[T any](receiver T, effect func(T, context.Context) error) Command {
	if effect == nil {
		panic(ErrNilCommand)
	}
	return &bound[T]{receiver: receiver, effect: effect}
}
