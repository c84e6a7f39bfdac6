// Package strategy swaps an algorithm at runtime behind a stable holder.
//
// A Slot holds one Behavior at a time. Invoke delegates to it and Set replaces
// it; the holder never knows the concrete type and never runs two behaviors
// at once.
//
//	type FlyBehavior interface{ strategy.Behavior }
//
//	type CanFly struct{}
//
//	func (CanFly) Perform(context.Context) error { fmt.Println("i can fly!"); return nil }
//
//	type CanNotFly struct{}
//
//	func (CanNotFly) Perform(context.Context) error { fmt.Println("i can't fly!"); return nil }
//
//	duck := strategy.NewSlot[FlyBehavior](CanFly{})
//	duck.Invoke(ctx)      // i can fly!
//	duck.Set(CanNotFly{})
//	duck.Invoke(ctx)      // i can't fly!
//
// A behavior must not replace itself: calling Set on a slot from inside that
// slot's Invoke panics with ErrReentrantSwap. Schedule the swap after Invoke
// returns instead.
package strategy
