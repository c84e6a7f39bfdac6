// Package factory creates values from a closed set of named families without
// the caller naming concrete types.
//
// A family is a constructor registered under a name. The type parameter can
// be a single product or a whole kit of related products, which covers both
// factory method and abstract factory use:
//
//	type GUIFactory interface {
//		CreateButton() Button
//		CreateCheckbox() Checkbox
//	}
//
//	guis := factory.New[GUIFactory]()
//	guis.Register("mac", func() GUIFactory { return MacFactory{} })
//	guis.Register("win", func() GUIFactory { return WinFactory{} })
//
//	gui := guis.MustCreate(os) // panics for anything but "mac" or "win"
//	gui.CreateButton().Paint()
//
// # Error Handling
//
// Create returns an error wrapping ErrUnknownFamily for names outside the
// registered set. MustCreate panics with it instead, for startup code where an
// unknown family means the program is misconfigured:
//
//	shape, err := shapes.Create(name)
//	if errors.Is(err, factory.ErrUnknownFamily) {
//		return fmt.Errorf("unsupported shape %q, want one of %v", name, shapes.Families())
//	}
package factory
