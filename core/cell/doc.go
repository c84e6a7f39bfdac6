// Package cell provides lazily initialized shared values with exactly-once
// construction and mutex-guarded access.
//
// A Cell builds its value on the first Get, using sync.OnceValue, so any number
// of goroutines racing on first access trigger exactly one factory call and all
// receive the same *Shared[T]. After construction, Shared mediates access:
//
//	settings := cell.New(func() Settings {
//		return Settings{DSN: "postgres://localhost/app"}
//	})
//
//	s := settings.Get()
//	s.Update(func(v *Settings) { v.DSN = "postgres://db/app" })
//	fmt.Println(s.Load().DSN)
//
// For keeps one cell per type for the whole process. It is what core/config
// uses to load each configuration struct exactly once:
//
//	shared := cell.For(func() Settings { return loadSettings() })
//
// Lock waits are unbounded. TryUpdate is the non-blocking alternative. There is
// no poisoning: if a callback leaves the value half-updated and panics, the
// lock is released and the value stays as the callback left it.
package cell
