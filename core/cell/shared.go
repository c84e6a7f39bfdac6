package cell

import "sync"

// Shared is a value guarded by a read-write mutex.
// Exclusive access (Store, Update) serializes writers; Load and Read may run
// concurrently with each other but never overlap a write.
//
// None of the methods may be called from inside a callback passed to Update,
// TryUpdate or Read on the same instance: the lock is not reentrant.
type Shared[T any] struct {
	mu    sync.RWMutex
	value T
}

// Load returns a copy of the current value.
// For reference-typed T the copy shares underlying data; use Read or Update
// to work with it under the lock.
func (s *Shared[T]) Load() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Store replaces the value under exclusive access.
func (s *Shared[T]) Store(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
}

// Update runs fn with exclusive access to the value.
// Blocks until the lock is available.
func (s *Shared[T]) Update(fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.value)
}

// TryUpdate runs fn with exclusive access if the lock is free right now.
// It reports whether fn ran.
func (s *Shared[T]) TryUpdate(fn func(*T)) bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()
	fn(&s.value)
	return true
}

// Read runs fn with shared access to the value.
func (s *Shared[T]) Read(fn func(T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.value)
}
