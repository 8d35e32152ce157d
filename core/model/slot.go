package model

import (
	"sync"

	"github.com/YuminosukeSato/linefit/pkg/errors"
)

// Slot holds the current model of a session. Loading from an empty slot fails
// with a NotFittedError. Stored values are expected to be immutable; the slot
// only synchronizes replacing them.
type Slot[T any] struct {
	mu      sync.RWMutex
	value   T
	loaded  bool
	version uint64
}

// Store replaces the current value and returns the new version number.
func (s *Slot[T]) Store(v T) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.loaded = true
	s.version++
	return s.version
}

// Load returns the current value, or a NotFittedError when nothing was stored
// since creation or the last Reset.
func (s *Slot[T]) Load() (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		var zero T
		return zero, errors.NewNotFittedError("model.Slot", "Load")
	}
	return s.value, nil
}

// Version returns how many times Store has been called.
func (s *Slot[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Reset empties the slot. The version counter is kept.
func (s *Slot[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	s.value = zero
	s.loaded = false
}
