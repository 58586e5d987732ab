package syncutil

import (
	"sync/atomic"
)

// Atomic is a typed wrapper around atomic.Value. Loading from an Atomic
// that was never stored to returns the zero value of T.
type Atomic[T any] struct {
	value atomic.Value
}

// NewAtomic creates a new Atomic instance initialized with the given value.
func NewAtomic[T any](initial T) *Atomic[T] {
	a := &Atomic[T]{}
	a.Store(initial)
	return a
}

// Load returns the current value of the Atomic instance.
func (a *Atomic[T]) Load() T {
	val, ok := a.value.Load().(T)
	if !ok {
		var zero T
		return zero
	}
	return val
}

// Store sets the value of the Atomic instance.
func (a *Atomic[T]) Store(value T) {
	a.value.Store(value)
}

// Swap stores the given value and returns the previous one.
func (a *Atomic[T]) Swap(value T) T {
	prev, ok := a.value.Swap(value).(T)
	if !ok {
		var zero T
		return zero
	}
	return prev
}
