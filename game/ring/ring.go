package ring

import (
	"fmt"
)

// Ring is a fixed-capacity block of slots navigated with wraparound.
// It has no notion of which slots are in use; callers keep their own
// head/tail bookkeeping.
type Ring[T any] struct {
	buf []T
}

// New creates a ring with count slots. The slots are allocated once and
// never resized.
func New[T any](count int) *Ring[T] {
	if count <= 0 {
		panic("ring: capacity must be > 0")
	}
	return &Ring[T]{buf: make([]T, count)}
}

func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// First returns the lowest slot index.
func (r *Ring[T]) First() int {
	return 0
}

// Next returns the slot after slot, wrapping to the first slot.
func (r *Ring[T]) Next(slot int) int {
	r.check(slot)
	if slot == len(r.buf)-1 {
		return 0
	}
	return slot + 1
}

// Prev returns the slot before slot, wrapping to the last slot.
func (r *Ring[T]) Prev(slot int) int {
	r.check(slot)
	if slot == 0 {
		return len(r.buf) - 1
	}
	return slot - 1
}

func (r *Ring[T]) At(slot int) T {
	r.check(slot)
	return r.buf[slot]
}

func (r *Ring[T]) Set(slot int, v T) {
	r.check(slot)
	r.buf[slot] = v
}

func (r *Ring[T]) check(slot int) {
	if slot < 0 || slot >= len(r.buf) {
		panic(fmt.Sprintf("ring: slot %d out of range [0, %d)", slot, len(r.buf)))
	}
}
