// Package ring provides a capped append-only sequence with FIFO eviction.
// It backs every bounded history in the engine (per-word score history,
// per-learner confidence history) so the slice-and-shift logic lives in
// exactly one place.
package ring

// Buffer holds at most Cap entries in insertion order. Appending beyond
// capacity evicts the oldest entry.
type Buffer[T any] struct {
	cap   int
	items []T
}

// New creates an empty Buffer with the given capacity.
// A capacity below 1 is treated as 1.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer[T]{cap: capacity, items: make([]T, 0, capacity)}
}

// FromSlice creates a Buffer seeded with items, keeping only the most
// recent capacity entries. Used when loading persisted histories.
func FromSlice[T any](capacity int, items []T) *Buffer[T] {
	b := New[T](capacity)
	if len(items) > b.cap {
		items = items[len(items)-b.cap:]
	}
	b.items = append(b.items, items...)
	return b
}

// Append adds v, evicting the oldest entry if the buffer is full.
func (b *Buffer[T]) Append(v T) {
	if len(b.items) >= b.cap {
		// Shift in place; the buffer never grows past cap.
		copy(b.items, b.items[1:])
		b.items[len(b.items)-1] = v
		return
	}
	b.items = append(b.items, v)
}

// Len returns the number of stored entries.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// Cap returns the buffer capacity.
func (b *Buffer[T]) Cap() int {
	return b.cap
}

// Items returns a copy of the entries, oldest first.
func (b *Buffer[T]) Items() []T {
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// Last returns the most recent entry, or false if the buffer is empty.
func (b *Buffer[T]) Last() (T, bool) {
	if len(b.items) == 0 {
		var zero T
		return zero, false
	}
	return b.items[len(b.items)-1], true
}
