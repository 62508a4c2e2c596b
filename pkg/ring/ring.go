// Package ring - fixed capacity circular buffer.
//
// Once full, every Push evicts the oldest element.
package ring

import (
	"errors"
	"fmt"
	"iter"

	"github.com/jaredmtdev/wrapnum"
)

// ErrInvalidCapacity - capacity must allow at least one element.
var ErrInvalidCapacity = errors.New("capacity must be at least 1")

// Buffer - circular FIFO of at most Cap() elements. not safe for concurrent use.
type Buffer[E any] struct {
	items []E
	head  wrapnum.Num[int] // oldest element
	tail  wrapnum.Num[int] // next free slot
	size  int
}

// New - creates an empty buffer holding up to capacity elements.
func New[E any](capacity int) (*Buffer[E], error) {
	idx, err := wrapnum.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("%w. capacity: %v", ErrInvalidCapacity, capacity)
	}
	return &Buffer[E]{
		items: make([]E, capacity),
		head:  idx,
		tail:  idx,
	}, nil
}

// Push - appends e. when the buffer is full the oldest element is dropped
// and returned with ok set to true.
func (b *Buffer[E]) Push(e E) (evicted E, ok bool) {
	if b.size == len(b.items) {
		evicted, ok = b.items[b.head.Int()], true
		b.head = b.head.Inc()
		b.size--
	}
	b.items[b.tail.Int()] = e
	b.tail = b.tail.Inc()
	b.size++
	return evicted, ok
}

// Pop - removes and returns the oldest element.
func (b *Buffer[E]) Pop() (E, bool) {
	var zero E
	if b.size == 0 {
		return zero, false
	}
	e := b.items[b.head.Int()]
	b.items[b.head.Int()] = zero
	b.head = b.head.Inc()
	b.size--
	return e, true
}

// Peek - oldest element without removing it.
func (b *Buffer[E]) Peek() (E, bool) {
	if b.size == 0 {
		var zero E
		return zero, false
	}
	return b.items[b.head.Int()], true
}

// Newest - most recently pushed element.
func (b *Buffer[E]) Newest() (E, bool) {
	if b.size == 0 {
		var zero E
		return zero, false
	}
	return b.items[b.tail.Dec().Int()], true
}

func (b *Buffer[E]) Len() int { return b.size }

func (b *Buffer[E]) Cap() int { return len(b.items) }

// Reset - drops every element.
func (b *Buffer[E]) Reset() {
	clear(b.items)
	b.head = b.head.At(0)
	b.tail = b.tail.At(0)
	b.size = 0
}

// All - iterates from oldest to newest.
// the buffer must not be modified while iterating.
func (b *Buffer[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		i := b.head
		for range b.size {
			if !yield(b.items[i.Int()]) {
				return
			}
			i = i.Inc()
		}
	}
}
