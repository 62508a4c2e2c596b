// Package roundrobin - hands out items in a fixed cyclic order.
package roundrobin

import (
	"errors"
	"slices"

	"github.com/jaredmtdev/wrapnum"
	"github.com/jaredmtdev/wrapnum/internal/syncvalue"
)

// ErrNoItems - a picker needs at least one item.
var ErrNoItems = errors.New("must use at least 1 item")

// Picker - cycles through items. safe for concurrent use.
type Picker[E any] struct {
	items  []E
	cursor syncvalue.Value[wrapnum.Num[int]]
}

// New - picker over a copy of items, starting at the first one.
func New[E any](items ...E) (*Picker[E], error) {
	cursor, err := wrapnum.New(len(items))
	if err != nil {
		return nil, ErrNoItems
	}
	p := &Picker[E]{items: slices.Clone(items)}
	p.cursor.Store(cursor)
	return p, nil
}

// Next - returns the current item and advances the cursor.
func (p *Picker[E]) Next() E {
	i := p.cursor.Update(wrapnum.Num[int].Inc)
	return p.items[i.Int()]
}

// Skip - moves the cursor by n items. n may be negative or larger than Len().
func (p *Picker[E]) Skip(n int) {
	p.cursor.Update(func(c wrapnum.Num[int]) wrapnum.Num[int] {
		return c.Add(n)
	})
}

// Peek - item the next call to Next will return.
func (p *Picker[E]) Peek() E {
	return p.items[p.cursor.Load().Int()]
}

func (p *Picker[E]) Len() int { return len(p.items) }
