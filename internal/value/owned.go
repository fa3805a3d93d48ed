package value

import (
	"errors"
	"fmt"
	"slices"
)

// ErrMoved is the panic value raised when a moved-from binding is used.
var ErrMoved = errors.New("value used after move")

// Owned is a growable sequence binding with single-owner semantics.
// Move hands the backing slice to a new binding and leaves the source
// permanently unusable; Clone makes a deep copy that shares nothing.
type Owned[T any] struct {
	items []T
	moved bool
}

// Own takes ownership of items. The caller must not keep using items.
func Own[T any](items []T) *Owned[T] {
	return &Owned[T]{items: items}
}

// Moved reports whether the binding has been moved from.
func (o *Owned[T]) Moved() bool {
	return o.moved
}

// Move transfers the sequence to a new binding. The source's reference is
// dropped so nothing can reach the storage through it.
func (o *Owned[T]) Move() *Owned[T] {
	o.mustLive()
	dst := &Owned[T]{items: o.items}
	o.items = nil
	o.moved = true
	return dst
}

// Clone returns an independent copy of a live binding.
func (o *Owned[T]) Clone() *Owned[T] {
	o.mustLive()
	return &Owned[T]{items: slices.Clone(o.items)}
}

// Get exposes the elements for reading.
func (o *Owned[T]) Get() []T {
	o.mustLive()
	return o.items
}

// Len returns the element count.
func (o *Owned[T]) Len() int {
	o.mustLive()
	return len(o.items)
}

// Set replaces the element at i. Out-of-range i panics like any Go index.
func (o *Owned[T]) Set(i int, v T) {
	o.mustLive()
	o.items[i] = v
}

// Push appends v.
func (o *Owned[T]) Push(v T) {
	o.mustLive()
	o.items = append(o.items, v)
}

func (o *Owned[T]) String() string {
	if o.moved {
		return "<moved>"
	}
	return fmt.Sprint(o.items)
}

func (o *Owned[T]) mustLive() {
	if o.moved {
		panic(ErrMoved)
	}
}
