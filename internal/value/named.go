// Package value holds the small values the demos copy, move and clone.
package value

import "fmt"

// Named is a record with a single text label.
type Named struct {
	name string
}

// NewNamed creates a Named record.
func NewNamed(name string) *Named {
	return &Named{name: name}
}

// Name returns the record's label.
func (n *Named) Name() string {
	return n.name
}

// Rename replaces the label. Only this record changes.
func (n *Named) Rename(name string) {
	n.name = name
}

// Clone returns an independent copy. Go strings are immutable, so copying
// the struct is enough to share no mutable storage.
func (n *Named) Clone() *Named {
	c := *n
	return &c
}

func (n *Named) String() string {
	return fmt.Sprintf("Named{name: %q}", n.name)
}
