// Package dip shows dependency inversion: a high-level Demo depends only on
// the Sayer abstraction, and the low-level First and Second parts implement
// it. Either part can change freely as long as it still satisfies Sayer.
package dip

import (
	"fmt"
	"io"
)

// Sayer is the abstraction both levels depend on.
type Sayer interface {
	SetID(id uint)
	ID() uint
	Say(w io.Writer)
}

// First is a self-announcing low-level part.
type First struct {
	id uint
}

func (f *First) SetID(id uint) { f.id = id }
func (f *First) ID() uint      { return f.id }
func (f *First) Say(w io.Writer) {
	fmt.Fprintf(w, "First here with id = %d", f.id)
}

// Second is another low-level part.
type Second struct {
	id uint
}

func (s *Second) SetID(id uint) { s.id = id }
func (s *Second) ID() uint      { return s.id }
func (s *Second) Say(w io.Writer) {
	fmt.Fprintf(w, "Second here with id = %d", s.id)
}

// sayerPtr lets Demo construct its part from the type parameter alone, the
// way a default-constructible generic argument would be.
type sayerPtr[T any] interface {
	*T
	Sayer
}

// Demo is the high-level part, generic over its low-level Sayer.
type Demo[T any, P sayerPtr[T]] struct {
	say P
}

// NewDemo builds a Demo with a zero-valued low-level part.
func NewDemo[T any, P sayerPtr[T]]() *Demo[T, P] {
	return &Demo[T, P]{say: P(new(T))}
}

func (d *Demo[T, P]) SetID(id uint) { d.say.SetID(id) }
func (d *Demo[T, P]) ID() uint      { return d.say.ID() }

// SayIt announces the demo and then lets the low-level part speak.
func (d *Demo[T, P]) SayIt(w io.Writer, indent string) {
	fmt.Fprintf(w, "%sDemo with id %d here\n%s", indent, d.ID(), indent)
	d.say.Say(w)
	fmt.Fprintln(w)
}
