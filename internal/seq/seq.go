// Package seq renders finite sequences as comma separated text.
//
// Every function here needs the sequence length before it starts so the
// separator after the last element can be left off. Element types are only
// required to be printable with %v.
package seq

import (
	"fmt"
	"iter"
	"strings"
)

// JoinIndexed walks s with an explicit index range: every element but the
// last is written followed by ", ", then the last one on its own.
func JoinIndexed[T any](s []T) string {
	n := len(s)
	if n == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < n-1; i++ {
		fmt.Fprintf(&b, "%v, ", s[i])
	}
	fmt.Fprintf(&b, "%v", s[n-1])
	return b.String()
}

// JoinRange walks s with range. Output is identical to JoinIndexed.
func JoinRange[T any](s []T) string {
	var b strings.Builder
	for i, item := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", item)
	}
	return b.String()
}

// JoinTake writes the first n-1 items of s with a trailing separator each,
// then the last item.
func JoinTake[T any](s []T) string {
	n := len(s)
	if n == 0 {
		return ""
	}
	var b strings.Builder
	for _, item := range s[:n-1] {
		fmt.Fprintf(&b, "%v, ", item)
	}
	fmt.Fprintf(&b, "%v", s[n-1])
	return b.String()
}

// Render formats the first n items of items as "[a, b, c]". n is the
// known length; items past n are not rendered, a sequence shorter than n
// simply ends early, and n <= 0 renders "[]".
func Render[T any](n int, items iter.Seq[T]) string {
	var b strings.Builder
	b.WriteByte('[')
	if n > 0 {
		count := 0
		for item := range items {
			if count > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", item)
			count++
			if count == n {
				break
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// RenderSlice is Render over a slice.
func RenderSlice[T any](s []T) string {
	return Render(len(s), Values(s))
}

// Values yields the elements of s in order.
func Values[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}
