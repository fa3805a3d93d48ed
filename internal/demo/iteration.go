package demo

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"idioms/internal/seq"
	"idioms/internal/text"
)

// runBytes iterates a fixed array two ways and a growable slice two more.
func runBytes(env *Env) {
	p := env.P

	var ba [5]uint8 // length is part of the type
	for i, b := range env.In.ByteArray {
		ba[i] = uint8(b)
	}
	indexed := "[" + seq.JoinIndexed(ba[:]) + "]"
	ranged := "[" + seq.JoinRange(ba[:]) + "]"

	p.Line("bytes from byte array, index style:")
	p.Line("%s", indexed)
	p.Line("bytes from byte array, range style:")
	p.Line("%s", ranged)
	p.Line("identical output: %t", indexed == ranged)

	bs := make([]uint8, len(env.In.ByteSlice))
	for i, b := range env.In.ByteSlice {
		bs[i] = uint8(b)
	}
	p.Blank()
	p.Line("idiomatic bytes from byte slice:")
	p.Line("length of byte slice: %d", len(bs))
	p.Line("[%s]", seq.JoinTake(bs))
	p.Line("printing slice with implicit iteration:")
	p.Line("%v", bs)
}

// runStrings walks text by character, never by byte.
func runStrings(env *Env) {
	p := env.P

	s := env.In.PullString
	p.Line("utf8 characters from %q:", s)
	next, stop := iter.Pull(text.Chars(s))
	var pulled []string
	for {
		r, ok := next()
		if !ok {
			break
		}
		pulled = append(pulled, string(r))
	}
	stop()
	p.Line("%s", strings.Join(pulled, " "))

	s = env.In.RangeString
	p.Blank()
	p.Line("idiomatic utf8 characters from %q:", s)
	var ranged []string
	for r := range text.Chars(s) {
		ranged = append(ranged, string(r))
	}
	p.Line("%s", strings.Join(ranged, " "))

	for _, i := range []int{env.In.LookupIndex, text.CharCount(s)} {
		if r, ok := text.CharAt(s, i); ok {
			p.Line("at index %d char of %q is %c", i, s, r)
		} else {
			p.Line("index %d out of range", i)
		}
	}

	w := env.In.WideString
	p.Blank()
	p.Line("%q: bytes %d, chars %d, graphemes %d", w, len(w), text.CharCount(w), text.Graphemes(w))
}

// runAdapters classifies a token, slices it and filters its digits.
func runAdapters(env *Env) {
	p := env.P
	ls := env.In.Token

	c := text.Classify(ls)
	p.Line("%q is alphabetic   %t", ls, c.Alphabetic)
	p.Line("%q is alphanumeric %t", ls, c.Alphanumeric)
	p.Line("%q is numeric      %t", ls, c.Numeric)
	p.Line("%q is ascii        %t", ls, c.ASCII)

	lo, hi := env.In.SliceMin, env.In.SliceMax
	part, err := text.Slice(ls, lo, hi)
	p.Line("%s", describeSlice(ls, lo, hi, part, err))

	p.Line("numeric chars of %q are: %q", ls, text.FilterNumeric(ls))
}

// describeSlice reports the outcome of slicing token to [lo, hi).
func describeSlice(token string, lo, hi int, part string, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("chars [%d, %d) of %q are: %s", lo, hi, token, part)
	case errors.Is(err, text.ErrInvalidBounds):
		return fmt.Sprintf("slice bounds %d and %d are invalid for %q", lo, hi, token)
	default:
		return fmt.Sprintf("slice failed: %v", err)
	}
}

// runGeneric renders unrelated element types with one generic function.
func runGeneric(env *Env) {
	p := env.P

	ba := env.In.ByteArray
	words := strings.Fields(env.In.RangeString)
	halves := func(yield func(float64) bool) {
		for v := 0.5; ; v /= 2 {
			if !yield(v) {
				return
			}
		}
	}

	p.Line("byte array: %s", seq.RenderSlice(ba[:]))
	p.Line("words:      %s", seq.Render(len(words), seq.Values(words)))
	p.Line("halves:     %s", seq.Render(3, iter.Seq[float64](halves)))
}
