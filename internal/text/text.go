// Package text works on UTF-8 strings one character (rune) at a time.
// Nothing here indexes a string by byte offset.
package text

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// ErrInvalidBounds is matched by every *BoundsError.
var ErrInvalidBounds = errors.New("invalid slice bounds")

// BoundsError reports a character range that does not fit its string.
type BoundsError struct {
	Min, Max int
	Len      int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("slice bounds %d and %d are invalid for length %d", e.Min, e.Max, e.Len)
}

func (e *BoundsError) Is(target error) bool {
	return target == ErrInvalidBounds
}

// Chars yields the characters of s in order.
func Chars(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// CharCount returns the number of characters in s, not its byte length.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// Graphemes returns the number of user-perceived characters in s. A flag or
// an emoji with a skin tone modifier is one grapheme but several runes.
func Graphemes(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// CharAt returns the i-th character of s. ok is false when i is outside
// [0, CharCount(s)).
func CharAt(s string, i int) (r rune, ok bool) {
	if i < 0 {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if n == i {
			return c, true
		}
		n++
	}
	return 0, false
}

// Slice returns characters [lo, hi) of s. It returns a *BoundsError unless
// 0 <= lo <= hi <= CharCount(s).
func Slice(s string, lo, hi int) (string, error) {
	n := CharCount(s)
	if lo < 0 || lo > hi || hi > n {
		return "", &BoundsError{Min: lo, Max: hi, Len: n}
	}
	start, end := len(s), len(s)
	i := 0
	for off := range s {
		if i == lo {
			start = off
		}
		if i == hi {
			end = off
			break
		}
		i++
	}
	return s[start:end], nil
}

// Classification holds whole-token character class checks. Each field is
// true only when every character passes; all are true for "".
type Classification struct {
	Alphabetic   bool
	Alphanumeric bool
	Numeric      bool
	ASCII        bool
}

// Classify checks token against each character class.
func Classify(token string) Classification {
	return Classification{
		Alphabetic:   All(token, isAlphabetic),
		Alphanumeric: All(token, isAlphanumeric),
		Numeric:      All(token, unicode.IsNumber),
		ASCII:        All(token, isASCII),
	}
}

// All reports whether pred holds for every character of s.
func All(s string, pred func(rune) bool) bool {
	for r := range Chars(s) {
		if !pred(r) {
			return false
		}
	}
	return true
}

// Filter collects the characters of s that satisfy keep into a new string.
func Filter(s string, keep func(rune) bool) string {
	var b strings.Builder
	for r := range Chars(s) {
		if keep(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FilterNumeric keeps only numeric characters.
func FilterNumeric(s string) string {
	return Filter(s, unicode.IsNumber)
}

// isAlphabetic follows the Unicode Alphabetic property: letters, letter
// numbers and combining marks such as Devanagari vowel signs.
func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic)
}

func isAlphanumeric(r rune) bool {
	return isAlphabetic(r) || unicode.IsNumber(r)
}

func isASCII(r rune) bool {
	return r <= unicode.MaxASCII
}
