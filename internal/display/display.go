// Package display renders resource descriptors for error context layers.
package display

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Limit is the number of runes above which Truncate shortens a descriptor.
const Limit = 80

// Marker is spliced into the middle of a truncated descriptor.
const Marker = "❲…❳"

const (
	prefixLen = Limit / 2
	suffixLen = Limit - prefixLen - 3
)

// Quote renders s as a double-quoted Go string literal. Invalid UTF-8 bytes
// are rendered as \x escapes, so the descriptor is always printable.
func Quote(s string) string {
	return strconv.Quote(s)
}

// Truncate shortens descriptors longer than Limit runes by keeping a fixed
// prefix and suffix around Marker. The result is always exactly Limit runes
// for any input above the threshold; shorter inputs are returned unchanged.
//
// Truncation is cosmetic: callers must keep using the original value for the
// operation itself.
func Truncate(s string) string {
	if utf8.RuneCountInString(s) <= Limit {
		return s
	}

	runes := []rune(s)
	var b strings.Builder
	b.WriteString(string(runes[:prefixLen]))
	b.WriteString(Marker)
	b.WriteString(string(runes[len(runes)-suffixLen:]))
	return b.String()
}

// Lossy converts b to a string, replacing each byte that is not part of a
// valid UTF-8 sequence with U+FFFD.
func Lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}
