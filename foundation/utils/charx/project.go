// File: project.go
// Title: UTF-8 Projection of Character Ranges
// Description: Translates character positions into byte offsets of the
//              underlying UTF-8 buffer and materializes extraction, removal
//              and search results. Cut points are only ever taken at the
//              start of a rune, so results are never split inside a
//              multi-byte character.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-04
//
// Change History:
// - 2025-11-02 v0.1.0: Initial implementation of extract and remove
// - 2025-11-04 v0.1.1: Rune-wise naive search

package charx

import (
	"strings"
	"unicode/utf8"
)

// byteSpan is a closed-open span of byte offsets on rune boundaries.
type byteSpan struct {
	lo int
	hi int
}

// spanOf walks the runes of s and returns the byte offsets of r.Start and
// r.End. Offsets past the last rune map to len(s).
func spanOf(s string, r Range) byteSpan {
	if r.IsEmpty() {
		return byteSpan{}
	}

	span := byteSpan{lo: len(s), hi: len(s)}
	n := 0
	for i := range s {
		if n == r.Start {
			span.lo = i
		}
		if n == r.End {
			span.hi = i
			break
		}
		n++
	}
	return span
}

// extract returns a fresh copy of the characters covered by r.
func extract(s string, r Range) string {
	if r.IsEmpty() {
		return ""
	}
	span := spanOf(s, r)
	if span.lo >= span.hi {
		return ""
	}
	return strings.Clone(s[span.lo:span.hi])
}

// excise returns s without the characters [start, start+length).
// s is returned unchanged when length is zero or start is never reached.
// Running out of characters before start+length removes to the end.
func excise(s string, start, length uint) string {
	if length == 0 {
		return s
	}

	span := byteSpan{lo: -1, hi: len(s)}
	var pos uint
	for i := range s {
		if pos == start {
			span.lo = i
		} else if span.lo >= 0 && pos-start == length {
			span.hi = i
			break
		}
		pos++
	}
	if span.lo < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) - (span.hi - span.lo))
	b.WriteString(s[:span.lo])
	b.WriteString(s[span.hi:])
	return b.String()
}

// search returns the character index of the first occurrence of pattern in
// s at or after character index from, or NotFound.
// An empty pattern never matches.
func search(s, pattern string, from uint) int {
	if pattern == "" {
		return NotFound
	}
	first, size := utf8.DecodeRuneInString(pattern)
	rest := pattern[size:]

	var pos uint
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		i += w
		if pos >= from && r == first && hasRunePrefix(s[i:], rest) {
			return int(pos)
		}
		pos++
	}
	return NotFound
}

// hasRunePrefix reports whether s starts with the runes of prefix.
// A prefix longer than s never matches.
func hasRunePrefix(s, prefix string) bool {
	for prefix != "" {
		if s == "" {
			return false
		}
		want, pw := utf8.DecodeRuneInString(prefix)
		got, sw := utf8.DecodeRuneInString(s)
		if want != got {
			return false
		}
		prefix = prefix[pw:]
		s = s[sw:]
	}
	return true
}
