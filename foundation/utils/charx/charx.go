// File: charx.go
// Title: Character-Indexed String Operations
// Description: Public operations addressing substrings by Unicode character
//              position instead of byte offset: Substr, SubstrUnsigned,
//              SubstrToEnd, Substring, Remove and IndexOf. Every operation
//              is total: out-of-range, negative and extreme arguments give
//              a defined result, never a panic.
// Author: msto63
// Version: v0.1.1
// Created: 2025-11-02
// Modified: 2025-11-04
//
// Change History:
// - 2025-11-02 v0.1.0: Initial implementation with substr, substring, remove
// - 2025-11-04 v0.1.1: IndexOf, SubstrUnsigned and SubstrToEnd

package charx

import "unicode/utf8"

// NotFound is returned by IndexOf when the pattern does not occur.
const NotFound = -1

// Len returns the number of characters (runes) in s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Substr returns length characters of s beginning at character index start.
//
// Negative numbers count backwards: a negative start from the end of the
// string, a negative length from start. A start outside the string gives
// an empty string, a length past either end is clamped.
//
//	Substr("0123456789", 2, 3)            // "234"
//	Substr("0123456789", -5, 3)           // "567"
//	Substr("0123456789", 5, -3)           // "345"
//	Substr("0123456789", 2, math.MaxInt)  // "23456789"
func Substr(s string, start, length int) string {
	return extract(s, ResolveLength(Len(s), start, length))
}

// SubstrUnsigned returns up to length characters of s beginning at
// character index start.
func SubstrUnsigned(s string, start, length uint) string {
	return extract(s, ResolveUnsigned(Len(s), start, length))
}

// SubstrToEnd returns the characters of s from character index start to the
// end of the string. A negative start counts from the end. A start outside
// [-Len(s), Len(s)] gives an empty string.
func SubstrToEnd(s string, start int) string {
	return extract(s, ResolveToEnd(Len(s), start))
}

// Substring returns the characters of s from index start up to but not
// including index end, like JavaScript's String.prototype.substring.
// Reversed bounds are swapped and bounds outside the string are clamped.
func Substring(s string, start, end int) string {
	if start == end {
		return ""
	}
	return extract(s, ResolveBounds(Len(s), start, end))
}

// Remove returns s without the length characters beginning at character
// index start. If fewer characters remain, everything from start is
// removed. s is returned unchanged when length is zero or start lies at or
// past the end of the string.
func Remove(s string, start, length uint) string {
	return excise(s, start, length)
}

// IndexOf returns the character index of the first occurrence of pattern
// in s, searching from character index from. It returns NotFound if the
// pattern is empty, from is past the last character or there is no match.
func IndexOf(s, pattern string, from uint) int {
	return search(s, pattern, from)
}
