// File: methods.go
// Title: Method-Style Access
// Description: Exposes the charx operations as methods on a string type and
//              an owned byte-buffer type. Methods forward to the package
//              functions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Str and Bytes with the CharString interface

package charx

// CharString is implemented by types that support character-indexed
// operations.
type CharString interface {
	Len() int
	Substr(start, length int) string
	SubstrUnsigned(start, length uint) string
	SubstrToEnd(start int) string
	Substring(start, end int) string
	Remove(start, length uint) string
	IndexOf(pattern string, from uint) int
}

var (
	_ CharString = Str("")
	_ CharString = Bytes(nil)
)

// Str is a string with character-indexed methods.
type Str string

func (s Str) String() string                  { return string(s) }
func (s Str) Len() int                        { return Len(string(s)) }
func (s Str) Substr(start, length int) string { return Substr(string(s), start, length) }
func (s Str) SubstrUnsigned(start, length uint) string {
	return SubstrUnsigned(string(s), start, length)
}
func (s Str) SubstrToEnd(start int) string          { return SubstrToEnd(string(s), start) }
func (s Str) Substring(start, end int) string       { return Substring(string(s), start, end) }
func (s Str) Remove(start, length uint) string      { return Remove(string(s), start, length) }
func (s Str) IndexOf(pattern string, from uint) int { return IndexOf(string(s), pattern, from) }

// Bytes is an owned UTF-8 buffer with character-indexed methods.
// Results are always new strings; the buffer itself is never modified.
type Bytes []byte

func (b Bytes) String() string                  { return string(b) }
func (b Bytes) Len() int                        { return Len(string(b)) }
func (b Bytes) Substr(start, length int) string { return Substr(string(b), start, length) }
func (b Bytes) SubstrUnsigned(start, length uint) string {
	return SubstrUnsigned(string(b), start, length)
}
func (b Bytes) SubstrToEnd(start int) string          { return SubstrToEnd(string(b), start) }
func (b Bytes) Substring(start, end int) string       { return Substring(string(b), start, end) }
func (b Bytes) Remove(start, length uint) string      { return Remove(string(b), start, length) }
func (b Bytes) IndexOf(pattern string, from uint) int { return IndexOf(string(b), pattern, from) }
