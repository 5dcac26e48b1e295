// File: doc.go
// Title: Package Documentation for charx
// Description: Package charx provides character-indexed string operations
//              that address substrings by Unicode scalar value instead of
//              byte offset.
// Author: msto63
// Version: v0.1.1
// Created: 2025-11-02
// Modified: 2025-11-04
//
// Change History:
// - 2025-11-02 v0.1.0: Initial implementation
// - 2025-11-04 v0.1.1: Documented index policy and method-style access

// Package charx provides substr, substring and indexOf style operations
// over Go strings, indexed by character (rune) instead of byte.
//
// # Overview
//
// Slicing a Go string with s[i:j] works on bytes and can cut a multi-byte
// UTF-8 sequence in half. The functions in this package take character
// positions, resolve them against the character length of the string and
// only ever cut at rune boundaries:
//
//	s := "Test 123 éèçà 123 test home"
//	charx.Substr(s, 9, 4)          // "éèçà"
//	charx.IndexOf(s, "test", 0)    // 18
//	charx.Remove(s, 14, 4)         // "Test 123 éèçà test home"
//
// # Index Policy
//
// Arguments are never rejected. Every combination of in-range, out-of-range
// and extreme values (math.MinInt, math.MaxInt, math.MaxUint) resolves to a
// defined result:
//
//   - Substr(s, start, length): negative start counts from the end,
//     negative length counts backwards from start. A start outside
//     [-Len(s), Len(s)) gives "".
//   - Substring(s, start, end): end is exclusive, bounds are swapped when
//     reversed and clamped into [0, Len(s)].
//   - SubstrUnsigned(s, start, length): plain skip/take.
//   - SubstrToEnd(s, start): from start (negative counts from the end) to
//     the end of the string.
//   - Remove(s, start, length): unchanged when length is 0 or start is past
//     the end; removes to the end when length runs over.
//   - IndexOf(s, pattern, from): NotFound for an empty pattern, a from past
//     the end, or no match.
//
// The Resolve* functions expose the range arithmetic on its own, which is
// useful to explain what a call will select:
//
//	charx.ResolveLength(10, 5, -3) // [3, 6)
//
// # Method-Style Access
//
// Str and Bytes implement CharString and forward to the package functions:
//
//	charx.Str("0123456789").Substr(-2, 2)     // "89"
//	charx.Bytes(buf).IndexOf("234", 0)        // 2
//
// # Performance Considerations
//
// Character positions are found by a linear walk over the string on every
// call; nothing is cached. IndexOf is a naive scan, O(n*m) for a source of
// n and a pattern of m characters, meant for short patterns.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. Results are fresh
// strings that do not share memory with the input.
//
// # Non-Goals
//
// Characters are Unicode scalar values. Grapheme clusters, locale-aware
// comparison and regular expressions are out of scope.
package charx
