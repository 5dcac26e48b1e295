// File: resolve.go
// Title: Character Range Resolution
// Description: Converts signed or unsigned, possibly negative or out-of-range
//              character offsets into a clamped, well-ordered half-open range
//              of character indices. All boundary policy of the package lives
//              here so every operation behaves the same at the edges.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02
//
// Change History:
// - 2025-11-02 v0.1.0: Initial implementation of the range resolver

package charx

import "fmt"

// Range is a half-open [Start, End) range of character indices.
// A resolved Range always satisfies 0 <= Start <= End <= total length.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns the number of characters covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range covers no characters.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// String returns the range in interval notation, e.g. "[2, 5)".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// ResolveLength resolves a (start, length) descriptor against a string of
// total characters.
//
// A negative start counts from the end of the string. A positive length
// extends forward from start, a negative length covers the |length|
// characters ending at start. The result is empty when total or length is
// zero or start lies outside [-total, total).
func ResolveLength(total, start, length int) Range {
	if total <= 0 || length == 0 || start < -total || start >= total {
		return Range{}
	}

	// Clamp before any addition: length may be math.MinInt or math.MaxInt.
	length = clamp(length, -total, total)

	if start < 0 {
		start += total
	}

	// last is inclusive
	var last int
	if length > 0 {
		if length > total-1-start {
			last = total - 1
		} else {
			last = start + length - 1
		}
	} else {
		if -length-1 > start {
			last = 0
		} else {
			last = start + length + 1
		}
	}

	if start > last {
		return Range{Start: last, End: start + 1}
	}
	return Range{Start: start, End: last + 1}
}

// ResolveBounds resolves a (start, end) descriptor with an exclusive end.
// Equal bounds give an empty range, reversed bounds are swapped and each
// bound is clamped into [0, total].
func ResolveBounds(total, start, end int) Range {
	if start == end || total <= 0 {
		return Range{}
	}
	if start > end {
		start, end = end, start
	}
	return Range{
		Start: clamp(start, 0, total),
		End:   clamp(end, 0, total),
	}
}

// ResolveUnsigned resolves an unsigned (start, length) descriptor. Skipping
// past the end gives an empty range, taking more than is left gives
// everything remaining.
func ResolveUnsigned(total int, start, length uint) Range {
	if total <= 0 || start >= uint(total) {
		return Range{}
	}

	begin := int(start)
	remaining := total - begin
	if length >= uint(remaining) {
		return Range{Start: begin, End: total}
	}
	return Range{Start: begin, End: begin + int(length)}
}

// ResolveToEnd resolves a start offset whose range runs to the end of the
// string. A negative start counts from the end; a start outside
// [-total, total] gives an empty range.
func ResolveToEnd(total, start int) Range {
	if total <= 0 || start < -total || start > total {
		return Range{}
	}
	if start < 0 {
		start += total
	}
	return Range{Start: start, End: total}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
