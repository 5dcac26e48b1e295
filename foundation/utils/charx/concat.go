// File: concat.go
// Title: Preallocated Concatenation
// Description: Concatenates any number of strings with a single allocation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial implementation

package charx

import "strings"

// Concat joins parts in order. The total byte length is computed first so
// the result is built with one allocation.
func Concat(parts ...string) string {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	if n == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(n)
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}
