// ============================================================================
// charx - character-indexed string tools
// ============================================================================
//
// Package:     script
// Description: Numeric arguments with symbolic extremes
// Author:      msto63
// Created:     2025-11-07
// License:     MIT
// ============================================================================

package script

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	charxerrors "github.com/msto63/charx/foundation/core/errors"
)

// Symbolic extremes accepted wherever a number is expected
const (
	SymbolMin = "min"
	SymbolMax = "max"
)

// ParseSigned parses a decimal int or "min"/"max" (math.MinInt/math.MaxInt)
func ParseSigned(s string) (int, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case SymbolMin:
		return math.MinInt, nil
	case SymbolMax:
		return math.MaxInt, nil
	default:
		n, err := strconv.ParseInt(v, 10, strconv.IntSize)
		if err != nil {
			return 0, numberError(s, err, "integer, min or max")
		}
		return int(n), nil
	}
}

// ParseUnsigned parses a decimal uint or "min"/"max" (0/math.MaxUint)
func ParseUnsigned(s string) (uint, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case SymbolMin:
		return 0, nil
	case SymbolMax:
		return math.MaxUint, nil
	default:
		n, err := strconv.ParseUint(v, 10, strconv.IntSize)
		if err != nil {
			return 0, numberError(s, err, "non-negative integer, min or max")
		}
		return uint(n), nil
	}
}

func numberError(input string, err error, expected string) error {
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return charxerrors.OutOfRange(charxerrors.ModuleScript, "parse_number", input, "min", "max")
	}
	return charxerrors.InvalidInput(charxerrors.ModuleScript, "parse_number", input, expected)
}

// Number is a numeric script field kept in its textual form until the
// operation decides whether it is signed or unsigned.
type Number struct {
	raw string
	set bool
}

// N returns a Number holding s
func N(s string) Number {
	return Number{raw: s, set: true}
}

// IsSet reports whether the field was present
func (n Number) IsSet() bool { return n.set }

// IsZero lets yaml omitempty drop unset fields
func (n Number) IsZero() bool { return !n.set }

// String returns the textual form
func (n Number) String() string { return n.raw }

// Signed resolves the number as int
func (n Number) Signed() (int, error) { return ParseSigned(n.raw) }

// Unsigned resolves the number as uint
func (n Number) Unsigned() (uint, error) { return ParseUnsigned(n.raw) }

// UnmarshalYAML accepts integer and string scalars
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: number must be a scalar", node.Line)
	}
	*n = N(node.Value)
	return nil
}

// MarshalYAML writes the textual form back
func (n Number) MarshalYAML() (interface{}, error) {
	if !n.set {
		return nil, nil
	}
	if i, err := strconv.ParseInt(n.raw, 10, 64); err == nil {
		return i, nil
	}
	return n.raw, nil
}

// UnmarshalTOML accepts TOML integers and strings
func (n *Number) UnmarshalTOML(v interface{}) error {
	switch x := v.(type) {
	case int64:
		*n = N(strconv.FormatInt(x, 10))
	case string:
		*n = N(x)
	default:
		return fmt.Errorf("number must be an integer or string, got %T", v)
	}
	return nil
}

var (
	_ yaml.Unmarshaler = (*Number)(nil)
	_ yaml.Marshaler   = Number{}
	_ toml.Unmarshaler = (*Number)(nil)
)
