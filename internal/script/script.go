// ============================================================================
// charx - character-indexed string tools
// ============================================================================
//
// Package:     script
// Description: Declarative operation scripts in YAML or TOML
// Author:      msto63
// Created:     2025-11-07
// License:     MIT
// ============================================================================

// Package script loads files of charx operation cases and checks their
// results. A script names a default source and a list of cases:
//
//	name: reference
//	source: "0123456789"
//	cases:
//	  - op: substr
//	    start: 5
//	    length: -3
//	    want: "345"
package script

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	charxerror "github.com/msto63/charx/foundation/core/error"
	charxerrors "github.com/msto63/charx/foundation/core/errors"
)

// Operation names
const (
	OpSubstr    = "substr"
	OpSubstrU   = "substru"
	OpSubstrEnd = "substr_end"
	OpSubstring = "substring"
	OpRemove    = "remove"
	OpIndexOf   = "indexof"
	OpConcat    = "concat"
	OpLen       = "len"
)

// Ops lists every supported operation
var Ops = []string{OpSubstr, OpSubstrU, OpSubstrEnd, OpSubstring, OpRemove, OpIndexOf, OpConcat, OpLen}

// Format of a script file
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// Script is a named list of cases
type Script struct {
	Name   string `yaml:"name" toml:"name"`
	Source string `yaml:"source" toml:"source"`
	Cases  []Case `yaml:"cases" toml:"cases"`

	// File is set by Load
	File string `yaml:"-" toml:"-"`
}

// Case is one operation with its arguments and optional expectation
type Case struct {
	Name      string   `yaml:"name,omitempty" toml:"name"`
	Op        string   `yaml:"op" toml:"op"`
	Source    *string  `yaml:"source,omitempty" toml:"source"`
	Start     Number   `yaml:"start,omitempty" toml:"start"`
	Length    Number   `yaml:"length,omitempty" toml:"length"`
	End       Number   `yaml:"end,omitempty" toml:"end"`
	From      Number   `yaml:"from,omitempty" toml:"from"`
	Pattern   string   `yaml:"pattern,omitempty" toml:"pattern"`
	Parts     []string `yaml:"parts,omitempty" toml:"parts"`
	Want      *string  `yaml:"want,omitempty" toml:"want"`
	WantIndex *int     `yaml:"want_index,omitempty" toml:"want_index"`
}

// Label returns the case name, or its op when unnamed
func (c Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Op
}

// Load reads a script file; .toml files are TOML, everything else YAML
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, charxerrors.NotFound(charxerrors.ModuleScript, "load", path)
		}
		return nil, charxerrors.OperationFailed(charxerrors.ModuleScript, "read", err).WithDetail("file", path)
	}

	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = FormatTOML
	}

	s, err := Parse(data, format)
	if err != nil {
		if e, ok := err.(*charxerror.Error); ok {
			return nil, e.WithDetail("file", path)
		}
		return nil, err
	}
	s.File = path
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes a script and validates its operations
func Parse(data []byte, format Format) (*Script, error) {
	var s Script

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, charxerrors.NewErrorBuilder(charxerrors.ModuleScript).
				Operation("decode").Cause(err).Message("invalid TOML script").Build()
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, charxerrors.InvalidFormat(charxerrors.ModuleScript, "decode", undecoded[0].String(), "known script field")
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, charxerrors.NewErrorBuilder(charxerrors.ModuleScript).
				Operation("decode").Cause(err).Message("invalid YAML script").Build()
		}
	}

	for i, c := range s.Cases {
		if !knownOp(c.Op) {
			return nil, charxerrors.InvalidInput(charxerrors.ModuleScript, "validate", c.Op, "one of "+strings.Join(Ops, ", ")).
				WithDetail("case", i)
		}
	}
	return &s, nil
}

// Marshal encodes the script as YAML
func (s *Script) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, charxerrors.OperationFailed(charxerrors.ModuleScript, "encode", err)
	}
	if err := enc.Close(); err != nil {
		return nil, charxerrors.OperationFailed(charxerrors.ModuleScript, "encode", err)
	}
	return buf.Bytes(), nil
}

func knownOp(op string) bool {
	for _, known := range Ops {
		if op == known {
			return true
		}
	}
	return false
}
