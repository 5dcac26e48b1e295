// File: settings.go
// Title: charx Settings
// Description: Typed, validated view of the keys the charx command reads.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-06
//
// Change History:
// - 2025-11-06 v0.1.0: Initial implementation

package config

import (
	"strings"

	charxerror "github.com/msto63/charx/foundation/core/error"
	charxlog "github.com/msto63/charx/foundation/core/log"
)

// Configuration keys
const (
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyOutputFormat = "output.format"
	KeyOutputQuote  = "output.quote"
)

// Output formats of command results
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Settings holds the validated values of all known keys
type Settings struct {
	LogLevel     charxlog.Level
	LogFormat    charxlog.Format
	OutputFormat string
	Quote        bool
}

// DefaultSettings returns the values used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		LogLevel:     charxlog.LevelWarn,
		LogFormat:    charxlog.FormatConsole,
		OutputFormat: OutputText,
	}
}

// ReadSettings reads and validates the known keys. All invalid keys are
// reported together in one INVALID_CONFIG error.
func ReadSettings(c *Config) (Settings, error) {
	s := DefaultSettings()
	var problems []string

	if c.Has(KeyLogLevel) {
		level, err := charxlog.ParseLevel(c.GetString(KeyLogLevel))
		if err != nil {
			problems = append(problems, KeyLogLevel+": "+err.Error())
		} else {
			s.LogLevel = level
		}
	}

	if c.Has(KeyLogFormat) {
		format, err := charxlog.ParseFormat(c.GetString(KeyLogFormat))
		if err != nil {
			problems = append(problems, KeyLogFormat+": "+err.Error())
		} else {
			s.LogFormat = format
		}
	}

	if c.Has(KeyOutputFormat) {
		out := strings.ToLower(strings.TrimSpace(c.GetString(KeyOutputFormat)))
		if !ValidOutputFormat(out) {
			problems = append(problems, KeyOutputFormat+": invalid output format: "+out)
		} else {
			s.OutputFormat = out
		}
	}

	s.Quote = c.GetBool(KeyOutputQuote, false)

	if len(problems) > 0 {
		return DefaultSettings(), charxerror.New("invalid configuration: "+strings.Join(problems, "; ")).
			WithCode(charxerror.CodeInvalidConfig).
			WithOperation("config.ReadSettings").
			WithDetail("file", c.FilePath()).
			WithDetail("problems", problems)
	}
	return s, nil
}

// ValidOutputFormat reports whether name is text, json or yaml
func ValidOutputFormat(name string) bool {
	switch name {
	case OutputText, OutputJSON, OutputYAML:
		return true
	}
	return false
}
