// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by charx tooling for
//              classification, exit codes and structured output.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-06
//
// Change History:
// - 2025-11-06 v0.1.0: Initial implementation

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Input
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Scripts
	CodeScriptMismatch Code = "SCRIPT_MISMATCH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange,
		CodeConfigError, CodeInvalidConfig,
		CodeScriptMismatch:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange:
		return "input"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeScriptMismatch:
		return "script"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status for errors with this code.
// Usage errors exit with 2, failed script expectations with 1.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "input", "configuration":
		return 2
	case "script":
		return 1
	default:
		return 3
	}
}
