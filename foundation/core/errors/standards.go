// File: standards.go
// Title: Error Standards for charx Tooling
// Description: Module identifiers and the code lookup shared by the
//              constructors in utils.go.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-06
//
// Change History:
// - 2025-11-06 v0.1.0: Initial implementation

// Package errors builds *error.Error values with a consistent shape for
// the charx command line, configuration and script runner. Every error
// carries "module" and "operation" details so callers and log output can
// tell where it came from.
package errors

import (
	"strings"

	charxerror "github.com/msto63/charx/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleCLI        = "cli"
	ModuleConfig     = "config"
	ModuleScript     = "script"
	ModulePlayground = "playground"
)

// codeForOperation picks a code when the builder was not given one.
func codeForOperation(operation string) charxerror.Code {
	switch {
	case strings.Contains(operation, "parse"), strings.Contains(operation, "decode"):
		return charxerror.CodeInvalidFormat
	case strings.Contains(operation, "load"), strings.Contains(operation, "read"):
		return charxerror.CodeConfigError
	case strings.Contains(operation, "validate"):
		return charxerror.CodeInvalidConfig
	case strings.Contains(operation, "check"):
		return charxerror.CodeScriptMismatch
	default:
		return charxerror.CodeInternal
	}
}
