// Package error provides the structured error type used by charx tooling.
//
// Package: error
// Title: charx Error Handling
// Description: Errors carry a code, a severity, free-form details and the
// operation that failed, and keep a short stack trace. The
// charx engine itself never fails; these errors are produced
// by argument parsing, configuration and script loading.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-06
//
// Change History:
// - 2025-11-06 v0.1.0: Initial implementation with codes and severities
//
// Usage:
//
//	err := error.New("start offset is not a number").
//		WithCode(error.CodeInvalidInput).
//		WithOperation("cli.substr").
//		WithDetail("input", "abc")
//
//	if error.HasCode(err, error.CodeInvalidInput) {
//		// usage error, print help
//	}
package error
