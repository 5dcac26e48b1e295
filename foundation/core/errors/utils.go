// File: utils.go
// Title: Shared Error Handling Utilities
// Description: ErrorBuilder and the standard constructors used across the
//              charx tooling, plus helpers to read module and operation
//              back out of an error.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-06
//
// Change History:
// - 2025-11-06 v0.1.0: Initial implementation

package errors

import (
	"errors"
	"fmt"

	charxerror "github.com/msto63/charx/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  *charxerror.Severity
	code      charxerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity charxerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code charxerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *charxerror.Error {
	if eb.code == "" {
		eb.code = codeForOperation(eb.operation)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *charxerror.Error
	if eb.cause != nil {
		err = charxerror.Wrap(eb.cause, eb.message)
	} else {
		err = charxerror.New(eb.message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}
	return err
}

// InvalidInput reports an argument that could not be used
func InvalidInput(module, operation string, input interface{}, expected string) *charxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(charxerror.CodeInvalidInput).
		Messagef("invalid input for %s: expected %s", operation, expected).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat reports text that does not parse as the expected format
func InvalidFormat(module, operation string, input interface{}, format string) *charxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(charxerror.CodeInvalidFormat).
		Messagef("invalid format for %s: expected %s", operation, format).
		Detail("input", input).
		Detail("expected_format", format).
		Build()
}

// OutOfRange reports a value outside of [min, max]
func OutOfRange(module, operation string, value, min, max interface{}) *charxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(charxerror.CodeValueOutOfRange).
		Messagef("value %v out of range [%v, %v]", value, min, max).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotFound reports a missing resource such as a config or script file
func NotFound(module, operation, resource string) *charxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(charxerror.CodeNotFound).
		Messagef("%s not found", resource).
		Detail("resource", resource).
		Build()
}

// OperationFailed wraps cause as the failure of module.operation
func OperationFailed(module, operation string, cause error) *charxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Build()
}

// Mismatch reports a script case whose result differs from its expectation
func Mismatch(module, operation string, index int, got, want interface{}) *charxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(charxerror.CodeScriptMismatch).
		Messagef("case %d: got %v, want %v", index, got, want).
		Detail("case", index).
		Detail("got", got).
		Detail("want", want).
		Build()
}

// ExtractModule returns the module detail of the first *error.Error in the chain
func ExtractModule(err error) string {
	return detailString(err, "module")
}

// ExtractOperation returns the operation detail of the first *error.Error in the chain
func ExtractOperation(err error) string {
	return detailString(err, "operation")
}

func detailString(err error, key string) string {
	var e *charxerror.Error
	if !errors.As(err, &e) {
		return ""
	}
	if v, ok := e.Detail(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
