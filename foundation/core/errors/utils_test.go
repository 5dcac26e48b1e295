// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder and the standard constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-06

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	charxerror "github.com/msto63/charx/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder(ModuleScript).
			Operation("run").
			Message("case failed").
			Detail("key", "value").
			Severity(charxerror.SeverityHigh).
			Build()

		details := err.Details()
		if details["module"] != ModuleScript {
			t.Errorf("Expected module %q, got %v", ModuleScript, details["module"])
		}
		if details["operation"] != "run" {
			t.Errorf("Expected operation 'run', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != charxerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
		if err.Operation() != "script.run" {
			t.Errorf("Expected operation 'script.run', got %q", err.Operation())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder(ModuleConfig).Operation("load").Cause(cause).Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
		if err.Code() != charxerror.CodeConfigError {
			t.Errorf("Expected CONFIG_ERROR, got %v", err.Code())
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder(ModuleCLI).Operation("render").Build()

		if err.Error() != "cli.render failed" {
			t.Errorf("Expected 'cli.render failed', got %q", err.Error())
		}
		if err.Code() != charxerror.CodeInternal {
			t.Errorf("Expected INTERNAL, got %v", err.Code())
		}
	})

	t.Run("module only", func(t *testing.T) {
		err := NewErrorBuilder(ModulePlayground).Build()
		if err.Error() != "playground operation failed" {
			t.Errorf("got %q", err.Error())
		}
	})
}

func TestCodeForOperation(t *testing.T) {
	tests := map[string]charxerror.Code{
		"parse_number": charxerror.CodeInvalidFormat,
		"decode":       charxerror.CodeInvalidFormat,
		"load":         charxerror.CodeConfigError,
		"read_file":    charxerror.CodeConfigError,
		"validate":     charxerror.CodeInvalidConfig,
		"check":        charxerror.CodeScriptMismatch,
		"render":       charxerror.CodeInternal,
	}
	for op, want := range tests {
		if got := codeForOperation(op); got != want {
			t.Errorf("codeForOperation(%q) = %v, want %v", op, got, want)
		}
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *charxerror.Error
		code     charxerror.Code
		contains string
	}{
		{"invalid input", InvalidInput(ModuleCLI, "substr", "abc", "integer"), charxerror.CodeInvalidInput, "expected integer"},
		{"invalid format", InvalidFormat(ModuleConfig, "parse", "x=", "toml"), charxerror.CodeInvalidFormat, "expected toml"},
		{"out of range", OutOfRange(ModuleCLI, "substr", "1e99", "MinInt", "MaxInt"), charxerror.CodeValueOutOfRange, "out of range"},
		{"not found", NotFound(ModuleScript, "open", "cases.yaml"), charxerror.CodeNotFound, "cases.yaml not found"},
		{"mismatch", Mismatch(ModuleScript, "check", 4, "ab", "abc"), charxerror.CodeScriptMismatch, "case 4: got ab, want abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, want it to contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}

func TestOperationFailed(t *testing.T) {
	cause := errors.New("disk full")
	err := OperationFailed(ModuleCLI, "write_output", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected error to wrap the cause")
	}
	if err.Error() != "cli.write_output failed: disk full" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestExtract(t *testing.T) {
	err := fmt.Errorf("outer: %w", InvalidInput(ModuleCLI, "substring", "x", "integer"))

	if got := ExtractModule(err); got != ModuleCLI {
		t.Errorf("ExtractModule() = %q", got)
	}
	if got := ExtractOperation(err); got != "substring" {
		t.Errorf("ExtractOperation() = %q", got)
	}
	if got := ExtractModule(errors.New("plain")); got != "" {
		t.Errorf("ExtractModule(plain) = %q", got)
	}
	if got := ExtractOperation(nil); got != "" {
		t.Errorf("ExtractOperation(nil) = %q", got)
	}
}
