// File: error_test.go
// Title: Tests for Core Error Implementation
// Description: Tests for Error creation, wrapping, codes and severities.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-06
//
// Change History:
// - 2025-11-06 v0.1.0: Initial test implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("start is not a number")

	if err.Error() != "start is not a number" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should be set")
	}
	if len(err.StackTrace()) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller", err.StackTrace()[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("case %d: unknown op %q", 3, "trim")
	if err.Error() != `case 3: unknown op "trim"` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidInput, SeverityLow},
		{CodeValueOutOfRange, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeScriptMismatch, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}

	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if err.Severity() != SeverityCritical {
		t.Errorf("explicit severity was overwritten: %v", err.Severity())
	}
}

func TestDetails(t *testing.T) {
	err := New("bad number").
		WithCode(CodeInvalidFormat).
		WithOperation("script.parse").
		WithDetail("case", 2).
		WithDetails(map[string]interface{}{"field": "start", "value": "abc"})

	if err.Operation() != "script.parse" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	if v, ok := err.Detail("case"); !ok || v != 2 {
		t.Errorf("Detail(case) = %v, %v", v, ok)
	}
	details := err.Details()
	if len(details) != 3 {
		t.Errorf("len(Details()) = %d, want 3", len(details))
	}
	details["case"] = 99
	if v, _ := err.Detail("case"); v != 2 {
		t.Error("Details() must return a copy")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Fatal("Wrap(nil) should return nil")
	}

	base := errors.New("open charx.toml: permission denied")
	err := Wrap(base, "failed to load config")
	if err.Error() != "failed to load config: open charx.toml: permission denied" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("errors.Is should find the cause")
	}
	if err.RootCause() != base {
		t.Errorf("RootCause() = %v", err.RootCause())
	}
}

func TestWrapPreservesInner(t *testing.T) {
	inner := New("bad level").
		WithCode(CodeInvalidConfig).
		WithOperation("config.validate").
		WithTraceID("abc").
		WithDetail("key", "log.level")

	outer := Wrap(inner, "startup failed")
	if outer.Code() != CodeInvalidConfig {
		t.Errorf("Code() = %v", outer.Code())
	}
	if outer.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v", outer.Severity())
	}
	if outer.Operation() != "config.validate" || outer.TraceID() != "abc" {
		t.Errorf("Operation/TraceID not preserved: %q %q", outer.Operation(), outer.TraceID())
	}
	if v, ok := outer.Detail("key"); !ok || v != "log.level" {
		t.Errorf("Detail(key) = %v", v)
	}

	var target *Error
	if !errors.As(fmt.Errorf("cli: %w", outer), &target) {
		t.Error("errors.As should find *Error through fmt.Errorf")
	}
}

func TestWrapChainTruncated(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	if d := chainDepth(err); d > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want at most %d", d, MaxErrorChainDepth+1)
	}
	if !strings.Contains(err.Error(), "chain truncated") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestHasCodeAndGetters(t *testing.T) {
	err := fmt.Errorf("context: %w", Wrap(New("no such case").WithCode(CodeNotFound), "lookup"))

	if !HasCode(err, CodeNotFound) {
		t.Error("HasCode(NOT_FOUND) = false")
	}
	if HasCode(err, CodeInternal) {
		t.Error("HasCode(INTERNAL) = true")
	}
	if GetCode(err) != CodeNotFound {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if GetSeverity(err) != SeverityLow {
		t.Errorf("GetSeverity() = %v", GetSeverity(err))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("plain errors have CodeUnknown")
	}
	if HasCode(nil, CodeUnknown) {
		t.Error("HasCode(nil) = true")
	}
}

func TestString(t *testing.T) {
	err := New("bad").WithCode(CodeInvalidInput).WithOperation("cli.substr").
		WithDetail("b", 2).WithDetail("a", 1)
	s := err.String()

	for _, want := range []string{"Error: bad", "Code: INVALID_INPUT", "Severity: low", "Operation: cli.substr", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("eof"), "read script").WithCode(CodeInvalidFormat).WithDetail("file", "cases.yaml")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("Marshal() error = %v", mErr)
	}
	var got map[string]interface{}
	if uErr := json.Unmarshal(data, &got); uErr != nil {
		t.Fatalf("Unmarshal() error = %v", uErr)
	}
	if got["code"] != "INVALID_FORMAT" || got["severity"] != "low" || got["cause"] != "eof" {
		t.Errorf("unexpected JSON: %s", data)
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		code     Code
		valid    bool
		category string
		exit     int
	}{
		{CodeInvalidInput, true, "input", 2},
		{CodeValueOutOfRange, true, "input", 2},
		{CodeInvalidConfig, true, "configuration", 2},
		{CodeScriptMismatch, true, "script", 1},
		{CodeInternal, true, "generic", 3},
		{Code("BOGUS"), false, "generic", 3},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v", got)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q", got)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d", got)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	names := map[Severity]string{
		SeverityLow:      "low",
		SeverityMedium:   "medium",
		SeverityHigh:     "high",
		SeverityCritical: "critical",
		Severity(42):     "unknown",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
