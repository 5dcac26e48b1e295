// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-06

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	charxerror "github.com/msto63/charx/foundation/core/error"
)

func testEntry() *Entry {
	e := NewEntry(LevelInfo, "resolved")
	e.Timestamp = time.Date(2025, 11, 6, 10, 30, 0, 0, time.UTC)
	e.Logger = "charx"
	e.CorrelationID = "0f8fad5b-d9cb-469f-a165-70867728950e"
	e.Fields["start"] = 3
	e.Fields["end"] = 6
	return e
}

func TestJSONFormatter(t *testing.T) {
	e := testEntry()
	e.Error = charxerror.New("bad").WithCode(charxerror.CodeInvalidInput)
	e.Duration = 1500 * time.Microsecond

	data, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var got map[string]interface{}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON %s: %v", data, err)
	}
	checks := map[string]interface{}{
		"level":          "info",
		"message":        "resolved",
		"logger":         "charx",
		"correlation_id": "0f8fad5b-d9cb-469f-a165-70867728950e",
		"start":          float64(3),
		"error":          "bad",
		"duration_ms":    1.5,
		"timestamp":      "2025-11-06T10:30:00Z",
	}
	for k, want := range checks {
		if got[k] != want {
			t.Errorf("%s = %v, want %v", k, got[k], want)
		}
	}
	details, ok := got["error_details"].(map[string]interface{})
	if !ok || details["code"] != "INVALID_INPUT" {
		t.Errorf("error_details = %v", got["error_details"])
	}
}

func TestTextFormatter(t *testing.T) {
	e := testEntry()
	e.Error = errors.New("boom")

	data, _ := NewTextFormatter().Format(e)
	want := `10:30:00.000 [INF] {charx} resolved [end=6 start=3] error="boom" cid=0f8fad5b` + "\n"
	if string(data) != want {
		t.Errorf("Format() = %q, want %q", data, want)
	}

	f := NewTextFormatter()
	f.DisableTimestamp = true
	data, _ = f.Format(NewEntry(LevelWarn, "plain"))
	if string(data) != "[WRN] plain\n" {
		t.Errorf("Format() = %q", data)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableTimestamp = true

	data, _ := f.Format(NewEntry(LevelError, "x"))
	if string(data) != "\033[31m[ERR] x\033[0m\n" {
		t.Errorf("Format() = %q", data)
	}

	f.DisableColors = true
	data, _ = f.Format(NewEntry(LevelError, "x"))
	if string(data) != "[ERR] x\n" {
		t.Errorf("Format() = %q", data)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	e := testEntry()
	e.Fields["source"] = "é è"

	data, _ := NewLogfmtFormatter().Format(e)
	want := `timestamp=2025-11-06T10:30:00Z level=info message="resolved" logger=charx ` +
		`correlation_id=0f8fad5b-d9cb-469f-a165-70867728950e end=6 source="é è" start=3` + "\n"
	if string(data) != want {
		t.Errorf("Format() =\n%q\nwant\n%q", data, want)
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "text", "console", "logfmt"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error = %v", name, err)
		}
		if f.String() != name {
			t.Errorf("ParseFormat(%q).String() = %q", name, f.String())
		}
	}
}
