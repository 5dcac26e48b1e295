// Package log provides structured logging for the charx tools.
//
// Package: log
// Title: charx Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
// logfmt output. Loggers are immutable: every With* call
// returns a new logger. Entries carry the correlation ID of
// the invocation so one command run can be followed through
// its log lines.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-06
//
// Change History:
// - 2025-11-06 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatConsole).
//		WithOutput(os.Stderr).
//		WithCorrelationID(uuid.New().String())
//
//	logger.Debug("resolved range", log.Fields{"start": 3, "end": 6})
//
//	timer := logger.StartTimer("script.run")
//	defer timer.Stop()
package log
