// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"github.com/MKhiriev/go-calculator/models"
	"github.com/rs/zerolog"
)

// LogRequest emits rec as a single structured record. The zerolog level is
// taken from rec.Level. Completion records are emitted even when the logger
// threshold is above info, so every request leaves exactly one record.
func (l *Logger) LogRequest(rec models.LogRecord) {
	zl := l.Logger
	if zl.GetLevel() > zerolog.InfoLevel {
		zl = zl.Level(zerolog.InfoLevel)
	}

	var event *zerolog.Event
	switch rec.Level {
	case models.LogLevelError:
		event = zl.Error()
	default:
		event = zl.Info()
	}

	event.
		CallerSkipFrame(1).
		Str("ip", rec.ClientAddress).
		Str("method", rec.Method).
		Str("path", rec.Path).
		Str("url", rec.URL).
		Fields(map[string]any{"query": rec.QueryMap()}).
		Int("status", rec.StatusCode).
		Float64("duration_ms", rec.DurationMilliseconds()).
		Msg(rec.Message)
}

// LogFault emits the record of a request that ended in an unhandled fault.
func (l *Logger) LogFault(message, stack, clientAddress, method, url string) {
	l.Error().
		CallerSkipFrame(1).
		Str("stack", stack).
		Str("ip", clientAddress).
		Str("method", method).
		Str("url", url).
		Msg(message)
}
