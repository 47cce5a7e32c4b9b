// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/url"
	"time"
)

// LogLevel is the severity of a completed-request record.
type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelError LogLevel = "error"
)

// LogRecord describes one completed request. It is built once, when the
// response has been finalized, and handed straight to the logger.
type LogRecord struct {
	Level         LogLevel
	Message       string
	ClientAddress string
	Method        string
	Path          string
	URL           string
	Query         url.Values
	StatusCode    int
	Duration      time.Duration
}

// LevelForStatus returns error for status codes >= 400 and info otherwise.
func LevelForStatus(status int) LogLevel {
	if status >= 400 {
		return LogLevelError
	}
	return LogLevelInfo
}

// DurationMilliseconds returns Duration as fractional milliseconds.
func (r LogRecord) DurationMilliseconds() float64 {
	return float64(r.Duration) / float64(time.Millisecond)
}

// QueryMap flattens Query to a map suitable for structured logging:
// single-valued parameters become strings, repeated ones keep every value.
func (r LogRecord) QueryMap() map[string]any {
	out := make(map[string]any, len(r.Query))
	for k, v := range r.Query {
		if len(v) == 1 {
			out[k] = v[0]
			continue
		}
		out[k] = v
	}
	return out
}
