// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// sink construction, request-record emission and context-aware helpers used
// throughout the calculator service.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// A Logger is built once in main and passed down explicitly; request-scoped
// loggers are obtained via FromContext or FromRequest.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	closers []io.Closer
}

// NewLogger constructs a *Logger for the given role label (e.g. "server",
// "client") writing to the sinks described by cfg:
//   - the console (stdout), human readable unless cfg.ConsoleJSON is set;
//   - cfg.ErrorFile, which receives error-level records and above;
//   - cfg.CombinedFile, which receives every record.
//
// File sinks are JSON lines. A file that cannot be opened is skipped and the
// failure is reported through the returned logger itself, so the service
// still starts with console logging.
//
// Every record carries "service", "role", a timestamp and a "func" caller
// field with the fully-qualified function name.
func NewLogger(role string, service string, cfg config.Logging) *Logger {
	return newLogger(os.Stdout, role, service, cfg)
}

// NewClientLogger is NewLogger with the console sink on stderr, leaving
// stdout to command output.
func NewClientLogger(role string, service string, cfg config.Logging) *Logger {
	return newLogger(os.Stderr, role, service, cfg)
}

func newLogger(out io.Writer, role string, service string, cfg config.Logging) *Logger {
	var console io.Writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	if cfg.ConsoleJSON {
		console = out
	}

	writers := []io.Writer{console}
	var closers []io.Closer
	var openErrs []error

	if cfg.ErrorFile != "" {
		f, err := openLogFile(cfg.ErrorFile)
		if err != nil {
			openErrs = append(openErrs, err)
		} else {
			closers = append(closers, f)
			writers = append(writers, ErrorOnly(zerolog.SyncWriter(f)))
		}
	}

	if cfg.CombinedFile != "" {
		f, err := openLogFile(cfg.CombinedFile)
		if err != nil {
			openErrs = append(openErrs, err)
		} else {
			closers = append(closers, f)
			writers = append(writers, zerolog.SyncWriter(f))
		}
	}

	l := New(role, service, parseLevel(cfg.Level), writers...)
	l.closers = closers

	for _, err := range openErrs {
		l.Warn().Err(err).Msg("log file sink disabled")
	}

	return l
}

// New builds a *Logger over arbitrary writers. Writers that implement
// zerolog.LevelWriter (see ErrorOnly) receive the level of each record and
// may drop it.
func New(role string, service string, level zerolog.Level, writers ...io.Writer) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Str("service", service).
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger}
}

// ErrorOnly wraps w so that it only receives records at error level or above.
func ErrorOnly(w io.Writer) zerolog.LevelWriter {
	return &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{Writer: w},
		Level:  zerolog.ErrorLevel,
	}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Close releases the file sinks opened by NewLogger.
func (l *Logger) Close() error {
	var errs []error
	for _, c := range l.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	l.closers = nil

	return errors.Join(errs...)
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its disabled
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

// FromContextOr is FromContext with a fallback used when ctx carries no
// enabled logger.
func FromContextOr(ctx context.Context, fallback *Logger) *Logger {
	l := log.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return fallback
	}
	return &Logger{Logger: *l}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("error creating log directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error opening log file %s: %w", path, err)
	}

	return f, nil
}

func parseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return l
}
