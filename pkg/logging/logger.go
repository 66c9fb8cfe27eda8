// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for ShopGrid components.
//
// Built on log/slog. The default writes human-readable text to stderr,
// following Unix CLI conventions; the server sets its own JSON slog
// default and does not go through this package.
//
//	logger := logging.New(logging.Config{Service: "cli"})
//	logger.Info("order created", "order_id", id)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config configures a Logger. The zero value logs Info and above as text
// to stderr with no service attribute.
type Config struct {
	// Level is the minimum level: "debug", "info", "warn", or "error".
	// Unknown values fall back to "info".
	Level string

	// Service is attached to every record as the "service" attribute.
	Service string

	// JSON switches output to machine-parseable JSON records.
	JSON bool

	// Quiet discards all output. Used by commands that print structured
	// results to stdout and must keep stderr clean.
	Quiet bool

	// Writer overrides the destination (default os.Stderr). Tests use a
	// bytes.Buffer here.
	Writer io.Writer
}

// Logger is a thin wrapper over slog.Logger carrying its config.
type Logger struct {
	slog   *slog.Logger
	config Config
}

// New creates a Logger from the config.
func New(config Config) *Logger {
	w := config.Writer
	if w == nil {
		w = os.Stderr
	}
	if config.Quiet {
		w = io.Discard
	}

	opts := &slog.HandlerOptions{Level: parseLevel(config.Level)}
	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	if config.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", config.Service)})
	}
	return &Logger{slog: slog.New(handler), config: config}
}

// Default returns a text logger at Info level for the "shopgrid" service.
func Default() *Logger {
	return New(Config{Service: "shopgrid"})
}

// Debug logs at Debug level with key-value attrs.
func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }

// Info logs at Info level with key-value attrs.
func (l *Logger) Info(msg string, args ...any) { l.slog.Info(msg, args...) }

// Warn logs at Warn level with key-value attrs.
func (l *Logger) Warn(msg string, args ...any) { l.slog.Warn(msg, args...) }

// Error logs at Error level with key-value attrs.
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// With returns a child logger carrying additional attributes. The parent
// is not modified.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...), config: l.config}
}

// Slog exposes the underlying slog.Logger for callers that need features
// this wrapper does not surface.
func (l *Logger) Slog() *slog.Logger { return l.slog }

// parseLevel maps a level name to its slog.Level, defaulting to Info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
