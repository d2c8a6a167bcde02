// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates a structured logger on w. When w is a terminal it
// uses slog.TextHandler for human-readable output; when it is piped or
// redirected (scripts, CI, build systems) it uses slog.JSONHandler.
//
// Callers scope the logger with command context via With():
//
//	logger := cli.NewLogger(os.Stderr, slog.LevelInfo).With("command", "docconv")
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	file, ok := w.(*os.File)
	return newLogger(w, ok && term.IsTerminal(int(file.Fd())), level)
}

func newLogger(w io.Writer, terminal bool, level slog.Leveler) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if terminal {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}
