// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docfile

import "log/slog"

// Option configures a read or write.
type Option func(*options)

type options struct {
	narrow     bool
	comments   bool
	extensions Extensions
	logger     *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{extensions: DefaultExtensions}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Float32 narrows every floating-point value to 32-bit precision while
// a text file is parsed. Binary reads ignore it.
func Float32() Option {
	return func(o *options) { o.narrow = true }
}

// AllowComments accepts // and /* */ comments and trailing commas in
// text files.
func AllowComments() Option {
	return func(o *options) { o.comments = true }
}

// WithExtensions replaces [DefaultExtensions].
func WithExtensions(extensions Extensions) Option {
	return func(o *options) { o.extensions = extensions }
}

// WithLogger sets the logger the tolerant functions report failures
// to. The default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}
