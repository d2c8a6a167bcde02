// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docfile

import (
	"github.com/bureau-foundation/docconv/lib/document"
	"github.com/bureau-foundation/docconv/lib/record"
)

// Read is [Load] that logs failures and returns a null document
// instead of an error.
func Read(path string, opts ...Option) document.Value {
	o := newOptions(opts)
	value, err := load(path, o)
	if err != nil {
		o.logger.Error("reading document failed", "path", path, "error", err)
		return document.Null()
	}
	return value
}

// Write is [Save] that logs failures instead of returning them.
func Write(path string, value document.Value, opts ...Option) {
	o := newOptions(opts)
	if err := save(path, value, o); err != nil {
		o.logger.Error("writing document failed", "path", path, "error", err)
	}
}

// ReadInto reads the document at path and decodes it into dst. Fields
// whose keys are missing keep their current values, so callers can
// preset defaults. When the file cannot be read dst is not touched.
// Fields that fail to convert are logged and keep their values. The
// result reports whether the document was read and decoded cleanly.
func ReadInto(path string, dst record.Unmarshaler, opts ...Option) bool {
	o := newOptions(opts)
	value, err := load(path, o)
	if err != nil {
		o.logger.Error("reading document failed", "path", path, "error", err)
		return false
	}
	if err := dst.UnmarshalDocument(value); err != nil {
		o.logger.Error("decoding document failed", "path", path, "error", err)
		return false
	}
	return true
}

// ReadAs is [ReadInto] for a freshly zeroed T.
func ReadAs[T any, P interface {
	*T
	record.Unmarshaler
}](path string, opts ...Option) T {
	var result T
	ReadInto(path, P(&result), opts...)
	return result
}

// WriteAs encodes source through its MarshalDocument method and
// writes the result like [Write].
func WriteAs(path string, source record.Marshaler, opts ...Option) {
	o := newOptions(opts)
	value, err := source.MarshalDocument()
	if err != nil {
		o.logger.Error("encoding document failed", "path", path, "error", err)
		return
	}
	if err := save(path, value, o); err != nil {
		o.logger.Error("writing document failed", "path", path, "error", err)
	}
}
