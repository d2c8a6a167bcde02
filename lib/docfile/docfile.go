// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docfile

import (
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/docconv/lib/document"
)

// Load reads the document stored at path. The encoding is chosen by
// the extension of path.
func Load(path string, opts ...Option) (document.Value, error) {
	return load(path, newOptions(opts))
}

func load(path string, o options) (document.Value, error) {
	kind := o.extensions.KindOf(path)
	if kind == KindUnknown {
		return document.Null(), fmt.Errorf("%s: %w", path, ErrUnsupportedExtension)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return document.Null(), &OpenError{Op: "read", Path: path, Err: err}
	}

	value, err := decode(data, kind, o)
	if err != nil {
		return document.Null(), &ParseError{Path: path, Encoding: kind, Err: err}
	}
	return value, nil
}

// Decode parses data in the given encoding. Of the options only
// [Float32] and [AllowComments] apply, and only to text.
func Decode(data []byte, kind Kind, opts ...Option) (document.Value, error) {
	return decode(data, kind, newOptions(opts))
}

func decode(data []byte, kind Kind, o options) (document.Value, error) {
	switch kind {
	case KindText:
		if o.comments {
			data = jsonc.ToJSON(data)
		}
		var parseOptions []document.ParseOption
		if o.narrow {
			parseOptions = append(parseOptions, document.NarrowFloats())
		}
		return document.ParseJSONBytes(data, parseOptions...)
	case KindBinary:
		return document.DecodeCBOR(data)
	default:
		return document.Null(), ErrUnsupportedExtension
	}
}

// Encode serializes value in the given encoding. Text output is
// indented by four spaces and ends with a newline; binary output is
// the bare CBOR item.
func Encode(value document.Value, kind Kind) ([]byte, error) {
	switch kind {
	case KindText:
		return document.MarshalJSON(value)
	case KindBinary:
		return document.EncodeCBOR(value)
	default:
		return nil, ErrUnsupportedExtension
	}
}

// Save writes value to path, truncating any existing file. The
// encoding is chosen by the extension of path.
func Save(path string, value document.Value, opts ...Option) error {
	return save(path, value, newOptions(opts))
}

func save(path string, value document.Value, o options) error {
	kind := o.extensions.KindOf(path)
	if kind == KindUnknown {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedExtension)
	}
	data, err := Encode(value, kind)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return WriteFile(path, data)
}

// WriteFile creates or truncates path and writes data to it. A file
// that fails mid-write is left in place.
func WriteFile(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &OpenError{Op: "write", Path: path, Err: err}
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
