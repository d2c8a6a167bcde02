// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docfile

import (
	"errors"
	"fmt"
)

// ErrUnsupportedExtension is returned for paths whose extension selects
// neither encoding.
var ErrUnsupportedExtension = errors.New("unsupported extension")

// OpenError reports a file that could not be opened. Op is "read" or
// "write".
type OpenError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open %s for %s: %v", e.Path, opVerb(e.Op), e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

func opVerb(op string) string {
	switch op {
	case "read":
		return "reading"
	case "write":
		return "writing"
	default:
		return op
	}
}

// ParseError reports file contents that are not a valid document in
// the encoding selected by the file extension.
type ParseError struct {
	Path     string
	Encoding Kind
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s as %s: %v", e.Path, e.Encoding, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a document that could not be serialized or whose
// bytes could not be written after the file was opened.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
