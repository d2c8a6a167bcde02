// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docfile

import (
	"path/filepath"
	"slices"
	"strings"
)

// Kind is the encoding a file extension selects.
type Kind int

const (
	// KindUnknown is an extension that is neither text nor binary.
	KindUnknown Kind = iota

	// KindText is the indented JSON encoding.
	KindText

	// KindBinary is the CBOR encoding.
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "json"
	case KindBinary:
		return "cbor"
	default:
		return "unknown"
	}
}

// Extensions maps file extensions to encodings. Extensions include
// the leading dot and are compared case-insensitively. The first
// entry of each list is canonical: it is the extension given to files
// produced in that encoding.
type Extensions struct {
	Text   []string
	Binary []string
}

// DefaultExtensions is the mapping used when no [WithExtensions]
// option is given.
var DefaultExtensions = Extensions{
	Text:   []string{".json"},
	Binary: []string{".dat", ".cbor"},
}

// KindOf returns the encoding selected by the extension of path.
func (e Extensions) KindOf(path string) Kind {
	extension := strings.ToLower(filepath.Ext(path))
	if extension == "" {
		return KindUnknown
	}
	if containsFold(e.Text, extension) {
		return KindText
	}
	if containsFold(e.Binary, extension) {
		return KindBinary
	}
	return KindUnknown
}

// Canonical returns the canonical extension of kind, or "" when no
// extension is configured for it.
func (e Extensions) Canonical(kind Kind) string {
	var list []string
	switch kind {
	case KindText:
		list = e.Text
	case KindBinary:
		list = e.Binary
	}
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

// ReplaceExtension returns path with its final extension replaced by
// extension. The directory and stem are unchanged. A path without an
// extension gets extension appended.
func ReplaceExtension(path, extension string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + extension
}

func containsFold(list []string, extension string) bool {
	return slices.ContainsFunc(list, func(candidate string) bool {
		return strings.EqualFold(candidate, extension)
	})
}
