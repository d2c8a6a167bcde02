// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package convert

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/docconv/lib/docfile"
)

var (
	// ErrMissingArgument is returned when no input path is given.
	ErrMissingArgument = errors.New("missing input file argument")

	// ErrFileNotFound is returned when the input path does not name a
	// regular file.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedExtension is returned when the input extension is
	// neither the text extension nor a configured binary extension.
	ErrUnsupportedExtension = docfile.ErrUnsupportedExtension
)

// DefaultExtensions is used by a [Converter] with no extensions
// configured. Binary output is written as .lens; .dat and .cbor are
// accepted as binary input.
var DefaultExtensions = docfile.Extensions{
	Text:   []string{".json"},
	Binary: []string{".lens", ".dat", ".cbor"},
}

// Direction is the encoding change a conversion performs.
type Direction int

const (
	TextToBinary Direction = iota
	BinaryToText
)

func (d Direction) String() string {
	switch d {
	case TextToBinary:
		return "json-to-cbor"
	case BinaryToText:
		return "cbor-to-json"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Digest is the BLAKE3-256 hash of the bytes written to the
// destination file.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Result describes a completed conversion.
type Result struct {
	Source      string
	Destination string
	Direction   Direction
	Bytes       int
	Digest      Digest
}

// Converter converts document files between the text and binary
// encodings. The zero value converts with [DefaultExtensions], no
// float narrowing, strict JSON input, and [slog.Default].
type Converter struct {
	// Extensions selects the encoding of the input and the extension
	// of the output. Zero means [DefaultExtensions].
	Extensions docfile.Extensions

	// NarrowFloats rounds every floating-point value of a text input
	// to 32-bit precision while it is parsed. It has no effect on
	// binary input.
	NarrowFloats bool

	// AllowComments accepts comments and trailing commas in text
	// input.
	AllowComments bool

	Logger *slog.Logger
}

// Convert reads the document at path and writes it in the other
// encoding next to the source, replacing the extension. An existing
// destination is truncated. Nothing is created when the input is
// missing, has an unsupported extension, or fails to parse; a write
// that fails after the destination was opened leaves the partial file
// in place.
func (c *Converter) Convert(path string) (Result, error) {
	if path == "" {
		return Result{}, ErrMissingArgument
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Result{}, fmt.Errorf("%s: %w", path, ErrFileNotFound)
	}

	extensions := c.extensions()
	var direction Direction
	var target docfile.Kind
	switch extensions.KindOf(path) {
	case docfile.KindText:
		direction, target = TextToBinary, docfile.KindBinary
	case docfile.KindBinary:
		direction, target = BinaryToText, docfile.KindText
	default:
		return Result{}, fmt.Errorf("%s: %w", path, ErrUnsupportedExtension)
	}

	targetExtension := extensions.Canonical(target)
	if targetExtension == "" {
		return Result{}, fmt.Errorf("no %s extension configured", target)
	}

	options := []docfile.Option{docfile.WithExtensions(extensions)}
	if c.NarrowFloats && direction == TextToBinary {
		options = append(options, docfile.Float32())
	}
	if c.AllowComments {
		options = append(options, docfile.AllowComments())
	}

	value, err := docfile.Load(path, options...)
	if err != nil {
		return Result{}, err
	}

	destination := docfile.ReplaceExtension(path, targetExtension)
	data, err := docfile.Encode(value, target)
	if err != nil {
		return Result{}, &docfile.WriteError{Path: destination, Err: err}
	}
	if err := docfile.WriteFile(destination, data); err != nil {
		return Result{}, err
	}

	result := Result{
		Source:      path,
		Destination: destination,
		Direction:   direction,
		Bytes:       len(data),
		Digest:      blake3.Sum256(data),
	}
	c.logger().Info("converted document",
		"source", result.Source,
		"destination", result.Destination,
		"direction", result.Direction.String(),
		"bytes", result.Bytes,
		"blake3", result.Digest.String(),
	)
	return result, nil
}

func (c *Converter) extensions() docfile.Extensions {
	if len(c.Extensions.Text) == 0 && len(c.Extensions.Binary) == 0 {
		return DefaultExtensions
	}
	return c.Extensions
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
