// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bureau-foundation/docconv/cmd/docconv/cli"
	"github.com/bureau-foundation/docconv/lib/document"
)

func checkCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "check",
		Summary: "Check that a binary file is in canonical form",
		Description: `Read a binary document file and verify that it is byte-identical to
the encoding docconv itself would produce for the same document:
Core Deterministic Encoding (RFC 8949 section 4.2) with sorted keys,
shortest integers and floats, and definite lengths only.

Prints "canonical" and exits 0 when it is. Otherwise prints the first
byte where the file and the canonical encoding differ and exits 1. Files written by other encoders often fail the check while still
converting correctly.`,
		Usage: "docconv check <path>",
		Examples: []cli.Example{
			{
				Description: "Verify a file before committing it",
				Command:     "docconv check calibration/front.lens",
			},
		},
		Run: func(args []string) error {
			data, err := readBinaryArgument("check", args)
			if err != nil {
				return err
			}
			value, err := document.DecodeCBOR(data)
			if err != nil {
				return cli.Internal("decode %s: %w", args[0], err)
			}
			canonical, err := document.EncodeCBOR(value)
			if err != nil {
				return cli.Internal("re-encode %s: %w", args[0], err)
			}
			if !bytes.Equal(data, canonical) {
				if _, err := fmt.Fprintln(stdout, describeMismatch(args[0], data, canonical)); err != nil {
					return err
				}
				return &cli.ExitError{Code: 1}
			}
			_, err = fmt.Fprintln(stdout, "canonical")
			return err
		},
	}
}

func describeMismatch(path string, original, canonical []byte) string {
	offset := 0
	for offset < min(len(original), len(canonical)) && original[offset] == canonical[offset] {
		offset++
	}
	return fmt.Sprintf("%s is not canonical: first difference at byte %d (file %d bytes, canonical %d bytes)",
		path, offset, len(original), len(canonical))
}
