// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/docconv/cmd/docconv/cli"
	"github.com/bureau-foundation/docconv/lib/codec"
)

func diagCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "diag",
		Summary: "Print a binary file in CBOR diagnostic notation",
		Description: `Read a binary document file and write its RFC 8949 diagnostic
notation to stdout.

Unlike the JSON conversion, diagnostic notation shows the exact
encoding: integers versus floats, float precision, byte strings, and
non-string map keys.`,
		Usage: "docconv diag <path>",
		Examples: []cli.Example{
			{
				Description: "Check which floats were stored at 32-bit precision",
				Command:     "docconv diag calibration/front.dat",
			},
		},
		Run: func(args []string) error {
			data, err := readBinaryArgument("diag", args)
			if err != nil {
				return err
			}
			notation, err := codec.Diagnose(data)
			if err != nil {
				return cli.Internal("diagnose %s: %w", args[0], err)
			}
			_, err = fmt.Fprintln(stdout, notation)
			return err
		},
	}
}

// readBinaryArgument reads the single file named by args and checks
// that it holds exactly one well-formed CBOR data item.
func readBinaryArgument(command string, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, cli.Validation("%s takes exactly one file argument, got %d", command, len(args))
	}
	info, err := os.Stat(args[0])
	if err != nil || !info.Mode().IsRegular() {
		return nil, cli.NotFound("%s: file not found", args[0])
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, cli.Internal("read %s: %w", args[0], err)
	}
	if len(data) == 0 {
		return nil, cli.Validation("%s: empty file", args[0])
	}
	if err := codec.Wellformed(data); err != nil {
		return nil, cli.Validation("%s: not well-formed CBOR: %w", args[0], err)
	}
	return data, nil
}
