// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/docconv/cmd/docconv/cli"
	"github.com/bureau-foundation/docconv/cmd/docconv/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output return an ExitError
		// with the desired exit code. Don't print a redundant
		// "error:" line for those.
		code, display := cli.ExitCode(err)
		if display {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(code)
	}
}

func run() error {
	return commands.Root().Execute(os.Args[1:])
}
