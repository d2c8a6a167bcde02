// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/docconv/cmd/docconv/cli"
	"github.com/bureau-foundation/docconv/lib/config"
	"github.com/bureau-foundation/docconv/lib/convert"
	"github.com/bureau-foundation/docconv/lib/docfile"
	"github.com/bureau-foundation/docconv/lib/version"
)

// convertParams holds the flags of the root command.
type convertParams struct {
	Float32   bool   `flag:"float32,f" desc:"round floating-point values to 32-bit precision when converting JSON to binary"`
	BinaryExt string `flag:"binary-ext" desc:"extension for binary output (default from config, .lens)"`
	JSONC     bool   `flag:"jsonc" desc:"accept comments and trailing commas in JSON input"`
	Config    string `flag:"config" desc:"configuration file (default $DOCCONV_CONFIG)"`
	Version   bool   `flag:"version" desc:"print version information and exit"`
}

// Root returns the docconv command tree writing to the process's
// stdout and stderr.
func Root() *cli.Command {
	return NewRoot(os.Stdout, os.Stderr)
}

// NewRoot returns the docconv command tree. Command output goes to
// stdout; help and log records go to stderr.
func NewRoot(stdout, stderr io.Writer) *cli.Command {
	var params convertParams

	return &cli.Command{
		Name:    "docconv",
		Summary: "Convert documents between JSON and CBOR",
		Description: `Convert a document file between the JSON text encoding and the CBOR
binary encoding. The direction follows the input extension: a .json
file becomes a binary file next to it, and a binary file (.lens, .dat,
or .cbor by default) becomes a .json file. The stem and directory are
kept; an existing output file is overwritten.

Binary files are raw CBOR with no framing. JSON output is indented by
four spaces with object keys sorted.

With -f, floating-point values in JSON input are rounded to 32-bit
precision as they are parsed, which lets the binary encoding store
them as 4-byte floats.`,
		Usage: "docconv [flags] <path>",
		Examples: []cli.Example{
			{
				Description: "Convert JSON to a .lens binary file",
				Command:     "docconv calibration/front.json",
			},
			{
				Description: "Convert JSON to .dat with 32-bit floats",
				Command:     "docconv --binary-ext .dat -f calibration/front.json",
			},
			{
				Description: "Convert a binary file back to JSON",
				Command:     "docconv calibration/front.lens",
			},
		},
		HelpOutput: stderr,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("docconv", &params)
		},
		Subcommands: []*cli.Command{
			diagCommand(stdout),
			checkCommand(stdout),
		},
		Run: func(args []string) error {
			if params.Version {
				fmt.Fprintln(stdout, version.Info())
				return nil
			}
			if len(args) == 0 {
				return cli.Validation("%w\n\nRun 'docconv --help' for usage.", convert.ErrMissingArgument)
			}
			if len(args) > 1 {
				return cli.Validation("expected one input file, got %d arguments", len(args))
			}

			cfg, err := loadConfig(params)
			if err != nil {
				return err
			}

			converter := &convert.Converter{
				Extensions:    cfg.Extensions(),
				NarrowFloats:  cfg.NarrowFloats,
				AllowComments: cfg.AllowComments,
				Logger:        cli.NewLogger(stderr, cfg.Level()).With("command", "docconv"),
			}
			if _, err := converter.Convert(args[0]); err != nil {
				return classify(err)
			}
			return nil
		},
	}
}

// loadConfig reads the configuration file, if any, and applies the
// command-line overrides on top of it.
func loadConfig(params convertParams) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if params.Config != "" {
		cfg, err = config.LoadFile(params.Config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("%w", err)
	}

	if params.BinaryExt != "" {
		cfg.BinaryExtension = params.BinaryExt
	}
	cfg.NarrowFloats = cfg.NarrowFloats || params.Float32
	cfg.AllowComments = cfg.AllowComments || params.JSONC

	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration: %w", err)
	}
	return cfg, nil
}

// classify attaches a category to a conversion error.
func classify(err error) error {
	switch {
	case errors.Is(err, convert.ErrMissingArgument), errors.Is(err, docfile.ErrUnsupportedExtension):
		return &cli.ToolError{Category: cli.CategoryValidation, Err: err}
	case errors.Is(err, convert.ErrFileNotFound):
		return &cli.ToolError{Category: cli.CategoryNotFound, Err: err}
	default:
		return &cli.ToolError{Category: cli.CategoryInternal, Err: err}
	}
}
