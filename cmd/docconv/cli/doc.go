// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for docconv.
//
// The central type is [Command]: a name, a [pflag.FlagSet] factory, a
// Run function, and optional [Command.Subcommands]. [Command.Execute]
// parses flags, routes to subcommands, and prints structured help
// with examples. A command with both Run and Subcommands treats a
// first argument that names no subcommand as a positional argument
// for Run, so "docconv front.json" and "docconv diag front.lens" share
// one tree.
//
// Flags are declared as tagged struct fields and bound with
// [FlagsFromParams]. Unknown flags and subcommands get a "did you
// mean" suggestion based on Levenshtein distance.
//
// Errors returned by commands are classified with [ToolError]
// categories. [ExitError] lets a command choose its exit code after
// writing its own output.
package cli
