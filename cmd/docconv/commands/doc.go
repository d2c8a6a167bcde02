// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the docconv command tree: the root command
// that converts one file between JSON and CBOR, plus the diag and
// check subcommands for inspecting binary files.
package commands
