// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Docconv converts document files between JSON and CBOR.
//
//	docconv [flags] <path>
//	docconv diag <path>
//	docconv check <path>
//
// A .json input becomes a binary file with the same stem; a binary
// input becomes a .json file. Any failure prints "error: ..." to
// stderr and exits 1.
package main
