// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for docconv packages.
//
// [WriteFile] creates a fixture file in a test directory and
// [DirEntries] lists a directory, so tests can assert that a failed
// conversion left nothing behind.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no docconv-internal dependencies.
package testutil
