// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for docconv.
//
// Configuration is read from a single file named either by the
// DOCCONV_CONFIG environment variable (via [Load]) or by the --config
// flag (via [LoadFile]). There is no automatic discovery. Unlike a
// service, the converter needs no configuration at all: when neither
// source names a file, [Load] returns [Default].
//
// String values support ${VAR} and ${VAR:-default} expansion after
// loading. No environment variable overrides a value directly.
//
// This package depends only on lib/docfile, for the extension table
// the configuration produces.
package config
