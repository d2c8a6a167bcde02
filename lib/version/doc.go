// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports the build version of docconv.
//
// [Version], [GitCommit], and [BuildTime] are injected with -ldflags:
//
//	go build -ldflags "-X github.com/bureau-foundation/docconv/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// When GitCommit is not injected, the VCS revision recorded by the Go
// toolchain is used if the binary carries one.
package version
