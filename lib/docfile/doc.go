// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package docfile reads and writes document files, choosing the
// encoding from the file extension: .json files hold the indented
// text encoding, binary extensions (.dat and .cbor by default) hold
// raw CBOR with no framing.
//
// Two API layers are provided. [Load] and [Save] return errors. [Read],
// [Write], [ReadAs], [ReadInto], and [WriteAs] are tolerant: failures
// are logged through the configured [slog.Logger] and the call returns
// a null document or leaves the destination record at its defaults.
// Tools that process many files and want to keep going past a bad one
// use the tolerant layer; everything else should use [Load] and
// [Save].
//
// Typed records convert through [record.Marshaler] and
// [record.Unmarshaler]:
//
//	settings := docfile.ReadAs[Settings]("camera.json", docfile.Float32())
//	docfile.WriteAs("camera.dat", settings)
package docfile
