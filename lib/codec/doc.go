// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration shared by the
// document model and the converter.
//
// A binary document file is nothing more than one CBOR data item
// (RFC 8949): no header, no version, no framing. The encoder uses Core
// Deterministic Encoding, so converting the same JSON twice produces
// byte-identical output. Floats are written in the shortest width that
// holds the value exactly, which is why float narrowing shrinks files.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Callers outside lib/document rarely need this package directly; they
// go through [document.EncodeCBOR] and [document.DecodeCBOR].
package codec
