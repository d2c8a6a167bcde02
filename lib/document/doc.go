// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package document is the in-memory tree that sits between the text
// (JSON) and binary (CBOR) encodings.
//
// A [Value] is null, a boolean, an integer, a float, a string, a byte
// string, an array, or an object with unique string keys. Values have
// structural equality ([Value.Equal]) and no identity, so a document
// read from JSON and the same document read from CBOR compare equal.
//
// Text encoding:
//
//	value, err := document.ParseJSON(r)
//	value, err := document.ParseJSON(r, document.NarrowFloats())
//	err = document.WriteJSON(w, value)
//
// [ParseJSON] walks the input token by token. With [NarrowFloats], each
// float literal is rounded to 32-bit precision as it is read, before it
// becomes part of the tree. [WriteJSON] indents with four spaces, sorts
// object keys, and ends with a newline. Floats always print with a
// fraction or exponent so that text output parses back to the same
// kinds.
//
// Binary encoding:
//
//	data, err := document.EncodeCBOR(value)
//	value, err := document.DecodeCBOR(data)
//
// Integers that fit int64 are always [KindInt], whichever encoding
// they came from; only values above math.MaxInt64 are [KindUint].
package document
