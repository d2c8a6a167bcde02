// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package record maps typed Go records to and from documents.
//
// A record type declares its own field list by implementing
// [Marshaler] and [Unmarshaler]. There is no reflection over struct
// fields: the key names, and therefore the document schema, live in
// the record's methods.
//
//	func (c *Camera) UnmarshalDocument(v document.Value) error {
//	    return errors.Join(
//	        record.Get(v, "name", &c.Name),
//	        record.GetArray(v, "distortion", c.Distortion[:]),
//	        record.GetSlice(v, "samples", &c.Samples),
//	        lensSpecs.Get(v, "spec", &c.Spec),
//	    )
//	}
//
//	func (c Camera) MarshalDocument() (document.Value, error) {
//	    return record.NewObject().
//	        Set("name", c.Name).
//	        Set("distortion", c.Distortion).
//	        Set("samples", c.Samples).
//	        Set("spec", lensSpecs.Encode(c.Spec)).
//	        Build()
//	}
//
// Decoding is tolerant of missing keys: every getter leaves its
// destination untouched when the key is absent, so a record keeps the
// defaults it was initialized with. A key that is present with the
// wrong kind is an error naming the key.
package record
