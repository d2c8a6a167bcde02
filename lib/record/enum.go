// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"

	"github.com/bureau-foundation/docconv/lib/document"
)

// EnumLabel pairs an enumerated value with its document label.
type EnumLabel[E comparable] struct {
	Value E
	Label string
}

// Enum is the label table of an enumerated type. Enumerations travel
// through documents as their string labels:
//
//	var lensSpecs = record.NewEnum(
//	    record.EnumLabel[LensSpec]{Normal, "NORMAL"},
//	    record.EnumLabel[LensSpec]{FisheyeEquidistant, "FISHEYE_EQUIDISTANT"},
//	)
//
// A value missing from the table is a schema error in the caller. It
// is not reported: such values encode as the first declared label, and
// unknown labels decode to the first declared value.
type Enum[E comparable] struct {
	labels []EnumLabel[E]
}

// NewEnum returns the table for labels. The first entry is the
// fallback for unknown values and labels.
func NewEnum[E comparable](labels ...EnumLabel[E]) *Enum[E] {
	return &Enum[E]{labels: labels}
}

// Label returns the label declared for value.
func (e *Enum[E]) Label(value E) string {
	for _, entry := range e.labels {
		if entry.Value == value {
			return entry.Label
		}
	}
	if len(e.labels) == 0 {
		return ""
	}
	return e.labels[0].Label
}

// Lookup returns the value declared for label.
func (e *Enum[E]) Lookup(label string) (E, bool) {
	for _, entry := range e.labels {
		if entry.Label == label {
			return entry.Value, true
		}
	}
	var zero E
	return zero, false
}

// Parse returns the value declared for label, or the first declared
// value when label is unknown.
func (e *Enum[E]) Parse(label string) E {
	if value, ok := e.Lookup(label); ok {
		return value
	}
	var zero E
	if len(e.labels) == 0 {
		return zero
	}
	return e.labels[0].Value
}

// Encode returns the document form of value: its label as a string.
func (e *Enum[E]) Encode(value E) document.Value {
	return document.String(e.Label(value))
}

// Decode sets *dst from a string member. Non-string members are an
// error.
func (e *Enum[E]) Decode(v document.Value, dst *E) error {
	label, ok := v.AsString()
	if !ok {
		return fmt.Errorf("expected enum label string, got %v", v.Kind())
	}
	*dst = e.Parse(label)
	return nil
}

// Get is [Get] for enumerated fields. A missing key leaves dst
// untouched.
func (e *Enum[E]) Get(object document.Value, key string, dst *E) error {
	member, ok := object.Lookup(key)
	if !ok {
		return nil
	}
	if err := e.Decode(member, dst); err != nil {
		return &FieldError{Key: key, Err: err}
	}
	return nil
}
