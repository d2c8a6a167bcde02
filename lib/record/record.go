// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"

	"github.com/bureau-foundation/docconv/lib/document"
)

// Marshaler is implemented by records that can build their document
// form.
type Marshaler interface {
	MarshalDocument() (document.Value, error)
}

// Unmarshaler is implemented by record pointers that can populate
// themselves from a document. Implementations should leave fields
// whose keys are missing untouched.
type Unmarshaler interface {
	UnmarshalDocument(document.Value) error
}

// FieldError reports a key whose value could not be converted to the
// destination field.
type FieldError struct {
	Key string
	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Key, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Get assigns the member stored under key to dst. A missing key
// leaves dst untouched.
func Get[T any](object document.Value, key string, dst *T) error {
	member, ok := object.Lookup(key)
	if !ok {
		return nil
	}
	if err := Decode(member, dst); err != nil {
		return &FieldError{Key: key, Err: err}
	}
	return nil
}

// GetOptional is [Get] for optional fields held as pointers. A
// missing key leaves dst untouched, a null member sets it to nil, and
// any other member is decoded into a newly allocated T.
func GetOptional[T any](object document.Value, key string, dst **T) error {
	member, ok := object.Lookup(key)
	if !ok {
		return nil
	}
	if member.IsNull() {
		*dst = nil
		return nil
	}
	var value T
	if *dst != nil {
		value = **dst
	}
	if err := Decode(member, &value); err != nil {
		return &FieldError{Key: key, Err: err}
	}
	*dst = &value
	return nil
}

// GetArray copies the sequence stored under key into dst, which is
// usually a slice of a fixed-size array (field[:]). Source elements
// beyond len(dst) are ignored and slots beyond the source length keep
// their values. A missing key leaves dst untouched.
func GetArray[T any](object document.Value, key string, dst []T) error {
	member, ok := object.Lookup(key)
	if !ok {
		return nil
	}
	if member.Kind() != document.KindArray {
		return &FieldError{Key: key, Err: fmt.Errorf("expected array, got %v", member.Kind())}
	}
	for i, item := range member.Items() {
		if i >= len(dst) {
			break
		}
		if err := Decode(item, &dst[i]); err != nil {
			return &FieldError{Key: fmt.Sprintf("%s[%d]", key, i), Err: err}
		}
	}
	return nil
}

// GetSlice replaces *dst with the converted elements of the sequence
// stored under key. Unlike the other getters a missing key still
// clears *dst to an empty slice.
func GetSlice[T any](object document.Value, key string, dst *[]T) error {
	member, ok := object.Lookup(key)
	if !ok {
		*dst = []T{}
		return nil
	}
	if member.Kind() != document.KindArray {
		return &FieldError{Key: key, Err: fmt.Errorf("expected array, got %v", member.Kind())}
	}
	result := make([]T, 0, member.Len())
	for i, item := range member.Items() {
		var element T
		if err := Decode(item, &element); err != nil {
			return &FieldError{Key: fmt.Sprintf("%s[%d]", key, i), Err: err}
		}
		result = append(result, element)
	}
	*dst = result
	return nil
}

// GetMap replaces *dst with the converted members of the object
// stored under key. A missing key leaves *dst untouched.
func GetMap[T any](object document.Value, key string, dst *map[string]T) error {
	member, ok := object.Lookup(key)
	if !ok {
		return nil
	}
	if member.Kind() != document.KindObject {
		return &FieldError{Key: key, Err: fmt.Errorf("expected object, got %v", member.Kind())}
	}
	result := make(map[string]T, member.Len())
	for _, name := range member.Keys() {
		value, _ := member.Lookup(name)
		var element T
		if err := Decode(value, &element); err != nil {
			return &FieldError{Key: key + "." + name, Err: err}
		}
		result[name] = element
	}
	*dst = result
	return nil
}
