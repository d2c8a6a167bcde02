// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"

	"github.com/bureau-foundation/docconv/lib/document"
)

// Encode converts a Go value into a document. It accepts the same
// scalar types [Decode] does, [Marshaler] and encoding.TextMarshaler
// implementations, and pointers, slices, arrays and string-keyed maps
// of any of those. A nil pointer encodes as null.
func Encode(value any) (document.Value, error) {
	switch source := value.(type) {
	case nil:
		return document.Null(), nil
	case document.Value:
		return source, nil
	case Marshaler:
		return source.MarshalDocument()
	case encoding.TextMarshaler:
		text, err := source.MarshalText()
		if err != nil {
			return document.Value{}, err
		}
		return document.String(string(text)), nil
	case bool:
		return document.Bool(source), nil
	case string:
		return document.String(source), nil
	case []byte:
		return document.Binary(source), nil
	case float32:
		return document.Float(float64(source)), nil
	case float64:
		return document.Float(source), nil
	case int:
		return document.Int(int64(source)), nil
	case int8:
		return document.Int(int64(source)), nil
	case int16:
		return document.Int(int64(source)), nil
	case int32:
		return document.Int(int64(source)), nil
	case int64:
		return document.Int(source), nil
	case uint:
		return document.Uint(uint64(source)), nil
	case uint8:
		return document.Uint(uint64(source)), nil
	case uint16:
		return document.Uint(uint64(source)), nil
	case uint32:
		return document.Uint(uint64(source)), nil
	case uint64:
		return document.Uint(source), nil
	}
	return encodeReflect(reflect.ValueOf(value))
}

// encodeReflect handles containers and named scalar types (type
// Meters float64) that the type switch in Encode cannot name.
func encodeReflect(value reflect.Value) (document.Value, error) {
	switch value.Kind() {
	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return document.Null(), nil
		}
		return Encode(value.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if value.Kind() == reflect.Slice && value.IsNil() {
			return document.Array(), nil
		}
		items := make([]document.Value, value.Len())
		for i := range value.Len() {
			item, err := Encode(value.Index(i).Interface())
			if err != nil {
				return document.Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = item
		}
		return document.Array(items...), nil
	case reflect.Map:
		if value.Type().Key().Kind() != reflect.String {
			return document.Value{}, fmt.Errorf("unsupported map key type %s", value.Type().Key())
		}
		members := make(map[string]document.Value, value.Len())
		iterator := value.MapRange()
		for iterator.Next() {
			key := iterator.Key().String()
			member, err := Encode(iterator.Value().Interface())
			if err != nil {
				return document.Value{}, fmt.Errorf("key %q: %w", key, err)
			}
			members[key] = member
		}
		return document.Object(members), nil
	case reflect.Bool:
		return document.Bool(value.Bool()), nil
	case reflect.String:
		return document.String(value.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return document.Int(value.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return document.Uint(value.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return document.Float(value.Float()), nil
	default:
		return document.Value{}, fmt.Errorf("unsupported source type %s", value.Type())
	}
}

// Builder assembles the document form of a record one field at a
// time. Conversion errors are collected and reported by Build.
type Builder struct {
	members map[string]document.Value
	errs    []error
}

// NewObject returns an empty Builder.
func NewObject() *Builder {
	return &Builder{members: map[string]document.Value{}}
}

// Set stores the encoding of value under key.
func (b *Builder) Set(key string, value any) *Builder {
	member, err := Encode(value)
	if err != nil {
		b.errs = append(b.errs, &FieldError{Key: key, Err: err})
		return b
	}
	b.members[key] = member
	return b
}

// SetOptional is [Builder.Set] that omits the key entirely when value
// is nil or a nil pointer, map or slice.
func (b *Builder) SetOptional(key string, value any) *Builder {
	if isNil(value) {
		return b
	}
	return b.Set(key, value)
}

// Build returns the object, or the joined errors of every field that
// failed to encode.
func (b *Builder) Build() (document.Value, error) {
	if len(b.errs) > 0 {
		return document.Value{}, errors.Join(b.errs...)
	}
	return document.Object(b.members), nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return reflected.IsNil()
	default:
		return false
	}
}
