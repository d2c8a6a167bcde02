// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"encoding"
	"fmt"
	"math"
	"reflect"

	"github.com/bureau-foundation/docconv/lib/document"
)

// Decode converts v into the value dst points to. Supported targets
// are pointers to bool, every integer width, float32, float64, string,
// []byte and document.Value, any [Unmarshaler] or
// encoding.TextUnmarshaler, and the shapes [Encode] produces from
// reflection: named scalar types, pointers, slices, arrays and
// string-keyed maps of any supported type.
//
// Integer targets accept floats with an integral value; every integer
// conversion is range-checked. Float targets accept integers. Arrays
// follow [GetArray]: extra elements are ignored and trailing slots keep
// their values. dst is only written when the whole conversion succeeds.
func Decode(v document.Value, dst any) error {
	switch target := dst.(type) {
	case *document.Value:
		*target = v
		return nil
	case Unmarshaler:
		return target.UnmarshalDocument(v)
	case *bool:
		b, ok := v.AsBool()
		if !ok {
			return mismatch("boolean", v)
		}
		*target = b
		return nil
	case *string:
		s, ok := v.AsString()
		if !ok {
			return mismatch("string", v)
		}
		*target = s
		return nil
	case *[]byte:
		b, ok := v.AsBinary()
		if !ok {
			return mismatch("binary", v)
		}
		*target = b
		return nil
	case *float64:
		f, ok := v.AsNumber()
		if !ok {
			return mismatch("number", v)
		}
		*target = f
		return nil
	case *float32:
		f, ok := v.AsNumber()
		if !ok {
			return mismatch("number", v)
		}
		*target = float32(f)
		return nil
	case *int:
		return assignSigned(v, target, math.MinInt, math.MaxInt)
	case *int8:
		return assignSigned(v, target, math.MinInt8, math.MaxInt8)
	case *int16:
		return assignSigned(v, target, math.MinInt16, math.MaxInt16)
	case *int32:
		return assignSigned(v, target, math.MinInt32, math.MaxInt32)
	case *int64:
		return assignSigned(v, target, math.MinInt64, math.MaxInt64)
	case *uint:
		return assignUnsigned(v, target, math.MaxUint)
	case *uint8:
		return assignUnsigned(v, target, math.MaxUint8)
	case *uint16:
		return assignUnsigned(v, target, math.MaxUint16)
	case *uint32:
		return assignUnsigned(v, target, math.MaxUint32)
	case *uint64:
		return assignUnsigned(v, target, math.MaxUint64)
	case encoding.TextUnmarshaler:
		s, ok := v.AsString()
		if !ok {
			return mismatch("string", v)
		}
		return target.UnmarshalText([]byte(s))
	default:
		pointer := reflect.ValueOf(dst)
		if pointer.Kind() != reflect.Pointer || pointer.IsNil() {
			return fmt.Errorf("unsupported destination type %T", dst)
		}
		return decodeReflect(v, pointer.Elem())
	}
}

// decodeReflect mirrors encodeReflect. Containers are built in a fresh
// value and assigned to target at the end.
func decodeReflect(v document.Value, target reflect.Value) error {
	targetType := target.Type()
	switch target.Kind() {
	case reflect.Pointer:
		if v.IsNull() {
			target.SetZero()
			return nil
		}
		element := reflect.New(targetType.Elem())
		if !target.IsNil() {
			element.Elem().Set(target.Elem())
		}
		if err := Decode(v, element.Interface()); err != nil {
			return err
		}
		target.Set(element)
	case reflect.Slice:
		if v.Kind() != document.KindArray {
			return mismatch("array", v)
		}
		items := v.Items()
		result := reflect.MakeSlice(targetType, len(items), len(items))
		for i, item := range items {
			if err := Decode(item, result.Index(i).Addr().Interface()); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		target.Set(result)
	case reflect.Array:
		if v.Kind() != document.KindArray {
			return mismatch("array", v)
		}
		result := reflect.New(targetType).Elem()
		result.Set(target)
		for i, item := range v.Items() {
			if i >= result.Len() {
				break
			}
			if err := Decode(item, result.Index(i).Addr().Interface()); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		target.Set(result)
	case reflect.Map:
		if targetType.Key().Kind() != reflect.String {
			return fmt.Errorf("unsupported map key type %s", targetType.Key())
		}
		if v.Kind() != document.KindObject {
			return mismatch("object", v)
		}
		result := reflect.MakeMapWithSize(targetType, v.Len())
		for _, name := range v.Keys() {
			member, _ := v.Lookup(name)
			element := reflect.New(targetType.Elem())
			if err := Decode(member, element.Interface()); err != nil {
				return fmt.Errorf("key %q: %w", name, err)
			}
			result.SetMapIndex(reflect.ValueOf(name).Convert(targetType.Key()), element.Elem())
		}
		target.Set(result)
	case reflect.Bool:
		b, ok := v.AsBool()
		if !ok {
			return mismatch("boolean", v)
		}
		target.SetBool(b)
	case reflect.String:
		s, ok := v.AsString()
		if !ok {
			return mismatch("string", v)
		}
		target.SetString(s)
	case reflect.Float32, reflect.Float64:
		f, ok := v.AsNumber()
		if !ok {
			return mismatch("number", v)
		}
		target.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := targetType.Bits()
		i, err := signed(v, -1<<(bits-1), 1<<(bits-1)-1)
		if err != nil {
			return err
		}
		target.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := unsigned(v, math.MaxUint64>>(64-targetType.Bits()))
		if err != nil {
			return err
		}
		target.SetUint(u)
	default:
		return fmt.Errorf("unsupported destination type *%s", targetType)
	}
	return nil
}

func mismatch(want string, v document.Value) error {
	return fmt.Errorf("expected %s, got %v", want, v.Kind())
}

// assignSigned stores v in target only when the conversion succeeds,
// so a failed field keeps its default.
func assignSigned[T int | int8 | int16 | int32 | int64](v document.Value, target *T, low, high int64) error {
	i, err := signed(v, low, high)
	if err != nil {
		return err
	}
	*target = T(i)
	return nil
}

func assignUnsigned[T uint | uint8 | uint16 | uint32 | uint64](v document.Value, target *T, high uint64) error {
	u, err := unsigned(v, high)
	if err != nil {
		return err
	}
	*target = T(u)
	return nil
}

// signed returns v as an int64 within [low, high].
func signed(v document.Value, low, high int64) (int64, error) {
	var i int64
	switch v.Kind() {
	case document.KindInt:
		i, _ = v.AsInt()
	case document.KindUint:
		u, _ := v.AsUint()
		return 0, fmt.Errorf("integer %d out of range", u)
	case document.KindFloat:
		f, _ := v.AsFloat()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("float %v is not an integer in range", f)
		}
		i = int64(f)
	default:
		return 0, mismatch("integer", v)
	}
	if i < low || i > high {
		return 0, fmt.Errorf("integer %d out of range [%d, %d]", i, low, high)
	}
	return i, nil
}

func unsigned(v document.Value, high uint64) (uint64, error) {
	var u uint64
	switch v.Kind() {
	case document.KindInt, document.KindUint:
		var ok bool
		u, ok = v.AsUint()
		if !ok {
			i, _ := v.AsInt()
			return 0, fmt.Errorf("integer %d is negative", i)
		}
	case document.KindFloat:
		f, _ := v.AsFloat()
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return 0, fmt.Errorf("float %v is not an unsigned integer in range", f)
		}
		u = uint64(f)
	default:
		return 0, mismatch("integer", v)
	}
	if u > high {
		return 0, fmt.Errorf("integer %d out of range [0, %d]", u, high)
	}
	return u, nil
}
