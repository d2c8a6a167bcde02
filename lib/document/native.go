// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"math/big"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/bureau-foundation/docconv/lib/codec"
)

// EncodeCBOR returns the binary encoding of v.
func EncodeCBOR(v Value) ([]byte, error) {
	return codec.Marshal(v.Native())
}

// DecodeCBOR parses data, which must hold exactly one CBOR data item.
func DecodeCBOR(data []byte) (Value, error) {
	if len(data) == 0 {
		return Value{}, fmt.Errorf("empty input: expected one CBOR data item")
	}
	var native any
	if err := codec.Unmarshal(data, &native); err != nil {
		return Value{}, err
	}
	return FromNative(native)
}

// Native converts v into the plain Go representation used by the CBOR
// encoder: nil, bool, int64, uint64, float64, string, []byte, []any
// and map[string]any.
func (v Value) Native() any {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindInt:
		return v.integer
	case KindUint:
		return v.unsigned
	case KindFloat:
		return v.float
	case KindString:
		return v.text
	case KindBinary:
		return v.binary
	case KindArray:
		items := make([]any, len(v.items))
		for i, item := range v.items {
			items[i] = item.Native()
		}
		return items
	case KindObject:
		members := make(map[string]any, len(v.members))
		for key, member := range v.members {
			members[key] = member.Native()
		}
		return members
	default:
		return nil
	}
}

// FromNative builds a Value from a decoded Go value. It accepts the
// types produced by the CBOR decoder plus the ordinary Go numeric
// types. Map keys that are not strings are stringified, since the
// document model only has string keys.
func FromNative(native any) (Value, error) {
	switch value := native.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(value), nil
	case int:
		return Int(int64(value)), nil
	case int8:
		return Int(int64(value)), nil
	case int16:
		return Int(int64(value)), nil
	case int32:
		return Int(int64(value)), nil
	case int64:
		return Int(value), nil
	case uint:
		return Uint(uint64(value)), nil
	case uint8:
		return Uint(uint64(value)), nil
	case uint16:
		return Uint(uint64(value)), nil
	case uint32:
		return Uint(uint64(value)), nil
	case uint64:
		return Uint(value), nil
	case float32:
		return Float(float64(value)), nil
	case float64:
		return Float(value), nil
	case string:
		return String(value), nil
	case []byte:
		return Binary(value), nil
	case big.Int:
		return fromBigInt(&value)
	case *big.Int:
		return fromBigInt(value)
	case time.Time:
		return String(value.Format(time.RFC3339Nano)), nil
	case []any:
		items := make([]Value, len(value))
		for i, element := range value {
			item, err := FromNative(element)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = item
		}
		return Array(items...), nil
	case map[string]any:
		members := make(map[string]Value, len(value))
		for key, element := range value {
			member, err := FromNative(element)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", key, err)
			}
			members[key] = member
		}
		return Object(members), nil
	case map[any]any:
		members := make(map[string]Value, len(value))
		for key, element := range value {
			name := fmt.Sprint(key)
			member, err := FromNative(element)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", name, err)
			}
			members[name] = member
		}
		return Object(members), nil
	case cbor.Tag:
		return Value{}, fmt.Errorf("unsupported CBOR tag %d", value.Number)
	case cbor.SimpleValue:
		return Value{}, fmt.Errorf("unsupported CBOR simple value %d", uint8(value))
	default:
		return Value{}, fmt.Errorf("unsupported value of type %T", native)
	}
}

// fromBigInt accepts bignums that still fit a 64-bit integer.
func fromBigInt(value *big.Int) (Value, error) {
	if value.IsInt64() {
		return Int(value.Int64()), nil
	}
	if value.IsUint64() {
		return Uint(value.Uint64()), nil
	}
	return Value{}, fmt.Errorf("integer %s does not fit in 64 bits", value.String())
}
