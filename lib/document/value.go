// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"fmt"
	"math"
	"slices"
)

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindBinary
	KindArray
	KindObject
)

// String returns the lowercase name of the kind, used in error
// messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt, KindUint:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is one node of a document tree. The zero Value is null.
//
// Values are immutable by convention: constructors take ownership of
// the slices and maps passed to them, and accessors return the backing
// storage without copying. Callers that need to modify a tree build a
// new one.
type Value struct {
	kind     Kind
	boolean  bool
	integer  int64
	unsigned uint64
	float    float64
	text     string
	binary   []byte
	items    []Value
	members  map[string]Value
}

// Member is a key/value pair used by [ObjectOf].
type Member struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Int returns a signed integer value.
func Int(i int64) Value { return Value{kind: KindInt, integer: i} }

// Uint returns an integer value. Values that fit in int64 are stored
// as [KindInt] so that the same number always has the same kind
// regardless of which encoding it came from.
func Uint(u uint64) Value {
	if u <= math.MaxInt64 {
		return Int(int64(u))
	}
	return Value{kind: KindUint, unsigned: u}
}

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, float: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Binary returns a byte-string value. Byte strings only occur in the
// binary encoding; the text encoding renders them as an object.
func Binary(b []byte) Value {
	if b == nil {
		b = []byte{}
	}
	return Value{kind: KindBinary, binary: b}
}

// Array returns a sequence value holding items in order.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

// Object returns a mapping value. The map is owned by the returned
// Value.
func Object(members map[string]Value) Value {
	if members == nil {
		members = map[string]Value{}
	}
	return Value{kind: KindObject, members: members}
}

// ObjectOf returns a mapping value built from pairs. A repeated key
// keeps the last value.
func ObjectOf(pairs ...Member) Value {
	members := make(map[string]Value, len(pairs))
	for _, pair := range pairs {
		members[pair.Key] = pair.Value
	}
	return Value{kind: KindObject, members: members}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsNumber reports whether v is an integer or a float.
func (v Value) IsNumber() bool {
	return v.kind == KindInt || v.kind == KindUint || v.kind == KindFloat
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// AsInt returns v as an int64. Floats are not converted; unsigned
// values above math.MaxInt64 do not fit.
func (v Value) AsInt() (int64, bool) {
	return v.integer, v.kind == KindInt
}

// AsUint returns v as a uint64 if it is a non-negative integer.
func (v Value) AsUint() (uint64, bool) {
	switch v.kind {
	case KindUint:
		return v.unsigned, true
	case KindInt:
		if v.integer >= 0 {
			return uint64(v.integer), true
		}
	}
	return 0, false
}

// AsFloat returns the float held by v. Integers are not converted;
// use [Value.AsNumber] for that.
func (v Value) AsFloat() (float64, bool) {
	return v.float, v.kind == KindFloat
}

// AsNumber returns any numeric variant as a float64.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.integer), true
	case KindUint:
		return float64(v.unsigned), true
	case KindFloat:
		return v.float, true
	default:
		return 0, false
	}
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.text, v.kind == KindString
}

// AsBinary returns the byte string held by v.
func (v Value) AsBinary() ([]byte, bool) {
	return v.binary, v.kind == KindBinary
}

// Len returns the number of items of an array or members of an
// object, and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Items returns the elements of an array, or nil for other kinds.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.items
}

// Index returns element i of an array. Out-of-range indexes and
// non-arrays return null.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.items) {
		return Null()
	}
	return v.items[i]
}

// Lookup returns the member stored under key. The second result is
// false when v is not an object or has no such key.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	member, ok := v.members[key]
	return member, ok
}

// Keys returns the member keys of an object in sorted order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.members))
	for key := range v.members {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Equal reports whether v and other are structurally identical: same
// kind and same value at every node. Object member order is
// irrelevant. Floats compare by bit pattern, except that any two NaNs
// are equal, so -0.0 and 0.0 differ.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindInt:
		return v.integer == other.integer
	case KindUint:
		return v.unsigned == other.unsigned
	case KindFloat:
		if math.IsNaN(v.float) && math.IsNaN(other.float) {
			return true
		}
		return math.Float64bits(v.float) == math.Float64bits(other.float)
	case KindString:
		return v.text == other.text
	case KindBinary:
		return bytes.Equal(v.binary, other.binary)
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(other.members) {
			return false
		}
		for key, member := range v.members {
			otherMember, ok := other.members[key]
			if !ok || !member.Equal(otherMember) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders v as compact JSON. Intended for logs and test
// failure messages.
func (v Value) String() string {
	var buffer bytes.Buffer
	if err := encodeJSON(&buffer, v, ""); err != nil {
		return fmt.Sprintf("<invalid document: %v>", err)
	}
	return string(bytes.TrimRight(buffer.Bytes(), "\n"))
}
