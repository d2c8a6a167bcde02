// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseJSONKinds(t *testing.T) {
	input := `{"int": 1, "neg": -2, "float": 1.5, "exp": 1e3, "str": "x", "null": null,
		"yes": true, "no": false, "list": [1, "a"], "empty": {}, "big": 18446744073709551615,
		"bigger": 18446744073709551616}`

	v, err := ParseJSON(strings.NewReader(input))
	require.NoError(t, err)

	kinds := map[string]Kind{
		"int":    KindInt,
		"neg":    KindInt,
		"float":  KindFloat,
		"exp":    KindFloat,
		"str":    KindString,
		"null":   KindNull,
		"yes":    KindBool,
		"no":     KindBool,
		"list":   KindArray,
		"empty":  KindObject,
		"big":    KindUint,
		"bigger": KindFloat,
	}
	require.Equal(t, len(kinds), v.Len())
	for key, want := range kinds {
		member, ok := v.Lookup(key)
		require.True(t, ok, "missing key %q", key)
		require.Equal(t, want, member.Kind(), "key %q", key)
	}

	exp, _ := v.Lookup("exp")
	require.True(t, exp.Equal(Float(1000)))
}

func TestParseJSONNestedObjectKeys(t *testing.T) {
	// Each key has to survive the decoder calls made for its value.
	v, err := ParseJSONBytes([]byte(`{"i": 100, "s": "AAA",
		"outer": {"inner": [1, {"k": "v"}], "next": {"deep": {}}}, "after": 2}`))
	require.NoError(t, err)

	want := ObjectOf(
		Member{"i", Int(100)},
		Member{"s", String("AAA")},
		Member{"outer", ObjectOf(
			Member{"inner", Array(Int(1), ObjectOf(Member{"k", String("v")}))},
			Member{"next", ObjectOf(Member{"deep", Object(nil)})},
		)},
		Member{"after", Int(2)},
	)
	require.True(t, v.Equal(want), "got %v", v)
	require.Equal(t, []string{"after", "i", "outer", "s"}, v.Keys())
}

func TestParseJSONDuplicateKeysKeepLast(t *testing.T) {
	v, err := ParseJSONBytes([]byte(`{"a": 1, "a": 2}`))
	require.NoError(t, err)
	require.True(t, v.Equal(ObjectOf(Member{"a", Int(2)})))
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "  \n"},
		{"truncated object", `{"a": 1`},
		{"trailing value", `{"a": 1} {"b": 2}`},
		{"trailing garbage", `[1] x`},
		{"bare word", `nope`},
		{"float overflow", `1e400`},
		{"single quotes", `{'a': 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON(strings.NewReader(tt.input))
			require.Error(t, err)
		})
	}
}

func TestParseJSONEmptyInputIsUnexpectedEOF(t *testing.T) {
	_, err := ParseJSON(strings.NewReader(""))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestParseJSONNarrowFloats(t *testing.T) {
	input := `{"f": 0.1, "i": 16777217, "nested": [[3.141592653589793]]}`

	wide, err := ParseJSONBytes([]byte(input))
	require.NoError(t, err)
	narrow, err := ParseJSONBytes([]byte(input), NarrowFloats())
	require.NoError(t, err)

	f, _ := narrow.Lookup("f")
	value, ok := f.AsFloat()
	require.True(t, ok)
	require.Equal(t, float64(float32(0.1)), value)
	require.NotEqual(t, 0.1, value)

	i, _ := narrow.Lookup("i")
	require.True(t, i.Equal(Int(16777217)), "integer leaves stay exact, got %v", i)

	nested, _ := narrow.Lookup("nested")
	pi, _ := nested.Index(0).Index(0).AsFloat()
	require.Equal(t, float64(float32(math.Pi)), pi)

	require.True(t, narrow.Equal(wide.Narrow()))
}

func TestNarrowFloatsIdempotentThroughText(t *testing.T) {
	input := []byte(`{"a": [0.1, 0.2, 0.30000000000000004], "b": 123.456}`)

	once, err := ParseJSONBytes(input, NarrowFloats())
	require.NoError(t, err)

	text, err := MarshalJSON(once)
	require.NoError(t, err)

	twice, err := ParseJSONBytes(text, NarrowFloats())
	require.NoError(t, err)
	require.True(t, once.Equal(twice), "once=%v twice=%v", once, twice)
}

func TestWriteJSONFormat(t *testing.T) {
	v := ObjectOf(
		Member{"name", String("lens")},
		Member{"coefficients", Array(Int(1), Float(2), Float(0.5))},
		Member{"empty", Array()},
		Member{"meta", Object(nil)},
		Member{"enabled", Bool(true)},
		Member{"parent", Null()},
	)

	var buffer bytes.Buffer
	require.NoError(t, WriteJSON(&buffer, v))

	want := `{
    "coefficients": [
        1,
        2.0,
        0.5
    ],
    "empty": [],
    "enabled": true,
    "meta": {},
    "name": "lens",
    "parent": null
}
`
	require.Equal(t, want, buffer.String())
}

func TestWriteJSONScalarTopLevel(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, WriteJSON(&buffer, Int(5)))
	require.Equal(t, "5\n", buffer.String())
}

func TestWriteJSONNonFiniteFloats(t *testing.T) {
	v := Array(Float(math.Inf(1)), Float(math.NaN()))
	require.Equal(t, `[null,null]`, v.String())
}

func TestWriteJSONBinary(t *testing.T) {
	v := Binary([]byte{1, 255})
	require.Equal(t, `{"bytes":[1,255],"subtype":null}`, v.String())
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{1, "1.0"},
		{-2, "-2.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{0.1, "0.1"},
		{123.456, "123.456"},
		{1e20, "100000000000000000000.0"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{1.5e-10, "1.5e-10"},
		{float64(float32(0.1)), "0.10000000149011612"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, formatFloat(tt.input))
		})
	}
}

// roundTripDocuments covers every variant that both encodings can
// carry.
func roundTripDocuments() map[string]Value {
	return map[string]Value{
		"null":       Null(),
		"scalars":    Array(Bool(true), Bool(false), Int(0), Int(-1), Int(math.MinInt64), Int(math.MaxInt64)),
		"max uint":   Uint(math.MaxUint64),
		"floats":     Array(Float(0.1), Float(-2.5), Float(1e300), Float(5e-324), Float(3), Float(math.Copysign(0, -1))),
		"strings":    Array(String(""), String("日本語"), String("quote \" and \\ backslash"), String("tab\tnewline\n")),
		"empty":      ObjectOf(Member{"a", Array()}, Member{"o", Object(nil)}),
		"nested":     ObjectOf(Member{"outer", ObjectOf(Member{"inner", Array(Int(1), ObjectOf(Member{"deep", Float(1.25)}))})}),
		"many keys":  ObjectOf(Member{"zeta", Int(1)}, Member{"alpha", Int(2)}, Member{"mid", Int(3)}, Member{"", Null()}),
		"top string": String("just a string"),
	}
}

func TestRoundTripText(t *testing.T) {
	for name, original := range roundTripDocuments() {
		t.Run(name, func(t *testing.T) {
			text, err := MarshalJSON(original)
			require.NoError(t, err)

			decoded, err := ParseJSONBytes(text)
			require.NoError(t, err)
			require.True(t, original.Equal(decoded), "text:\n%s\ndecoded: %v", text, decoded)
		})
	}
}
