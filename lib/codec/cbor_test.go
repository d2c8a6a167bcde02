// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := map[string]any{
		"name":  "lens-a",
		"focal": 2.5,
		"count": uint64(42),
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded map[any]any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded["name"] != "lens-a" {
		t.Errorf("name = %v, want lens-a", decoded["name"])
	}
	if decoded["focal"] != 2.5 {
		t.Errorf("focal = %v, want 2.5", decoded["focal"])
	}
	if decoded["count"] != uint64(42) {
		t.Errorf("count = %v (%T), want uint64 42", decoded["count"], decoded["count"])
	}
}

func TestMarshalDeterministic(t *testing.T) {
	first, err := Marshal(map[string]any{"b": "two", "a": "one", "ccc": 3})
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(map[string]any{"ccc": 3, "a": "one", "b": "two"})
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestMarshalShortestFloat(t *testing.T) {
	// 1.5 fits a half-precision float: 0xf9 0x3e 0x00.
	data, err := Marshal(1.5)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(data, []byte{0xf9, 0x3e, 0x00}) {
		t.Errorf("Marshal(1.5) = %x, want f93e00", data)
	}

	// 0.1 needs all 64 bits.
	data, err = Marshal(0.1)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) != 9 || data[0] != 0xfb {
		t.Errorf("Marshal(0.1) = %x, want a 9-byte double", data)
	}
}

func TestUnmarshalIntegerKeys(t *testing.T) {
	// {1: "a"}
	var decoded any
	if err := Unmarshal([]byte{0xa1, 0x01, 0x61, 0x61}, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	m, ok := decoded.(map[any]any)
	if !ok {
		t.Fatalf("decoded is %T, want map[any]any", decoded)
	}
	if m[uint64(1)] != "a" {
		t.Errorf("m[1] = %v, want a", m[uint64(1)])
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var value any
	if err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &value); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestUnmarshalTrailingBytes(t *testing.T) {
	var value any
	// Two concatenated items: 1, 2.
	if err := Unmarshal([]byte{0x01, 0x02}, &value); err == nil {
		t.Error("Unmarshal should reject trailing bytes after the first item")
	}
}

func TestWellformed(t *testing.T) {
	data, err := Marshal([]any{"x", int64(-1), nil})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := Wellformed(data); err != nil {
		t.Errorf("Wellformed(%x): %v", data, err)
	}
	if err := Wellformed(data[:len(data)-1]); err == nil {
		t.Error("Wellformed should reject truncated data")
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(map[string]any{"kind": "fisheye"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(notation, `"kind"`) || !strings.Contains(notation, `"fisheye"`) {
		t.Errorf("notation %q missing key or value", notation)
	}
}

func BenchmarkMarshal(b *testing.B) {
	value := map[string]any{
		"name":   "lens-a",
		"focal":  2.5,
		"params": []any{1.0, 2.0, 3.0, 4.0},
	}

	b.ReportAllocs()
	for b.Loop() {
		Marshal(value)
	}
}
