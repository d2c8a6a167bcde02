// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// Indent is the indentation unit of the text encoding.
const Indent = "    "

// ParseOption configures [ParseJSON].
type ParseOption func(*parser)

// NarrowFloats makes the parser replace every floating-point leaf with
// its 32-bit equivalent as the leaf is read. Integer literals are not
// affected.
func NarrowFloats() ParseOption {
	return func(p *parser) {
		p.narrow = true
	}
}

type parser struct {
	decoder *jsontext.Decoder
	narrow  bool
}

// ParseJSON reads exactly one JSON value from r. Anything other than
// whitespace after the value is an error. Duplicate object keys keep
// the last value.
func ParseJSON(r io.Reader, options ...ParseOption) (Value, error) {
	p := &parser{
		decoder: jsontext.NewDecoder(r, jsontext.AllowDuplicateNames(true)),
	}
	for _, option := range options {
		option(p)
	}

	value, err := p.value()
	if err != nil {
		if err == io.EOF {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}

	if _, err := p.decoder.ReadToken(); !errors.Is(err, io.EOF) {
		if err == nil {
			return Value{}, fmt.Errorf("unexpected data after top-level value at offset %d", p.decoder.InputOffset())
		}
		return Value{}, err
	}
	return value, nil
}

// ParseJSONBytes is [ParseJSON] over an in-memory buffer.
func ParseJSONBytes(data []byte, options ...ParseOption) (Value, error) {
	return ParseJSON(bytes.NewReader(data), options...)
}

func (p *parser) value() (Value, error) {
	token, err := p.decoder.ReadToken()
	if err != nil {
		return Value{}, err
	}

	switch token.Kind() {
	case 'n':
		return Null(), nil
	case 't', 'f':
		return Bool(token.Bool()), nil
	case '"':
		return String(token.String()), nil
	case '0':
		return p.number(token.String())
	case '[':
		return p.array()
	case '{':
		return p.object()
	default:
		return Value{}, fmt.Errorf("unexpected token %v at offset %d", token.Kind(), p.decoder.InputOffset())
	}
}

// number classifies a numeric literal. Literals without a fraction or
// exponent are integers when they fit int64 or uint64; everything
// else is a float.
func (p *parser) number(literal string) (Value, error) {
	if !strings.ContainsAny(literal, ".eE") {
		if integer, err := strconv.ParseInt(literal, 10, 64); err == nil {
			return Int(integer), nil
		}
		if unsigned, err := strconv.ParseUint(literal, 10, 64); err == nil {
			return Uint(unsigned), nil
		}
	}

	float, err := strconv.ParseFloat(literal, 64)
	if err != nil && math.IsInf(float, 0) {
		return Value{}, fmt.Errorf("number %s overflows float64", literal)
	}
	if p.narrow {
		float = NarrowFloat(float)
	}
	return Float(float), nil
}

func (p *parser) array() (Value, error) {
	items := []Value{}
	for p.decoder.PeekKind() != ']' {
		item, err := p.value()
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	if _, err := p.decoder.ReadToken(); err != nil {
		return Value{}, err
	}
	return Array(items...), nil
}

func (p *parser) object() (Value, error) {
	members := map[string]Value{}
	for p.decoder.PeekKind() != '}' {
		keyToken, err := p.decoder.ReadToken()
		if err != nil {
			return Value{}, err
		}
		// The token is voided by the next decoder call.
		key := keyToken.String()
		member, err := p.value()
		if err != nil {
			return Value{}, err
		}
		members[key] = member
	}
	if _, err := p.decoder.ReadToken(); err != nil {
		return Value{}, err
	}
	return Object(members), nil
}

// WriteJSON writes v to w as indented JSON followed by a newline.
// Object keys are sorted.
func WriteJSON(w io.Writer, v Value) error {
	var buffer bytes.Buffer
	if err := encodeJSON(&buffer, v, Indent); err != nil {
		return err
	}
	output := append(bytes.TrimRight(buffer.Bytes(), "\n"), '\n')
	_, err := w.Write(output)
	return err
}

// MarshalJSON returns the text encoding of v as a byte slice.
func MarshalJSON(v Value) ([]byte, error) {
	var buffer bytes.Buffer
	if err := WriteJSON(&buffer, v); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func encodeJSON(w io.Writer, v Value, indent string) error {
	var options []jsontext.Options
	if indent != "" {
		options = append(options, jsontext.WithIndent(indent), jsontext.SpaceAfterColon(true))
	}
	encoder := jsontext.NewEncoder(w, options...)
	return writeValue(encoder, v)
}

func writeValue(encoder *jsontext.Encoder, v Value) error {
	switch v.kind {
	case KindNull:
		return encoder.WriteToken(jsontext.Null)
	case KindBool:
		return encoder.WriteToken(jsontext.Bool(v.boolean))
	case KindInt:
		return encoder.WriteToken(jsontext.Int(v.integer))
	case KindUint:
		return encoder.WriteToken(jsontext.Uint(v.unsigned))
	case KindFloat:
		if math.IsNaN(v.float) || math.IsInf(v.float, 0) {
			return encoder.WriteToken(jsontext.Null)
		}
		return encoder.WriteValue(jsontext.Value(formatFloat(v.float)))
	case KindString:
		return encoder.WriteToken(jsontext.String(v.text))
	case KindBinary:
		return writeBinary(encoder, v.binary)
	case KindArray:
		if err := encoder.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, item := range v.items {
			if err := writeValue(encoder, item); err != nil {
				return err
			}
		}
		return encoder.WriteToken(jsontext.EndArray)
	case KindObject:
		if err := encoder.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, key := range v.Keys() {
			if err := encoder.WriteToken(jsontext.String(key)); err != nil {
				return err
			}
			if err := writeValue(encoder, v.members[key]); err != nil {
				return err
			}
		}
		return encoder.WriteToken(jsontext.EndObject)
	default:
		return fmt.Errorf("cannot encode %v as JSON", v.kind)
	}
}

// writeBinary renders a byte string as {"bytes": [...], "subtype": null}.
func writeBinary(encoder *jsontext.Encoder, data []byte) error {
	tokens := []jsontext.Token{jsontext.BeginObject, jsontext.String("bytes"), jsontext.BeginArray}
	for _, b := range data {
		tokens = append(tokens, jsontext.Uint(uint64(b)))
	}
	tokens = append(tokens, jsontext.EndArray, jsontext.String("subtype"), jsontext.Null, jsontext.EndObject)
	for _, token := range tokens {
		if err := encoder.WriteToken(token); err != nil {
			return err
		}
	}
	return nil
}

// formatFloat produces the shortest literal that parses back to f and
// is still recognizably a float: integral values keep a ".0" suffix.
// Very large and very small magnitudes use exponent form.
func formatFloat(f float64) string {
	magnitude := math.Abs(f)
	format := byte('f')
	if magnitude != 0 && (magnitude < 1e-6 || magnitude >= 1e21) {
		format = 'e'
	}

	literal := strconv.FormatFloat(f, format, -1, 64)
	if format == 'e' {
		// e-07 -> e-7
		n := len(literal)
		if n >= 4 && literal[n-4] == 'e' && literal[n-3] == '-' && literal[n-2] == '0' {
			literal = literal[:n-2] + literal[n-1:]
		}
		return literal
	}
	if !strings.ContainsRune(literal, '.') {
		literal += ".0"
	}
	return literal
}
