// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as strings, like `"-12345678901234567890"`.
	// Safe for consumers, that decode json numbers into float64.
	JSONModeString = iota
	// JSONModeNumber produces values as json numbers, like `-12345678901234567890`.
	JSONModeNumber
)

var (
	errNotInteger = errors.New("decimal has a fractional part")
	jsonNull      = []byte("null")
)

// MarshalJSON marshals value according to current JSONMode.
func (x Int) MarshalJSON() ([]byte, error) {
	return x.toJSON(JSONMode), nil
}

func (x Int) toJSON(mode int) []byte {
	buf := make([]byte, 0, x.decimalLen()+3)
	if mode == JSONModeNumber {
		return x.AppendTo(buf)
	}
	buf = append(buf, '"')
	buf = x.AppendTo(buf)
	return append(buf, '"')
}

// UnmarshalJSON accepts both a json string and a json number.
// null leaves z unchanged.
func (z *Int) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	v, err := FromString(string(data))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return x.AppendTo(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) error {
	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// EncodeMsgpack encodes x as a msgpack string holding its decimal representation.
func (x Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(x.String())
}

// DecodeMsgpack decodes a value written by EncodeMsgpack.
func (z *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := FromString(s)
	if err != nil {
		return fmt.Errorf("msgpack: %w", err)
	}
	*z = v
	return nil
}

// Decimal returns x as a decimal.Decimal with a zero exponent.
func (x Int) Decimal() decimal.Decimal {
	// x.String() is always a valid decimal.
	return decimal.RequireFromString(x.String())
}

// FromDecimal returns the value of an integral decimal.Decimal.
// Returns an error, if d has a non-zero fractional part.
func FromDecimal(d decimal.Decimal) (Int, error) {
	integ := d.Truncate(0)
	if !integ.Equal(d) {
		return zero, fmt.Errorf("converting %s: %w", d.String(), errNotInteger)
	}
	return FromString(integ.String())
}
