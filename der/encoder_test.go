// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncoderEncode(t *testing.T) {
	buf := make([]byte, 16)
	e := NewEncoder(buf)
	if err := e.Encode(Int(127)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := e.Encode(Boolean(true)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := []byte{0x02, 0x01, 0x7F, 0x01, 0x01, 0xFF}
	if !bytes.Equal(e.Finish(), want) {
		t.Errorf("Finish() = %X, want %X", e.Finish(), want)
	}
	if e.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", e.Len(), len(want))
	}
}

func TestEncoderBufferTooSmall(t *testing.T) {
	tests := map[string]struct {
		size  int
		value Encodable
	}{
		"NoRoomForTag":      {0, Null{}},
		"NoRoomForLength":   {1, Null{}},
		"NoRoomForContents": {2, Int(127)},
		"ContentsCutOff":    {4, OctetString("abc")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := NewEncoder(make([]byte, tt.size)).Encode(tt.value)
			if !errors.Is(err, ErrBufferTooSmall) {
				t.Errorf("Encode() error = %v, want %v", err, ErrBufferTooSmall)
			}
		})
	}
}

// lyingValue declares three contents octets but writes only two.
type lyingValue struct{}

func (lyingValue) Tag() Tag {
	return TagOctetString
}

func (lyingValue) ValueLen() (int, error) {
	return 3, nil
}

func (lyingValue) EncodeValue(e *Encoder) error {
	return e.WriteBytes([]byte{0xAA, 0xBB})
}

func TestEncoderChecksDeclaredLength(t *testing.T) {
	err := NewEncoder(make([]byte, 8)).Encode(lyingValue{})
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Encode() error = %v, want %v", err, ErrInvalidLength)
	}
}

func TestEncoderEncodedLen(t *testing.T) {
	tests := map[string]struct {
		value Encodable
		want  int
	}{
		"Null":        {Null{}, 2},
		"Int":         {Int(127), 3},
		"OctetString": {OctetString(make([]byte, 128)), 131},
		"Sequence":    {Sequence(Int(127)), 5},
		"Explicit":    {Explicit(0, Int(127)), 5},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := EncodedLen(tt.value)
			if err != nil {
				t.Fatalf("EncodedLen() error = %v", err)
			}
			if n != tt.want {
				t.Errorf("EncodedLen() = %d, want %d", n, tt.want)
			}
			enc, err := Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if len(enc) != n {
				t.Errorf("Marshal() wrote %d octets, EncodedLen() = %d", len(enc), n)
			}
		})
	}
}
