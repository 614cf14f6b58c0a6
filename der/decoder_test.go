// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"
	"testing"
)

func TestDecoderNested(t *testing.T) {
	t.Run("ExactConsumption", func(t *testing.T) {
		// SEQUENCE { INTEGER 7 }
		input := []byte{0x30, 0x03, 0x02, 0x01, 0x07}
		d := NewDecoder(input)
		var i Int
		err := d.Sequence(func(d *Decoder) error {
			return d.Decode(&i)
		})
		if err != nil {
			t.Fatalf("Sequence() error = %v", err)
		}
		if i != 7 {
			t.Errorf("decoded %d, want 7", i)
		}
		if err := d.Finish(); err != nil {
			t.Errorf("Finish() error = %v", err)
		}
	})

	t.Run("LeftoverOctets", func(t *testing.T) {
		// SEQUENCE { INTEGER 7, BOOLEAN true, one stray octet }
		input := []byte{0x30, 0x07, 0x02, 0x01, 0x07, 0x01, 0x01, 0xFF, 0xAA}
		d := NewDecoder(input)
		err := d.Sequence(func(d *Decoder) error {
			var i Int
			if err := d.Decode(&i); err != nil {
				return err
			}
			var b Boolean
			return d.Decode(&b)
		})
		if !errors.Is(err, ErrTrailingData) {
			t.Fatalf("Sequence() error = %v, want %v", err, ErrTrailingData)
		}
		var derr *Error
		if !errors.As(err, &derr) || derr.Offset != 8 {
			t.Errorf("error offset = %+v, want offset 8", err)
		}
	})

	t.Run("InnerValueCannotEscapeScope", func(t *testing.T) {
		// The inner OCTET STRING declares 5 contents octets, but its
		// enclosing SEQUENCE only has 1 left. The octets after the
		// SEQUENCE must stay out of reach.
		input := []byte{0x30, 0x03, 0x04, 0x05, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
		d := NewDecoder(input)
		err := d.Sequence(func(d *Decoder) error {
			var s OctetString
			return d.Decode(&s)
		})
		if !errors.Is(err, ErrIncomplete) {
			t.Fatalf("Sequence() error = %v, want %v", err, ErrIncomplete)
		}
	})

	t.Run("AbsoluteOffsets", func(t *testing.T) {
		input := []byte{0x30, 0x03, 0x02, 0x01, 0x07}
		d := NewDecoder(input)
		_ = d.Sequence(func(d *Decoder) error {
			if d.Offset() != 2 {
				t.Errorf("nested Offset() = %d, want 2", d.Offset())
			}
			var i Int
			return d.Decode(&i)
		})
	})
}

func TestDecoderReadBytes(t *testing.T) {
	input := []byte{0x04, 0x03, 0xAA, 0xBB, 0xCC}
	d := NewDecoder(input)
	h, err := d.ReadHeader()
	if err != nil {
		t.Fatalf("ReadHeader() error = %v", err)
	}
	bs, err := d.ReadBytes(h.Length)
	if err != nil {
		t.Fatalf("ReadBytes() error = %v", err)
	}
	// The contents are a view into the input, not a copy.
	if &bs[0] != &input[2] {
		t.Error("ReadBytes() copied the contents")
	}
	if _, err := d.ReadBytes(1); !errors.Is(err, ErrIncomplete) {
		t.Errorf("ReadBytes() past the end: error = %v, want %v", err, ErrIncomplete)
	}
}

func TestDecoderDecode(t *testing.T) {
	t.Run("TagMismatch", func(t *testing.T) {
		var b Boolean
		err := NewDecoder([]byte{0x02, 0x01, 0x07}).Decode(&b)
		if !errors.Is(err, ErrUnexpectedTag) {
			t.Fatalf("Decode() error = %v, want %v", err, ErrUnexpectedTag)
		}
	})

	t.Run("ValueMustConsumeScope", func(t *testing.T) {
		var h halfConsumer
		err := NewDecoder([]byte{0x04, 0x04, 0xAA, 0xBB, 0xCC, 0xDD}).Decode(&h)
		if !errors.Is(err, ErrTrailingData) {
			t.Fatalf("Decode() error = %v, want %v", err, ErrTrailingData)
		}
	})
}

// halfConsumer decodes like an OCTET STRING but leaves half of its contents
// octets unread, violating the Decodable contract.
type halfConsumer struct{}

func (halfConsumer) Tag() Tag {
	return TagOctetString
}

func (*halfConsumer) DecodeValue(d *Decoder, length int) error {
	_, err := d.ReadBytes(length / 2)
	return err
}

func TestDecoderCursor(t *testing.T) {
	d := NewDecoder([]byte{0x05, 0x00, 0x05, 0x00})
	if d.Len() != 4 || !d.More() {
		t.Fatalf("fresh decoder: Len() = %d, More() = %t", d.Len(), d.More())
	}
	var n Null
	if err := d.Decode(&n); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if d.Len() != 2 || d.Offset() != 2 {
		t.Errorf("after one value: Len() = %d, Offset() = %d", d.Len(), d.Offset())
	}
	if err := d.Finish(); !errors.Is(err, ErrTrailingData) {
		t.Errorf("Finish() with input left: error = %v, want %v", err, ErrTrailingData)
	}
	if err := d.Decode(&n); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if d.More() {
		t.Error("More() = true after consuming everything")
	}
	if err := d.Finish(); err != nil {
		t.Errorf("Finish() error = %v", err)
	}
}
