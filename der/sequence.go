// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "fmt"

// Sequence returns an Encodable SEQUENCE whose contents octets are the
// encodings of the given fields in order.
func Sequence(fields ...Encodable) Encodable {
	return sequenceValue(fields)
}

type sequenceValue []Encodable

func (sequenceValue) Tag() Tag {
	return TagSequence
}

func (s sequenceValue) ValueLen() (int, error) {
	return SequenceValueLen(s...)
}

func (s sequenceValue) EncodeValue(e *Encoder) error {
	return EncodeSequenceValue(e, s...)
}

// SequenceValueLen returns the number of contents octets of a SEQUENCE with
// the given fields. Use it to implement ValueLen of SEQUENCE types.
func SequenceValueLen(fields ...Encodable) (int, error) {
	total := 0
	for _, f := range fields {
		n, err := EncodedLen(f)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// EncodeSequenceValue encodes the given fields in order. Use it to
// implement EncodeValue of SEQUENCE types.
func EncodeSequenceValue(e *Encoder, fields ...Encodable) error {
	for _, f := range fields {
		if err := e.Encode(f); err != nil {
			return err
		}
	}
	return nil
}

// Sequence decodes the SEQUENCE at the cursor, calling fn with a decoder
// scoped to its contents octets. fn must consume the scope exactly;
// leftover octets are reported as ErrTrailingData.
func (d *Decoder) Sequence(fn func(*Decoder) error) error {
	return d.nestedWithTag(TagSequence, fn)
}

// SequenceOf decodes the SEQUENCE OF at the cursor, calling fn once per
// element until the contents octets are exhausted. fn must decode exactly
// one element per call.
func (d *Decoder) SequenceOf(fn func(*Decoder) error) error {
	return d.nestedWithTag(TagSequence, func(d *Decoder) error {
		for d.More() {
			pos := d.pos
			if err := fn(d); err != nil {
				return err
			}
			if d.pos <= pos {
				panic("der: SequenceOf element callback consumed no input")
			}
		}
		return nil
	})
}

// SequenceOf decodes the SEQUENCE OF at the cursor into a freshly allocated
// slice. It is a convenience for callers that prefer a slice over streaming
// elements through Decoder.SequenceOf.
func SequenceOf[T any, PT decodablePtr[T]](d *Decoder) ([]T, error) {
	var elems []T
	err := d.SequenceOf(func(d *Decoder) error {
		var v T
		if err := d.Decode(PT(&v)); err != nil {
			return err
		}
		elems = append(elems, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return elems, nil
}

// nestedWithTag reads a header, checks its tag and runs fn on the contents
// octets.
func (d *Decoder) nestedWithTag(tag Tag, fn func(*Decoder) error) error {
	start := d.pos
	h, err := d.ReadHeader()
	if err != nil {
		return err
	}
	if h.Tag != tag {
		return &Error{Kind: ErrUnexpectedTag, Offset: start, Err: fmt.Errorf("expected %s, got %s", tag, h.Tag)}
	}
	return d.Nested(h.Length, fn)
}
