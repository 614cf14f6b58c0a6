// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"errors"
)

// Set returns an Encodable SET OF with the given elements. DER requires the
// encoded elements to appear in ascending octet order; the encoder orders
// them regardless of the order they are given in. See Rec. ITU-T X.690,
// Section 11.6.
func Set(elems ...Encodable) Encodable {
	return setValue(elems)
}

type setValue []Encodable

func (setValue) Tag() Tag {
	return TagSet
}

func (s setValue) ValueLen() (int, error) {
	return SequenceValueLen(s...)
}

// EncodeValue encodes the elements and orders them in place. Each element
// is written at the end of the contents written so far and then rotated
// backwards into its ordered position, so no scratch buffer is needed.
func (s setValue) EncodeValue(e *Encoder) error {
	start := e.pos
	for _, el := range s {
		elStart := e.pos
		if err := e.Encode(el); err != nil {
			return err
		}
		insertSetElement(e.buf[start:e.pos], elStart-start)
	}
	return nil
}

// insertSetElement moves the element beginning at offset el into its
// ordered position among the ordered elements before it.
func insertSetElement(region []byte, el int) {
	cur := region[el:]
	pos := 0
	for pos < el {
		next := pos + encodedSize(region[pos:])
		if bytes.Compare(region[pos:next], cur) > 0 {
			break
		}
		pos = next
	}
	if pos < el {
		rotateLeft(region[pos:], el-pos)
	}
}

// encodedSize returns the size of the complete encoded value at the
// beginning of b. It panics if b does not start with one; callers only use
// it on octets this package has already produced.
func encodedSize(b []byte) int {
	d := Decoder{buf: b, end: len(b)}
	h, err := d.ReadHeader()
	if err != nil {
		panic("unreachable")
	}
	return h.EncodedLen() + h.Length
}

// rotateLeft rotates b left by k octets using the three-reversal identity.
func rotateLeft(b []byte, k int) {
	reverse(b[:k])
	reverse(b[k:])
	reverse(b)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// SetOf decodes the SET OF at the cursor, calling fn once per element until
// the contents octets are exhausted. fn must decode exactly one element per
// call. Elements whose encodings are not in ascending octet order are
// reported as ErrNonCanonical.
func (d *Decoder) SetOf(fn func(*Decoder) error) error {
	return d.nestedWithTag(TagSet, func(d *Decoder) error {
		var prev []byte
		for d.More() {
			pos := d.pos
			if err := fn(d); err != nil {
				return err
			}
			if d.pos <= pos {
				panic("der: SetOf element callback consumed no input")
			}
			cur := d.buf[pos:d.pos]
			if prev != nil && bytes.Compare(cur, prev) < 0 {
				return &Error{Kind: ErrNonCanonical, Offset: pos, Err: errors.New("SET OF elements are not in ascending order")}
			}
			prev = cur
		}
		return nil
	})
}

// SetOf decodes the SET OF at the cursor into a freshly allocated slice,
// preserving the encoded order.
func SetOf[T any, PT decodablePtr[T]](d *Decoder) ([]T, error) {
	var elems []T
	err := d.SetOf(func(d *Decoder) error {
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
