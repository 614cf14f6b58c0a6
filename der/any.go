// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "fmt"

// Any is a DER value captured without interpreting its contents. It is the
// escape hatch for ANY fields and for formats that carry values whose type
// depends on a sibling field, such as the parameters of an
// AlgorithmIdentifier.
//
// An Any can be re-encoded verbatim or narrowed to a concrete type with
// Decode once the expected type is known.
type Any struct {
	tag   Tag
	value []byte
}

// NewAny returns an Any with the given tag and contents octets. The
// contents are not copied and not validated against the tag.
func NewAny(tag Tag, value []byte) Any {
	return Any{tag: tag, value: value}
}

// Any captures the value at the cursor without interpreting its contents
// and advances past it. The identifier and length octets are still fully
// validated, so hostile framing cannot hide behind an ANY field.
func (d *Decoder) Any() (Any, error) {
	h, err := d.ReadHeader()
	if err != nil {
		return Any{}, err
	}
	value, err := d.ReadBytes(h.Length)
	if err != nil {
		return Any{}, err
	}
	return Any{tag: h.Tag, value: value}, nil
}

// Tag returns the tag of the captured value.
func (a Any) Tag() Tag {
	return a.tag
}

// Bytes returns the contents octets of the captured value. The returned
// slice aliases the buffer the value was captured from.
func (a Any) Bytes() []byte {
	return a.value
}

// ValueLen returns the number of contents octets of the captured value.
func (a Any) ValueLen() (int, error) {
	return len(a.value), nil
}

// EncodeValue writes the captured contents octets verbatim, reproducing the
// original encoding exactly.
func (a Any) EncodeValue(e *Encoder) error {
	return e.WriteBytes(a.value)
}

// Decode decodes the captured value into v, applying all of v's contents
// validation. It fails with ErrUnexpectedTag if the captured tag differs
// from v's tag. Offsets in errors returned by Decode are relative to the
// start of the captured contents.
func (a Any) Decode(v Decodable) error {
	if a.tag != v.Tag() {
		return &Error{
			Kind:   ErrUnexpectedTag,
			Offset: -1,
			Err:    fmt.Errorf("expected %s, got %s", v.Tag(), a.tag),
		}
	}
	d := &Decoder{buf: a.value, end: len(a.value)}
	if err := v.DecodeValue(d, len(a.value)); err != nil {
		return err
	}
	return d.Finish()
}
