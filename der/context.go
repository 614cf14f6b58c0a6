// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// Explicit wraps v in a constructed context-specific tag with the given
// number, keeping v's own identifier and length octets inside. This is
// ASN.1 EXPLICIT tagging.
func Explicit(number uint, v Encodable) Encodable {
	return explicitValue{number: number, inner: v}
}

type explicitValue struct {
	number uint
	inner  Encodable
}

func (v explicitValue) Tag() Tag {
	return ContextSpecific(v.number, true)
}

func (v explicitValue) ValueLen() (int, error) {
	return EncodedLen(v.inner)
}

func (v explicitValue) EncodeValue(e *Encoder) error {
	return e.Encode(v.inner)
}

// Implicit re-tags v with a context-specific tag with the given number,
// keeping only v's contents octets. This is ASN.1 IMPLICIT tagging. The
// constructed bit of v's own tag carries over.
func Implicit(number uint, v Encodable) Encodable {
	return implicitValue{number: number, inner: v}
}

type implicitValue struct {
	number uint
	inner  Encodable
}

func (v implicitValue) Tag() Tag {
	return ContextSpecific(v.number, v.inner.Tag().Constructed)
}

func (v implicitValue) ValueLen() (int, error) {
	return v.inner.ValueLen()
}

func (v implicitValue) EncodeValue(e *Encoder) error {
	return v.inner.EncodeValue(e)
}

// OptionalExplicit decodes the EXPLICIT context-tagged field with the given
// number into a new T if it is present at the cursor, and returns nil
// without advancing otherwise.
func OptionalExplicit[T any, PT decodablePtr[T]](d *Decoder, number uint) (*T, error) {
	if !d.More() {
		return nil, nil
	}
	tag, err := d.PeekTag()
	if err != nil {
		return nil, err
	}
	if tag != ContextSpecific(number, true) {
		return nil, nil
	}
	h, err := d.ReadHeader()
	if err != nil {
		return nil, err
	}
	var v T
	err = d.Nested(h.Length, func(d *Decoder) error {
		return d.Decode(PT(&v))
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptionalImplicit decodes the IMPLICIT context-tagged field with the given
// number into a new T if it is present at the cursor, and returns nil
// without advancing otherwise.
func OptionalImplicit[T any, PT decodablePtr[T]](d *Decoder, number uint) (*T, error) {
	if !d.More() {
		return nil, nil
	}
	var v T
	want := ContextSpecific(number, PT(&v).Tag().Constructed)
	tag, err := d.PeekTag()
	if err != nil {
		return nil, err
	}
	if tag != want {
		return nil, nil
	}
	h, err := d.ReadHeader()
	if err != nil {
		return nil, err
	}
	err = d.Nested(h.Length, func(d *Decoder) error {
		return PT(&v).DecodeValue(d, h.Length)
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}
