// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package der implements the ASN.1 Distinguished Encoding Rules, defined in
// Rec. ITU-T X.690, Section 10.
//
// DER is a restriction of the Basic Encoding Rules that admits exactly one
// encoding for every value. This package enforces the restriction in both
// directions: the Decoder rejects any input that is not the canonical
// encoding of its value, and the Encoder cannot produce a non-canonical
// encoding. Decoding and re-encoding a value therefore reproduces the input
// bit for bit, a property that signed formats such as X.509 certificates
// and PKCS #8 keys depend on.
//
// The package is designed for hostile inputs. Decoding never allocates and
// never reads past a declared length, so a corrupt length cannot leak
// octets from one value into another. Decoded values borrow from the input
// buffer instead of copying it; see NewDecoder for the aliasing rules.
package der

// Encodable is the interface implemented by types that can be encoded as a
// DER value.
//
// Splitting the length calculation from the actual encoding allows the
// Encoder to write nested values in a single pass: DER lengths are
// definite, so the length octets of a value must be known before its
// contents are written.
type Encodable interface {
	// Tag returns the tag of the encoded value.
	Tag() Tag
	// ValueLen returns the number of contents octets of the encoded value.
	ValueLen() (int, error)
	// EncodeValue writes the contents octets to e. It must write exactly
	// the number of octets returned by ValueLen; the Encoder enforces
	// this.
	EncodeValue(e *Encoder) error
}

// Decodable is the interface implemented by types that can be decoded from
// a DER value.
type Decodable interface {
	// Tag returns the expected tag of the encoded value.
	Tag() Tag
	// DecodeValue decodes the contents octets from d. The decoder is
	// scoped to the contents octets and must be consumed exactly. length
	// is the number of contents octets, equal to d.Len() at the point of
	// the call.
	DecodeValue(d *Decoder, length int) error
}

// Decode decodes a single DER value from input into v. The input must
// contain exactly one value; trailing octets are reported as
// ErrTrailingData.
func Decode(input []byte, v Decodable) error {
	d := NewDecoder(input)
	if err := d.Decode(v); err != nil {
		return err
	}
	return d.Finish()
}

// EncodedLen returns the total number of octets in the encoding of v,
// including the identifier and length octets.
func EncodedLen(v Encodable) (int, error) {
	length, err := v.ValueLen()
	if err != nil {
		return 0, err
	}
	return Header{Tag: v.Tag(), Length: length}.EncodedLen() + length, nil
}

// Marshal returns the DER encoding of v in a freshly allocated buffer. It
// is a convenience for callers that do not manage buffers themselves. Use
// an Encoder directly to encode without allocating.
func Marshal(v Encodable) ([]byte, error) {
	n, err := EncodedLen(v)
	if err != nil {
		return nil, err
	}
	e := NewEncoder(make([]byte, n))
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return e.Finish(), nil
}

// decodablePtr constrains PT to a pointer to T implementing Decodable. It
// lets generic functions allocate and decode into a value of a type they
// choose themselves.
type decodablePtr[T any] interface {
	*T
	Decodable
}

// Optional decodes the value at the cursor into a new T if its tag matches
// T's tag, and returns nil without advancing otherwise. It implements
// OPTIONAL fields of SEQUENCE types.
func Optional[T any, PT decodablePtr[T]](d *Decoder) (*T, error) {
	if !d.More() {
		return nil, nil
	}
	var v T
	tag, err := d.PeekTag()
	if err != nil {
		return nil, err
	}
	if tag != PT(&v).Tag() {
		return nil, nil
	}
	if err := d.Decode(PT(&v)); err != nil {
		return nil, err
	}
	return &v, nil
}

// Zeroize overwrites b with zeros. Values decoded by this package are views
// into their input, so zeroizing the input buffer scrubs every value
// decoded from it in one call.
func Zeroize(b []byte) {
	clear(b)
}
