// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"
	"unicode/utf8"
	"unsafe"
)

// UTF8String is an ASN.1 UTF8String holding UTF-8 encoded text.
//
// Decoding does not copy: the string data points into the decoder's input,
// so the immutability contract of Go strings extends to the input buffer.
// See NewDecoder for the aliasing rules.
type UTF8String string

// IsValid reports whether s is valid UTF-8.
func (s UTF8String) IsValid() bool {
	return utf8.ValidString(string(s))
}

// Tag returns TagUTF8String.
func (UTF8String) Tag() Tag {
	return TagUTF8String
}

// ValueLen returns the number of contents octets of the encoded value.
func (s UTF8String) ValueLen() (int, error) {
	if !s.IsValid() {
		return 0, &Error{Kind: ErrNonCanonical, Offset: -1, Err: errors.New("UTF8String contains invalid UTF-8")}
	}
	return len(s), nil
}

// EncodeValue writes the string contents verbatim.
func (s UTF8String) EncodeValue(e *Encoder) error {
	return e.WriteString(string(s))
}

// DecodeValue captures the contents octets as a view into the input.
func (s *UTF8String) DecodeValue(d *Decoder, length int) error {
	start := d.pos
	v, err := decodeString[UTF8String](d, length)
	if err != nil {
		return err
	}
	if !v.IsValid() {
		return &Error{Kind: ErrNonCanonical, Offset: start, Err: errors.New("UTF8String contains invalid UTF-8")}
	}
	*s = v
	return nil
}

// PrintableString is an ASN.1 PrintableString. It is restricted to the
// character set defined in Rec. ITU-T X.680, Section 41.4: latin letters,
// digits, space and the punctuation ' ( ) + , - . / : = ?.
//
// Decoding does not copy; see UTF8String.
type PrintableString string

// IsValid reports whether s only contains characters allowed in a
// PrintableString.
func (s PrintableString) IsValid() bool {
	for i := 0; i < len(s); i++ {
		if !printable(s[i]) {
			return false
		}
	}
	return true
}

func printable(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

// Tag returns TagPrintableString.
func (PrintableString) Tag() Tag {
	return TagPrintableString
}

// ValueLen returns the number of contents octets of the encoded value.
func (s PrintableString) ValueLen() (int, error) {
	if !s.IsValid() {
		return 0, &Error{Kind: ErrNonCanonical, Offset: -1, Err: errors.New("PrintableString contains a character outside its character set")}
	}
	return len(s), nil
}

// EncodeValue writes the string contents verbatim.
func (s PrintableString) EncodeValue(e *Encoder) error {
	return e.WriteString(string(s))
}

// DecodeValue captures the contents octets as a view into the input.
func (s *PrintableString) DecodeValue(d *Decoder, length int) error {
	start := d.pos
	v, err := decodeString[PrintableString](d, length)
	if err != nil {
		return err
	}
	if !v.IsValid() {
		return &Error{Kind: ErrNonCanonical, Offset: start, Err: errors.New("PrintableString contains a character outside its character set")}
	}
	*s = v
	return nil
}

// IA5String is an ASN.1 IA5String, restricted to the 7-bit ASCII
// characters.
//
// Decoding does not copy; see UTF8String.
type IA5String string

// IsValid reports whether s only contains ASCII characters.
func (s IA5String) IsValid() bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}

// Tag returns TagIA5String.
func (IA5String) Tag() Tag {
	return TagIA5String
}

// ValueLen returns the number of contents octets of the encoded value.
func (s IA5String) ValueLen() (int, error) {
	if !s.IsValid() {
		return 0, &Error{Kind: ErrNonCanonical, Offset: -1, Err: errors.New("IA5String contains a non-ASCII character")}
	}
	return len(s), nil
}

// EncodeValue writes the string contents verbatim.
func (s IA5String) EncodeValue(e *Encoder) error {
	return e.WriteString(string(s))
}

// DecodeValue captures the contents octets as a view into the input.
func (s *IA5String) DecodeValue(d *Decoder, length int) error {
	start := d.pos
	v, err := decodeString[IA5String](d, length)
	if err != nil {
		return err
	}
	if !v.IsValid() {
		return &Error{Kind: ErrNonCanonical, Offset: start, Err: errors.New("IA5String contains a non-ASCII character")}
	}
	*s = v
	return nil
}

// decodeString captures length contents octets as a string whose data
// points into the decoder's input. No copy is made, matching the aliasing
// behavior of OctetString.
func decodeString[T ~string](d *Decoder, length int) (T, error) {
	bs, err := d.ReadBytes(length)
	if err != nil {
		return "", err
	}
	return T(unsafe.String(unsafe.SliceData(bs), len(bs))), nil
}
