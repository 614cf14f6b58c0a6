// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// OctetString is an ASN.1 OCTET STRING, an opaque sequence of octets.
//
// DER forbids the constructed, segmented form of OCTET STRING that BER
// allows, so an OctetString always decodes from a single primitive value.
// Decoding does not copy: the slice is a view into the decoder's input.
type OctetString []byte

// Tag returns TagOctetString.
func (OctetString) Tag() Tag {
	return TagOctetString
}

// ValueLen returns the number of contents octets.
func (s OctetString) ValueLen() (int, error) {
	return len(s), nil
}

// EncodeValue writes the octets verbatim.
func (s OctetString) EncodeValue(e *Encoder) error {
	return e.WriteBytes(s)
}

// DecodeValue captures the contents octets as a view into the input.
func (s *OctetString) DecodeValue(d *Decoder, length int) error {
	bs, err := d.ReadBytes(length)
	if err != nil {
		return err
	}
	*s = bs
	return nil
}
