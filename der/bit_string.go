// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "errors"

// BitString is an ASN.1 BIT STRING, a sequence of bits that need not be a
// whole number of octets.
//
// The first contents octet of the encoding states how many padding bits
// complete the final octet. DER requires all padding bits to be zero and
// forbids the constructed, segmented form; see Rec. ITU-T X.690,
// Section 11.2.
type BitString struct {
	// Bytes holds the bits packed most significant bit first. Decoding
	// does not copy: the slice is a view into the decoder's input.
	Bytes []byte
	// BitLength is the number of valid bits. The trailing bits of the
	// final octet beyond BitLength are padding and must be zero.
	BitLength int
}

// At returns the bit at the given index. Bits are indexed from the most
// significant bit of the first octet. It returns 0 for indexes outside the
// bit string.
func (s BitString) At(i int) int {
	if i < 0 || i >= s.BitLength {
		return 0
	}
	return int(s.Bytes[i/8]>>(7-i%8)) & 1
}

// Tag returns TagBitString.
func (BitString) Tag() Tag {
	return TagBitString
}

// ValueLen returns the number of contents octets of the encoded value. It
// reports an error if BitLength does not match Bytes or a padding bit is
// set.
func (s BitString) ValueLen() (int, error) {
	if s.BitLength < 0 || len(s.Bytes) != (s.BitLength+7)/8 {
		return 0, &Error{Kind: ErrInvalidLength, Offset: -1, Err: errors.New("BIT STRING bit length does not match its bytes")}
	}
	if pad := s.padBits(); pad > 0 && s.Bytes[len(s.Bytes)-1]&(1<<pad-1) != 0 {
		return 0, &Error{Kind: ErrNonCanonical, Offset: -1, Err: errors.New("BIT STRING has nonzero padding bits")}
	}
	return 1 + len(s.Bytes), nil
}

// EncodeValue writes the padding count octet followed by the packed bits.
func (s BitString) EncodeValue(e *Encoder) error {
	if err := e.writeByte(byte(s.padBits())); err != nil {
		return err
	}
	return e.WriteBytes(s.Bytes)
}

// DecodeValue decodes the padding count octet and captures the packed bits
// as a view into the input.
func (s *BitString) DecodeValue(d *Decoder, length int) error {
	start := d.pos
	if length < 1 {
		return &Error{Kind: ErrInvalidLength, Offset: start, Err: errors.New("BIT STRING contents must include the padding count")}
	}
	bs, err := d.ReadBytes(length)
	if err != nil {
		return err
	}
	pad := int(bs[0])
	data := bs[1:]
	if pad > 7 || (len(data) == 0 && pad != 0) {
		return &Error{Kind: ErrNonCanonical, Offset: start, Err: errors.New("BIT STRING padding count out of range")}
	}
	if pad > 0 && data[len(data)-1]&(1<<pad-1) != 0 {
		return &Error{Kind: ErrNonCanonical, Offset: start, Err: errors.New("BIT STRING has nonzero padding bits")}
	}
	s.Bytes = data
	s.BitLength = len(data)*8 - pad
	return nil
}

// padBits returns the number of padding bits in the final octet.
func (s BitString) padBits() int {
	return (8 - s.BitLength%8) % 8
}
