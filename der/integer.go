// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"errors"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Int is an ASN.1 INTEGER restricted to the range of int64.
//
// An INTEGER is encoded as a big-endian two's-complement number using the
// fewest possible octets; see Rec. ITU-T X.690, Section 8.3. Decoding
// rejects padded encodings as ErrNonCanonical and values outside the int64
// range as ErrOverflow.
type Int int64

// Tag returns TagInteger.
func (Int) Tag() Tag {
	return TagInteger
}

// ValueLen returns the number of contents octets of the encoded value.
func (i Int) ValueLen() (int, error) {
	return intLen(int64(i)), nil
}

// EncodeValue writes the two's-complement contents octets.
func (i Int) EncodeValue(e *Encoder) error {
	for shift := (intLen(int64(i)) - 1) * 8; shift >= 0; shift -= 8 {
		if err := e.writeByte(byte(int64(i) >> shift)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeValue decodes the two's-complement contents octets.
func (i *Int) DecodeValue(d *Decoder, length int) error {
	start := d.pos
	bs, err := d.ReadBytes(length)
	if err != nil {
		return err
	}
	if err := checkIntegerForm(bs, start); err != nil {
		return err
	}
	if len(bs) > 8 {
		return &Error{Kind: ErrOverflow, Offset: start, Err: errors.New("INTEGER does not fit int64")}
	}
	v := int64(int8(bs[0])) // sign extension
	for _, c := range bs[1:] {
		v = v<<8 | int64(c)
	}
	*i = Int(v)
	return nil
}

// UInt is an ASN.1 INTEGER restricted to the range of uint64. Decoding a
// negative INTEGER into a UInt fails with ErrOverflow.
type UInt uint64

// Tag returns TagInteger.
func (UInt) Tag() Tag {
	return TagInteger
}

// ValueLen returns the number of contents octets of the encoded value.
func (u UInt) ValueLen() (int, error) {
	return uintLen(uint64(u)), nil
}

// EncodeValue writes the contents octets. Values with 64 significant bits
// get a leading 0x00 octet to keep the sign bit clear.
func (u UInt) EncodeValue(e *Encoder) error {
	for shift := (uintLen(uint64(u)) - 1) * 8; shift >= 0; shift -= 8 {
		if err := e.writeByte(byte(uint64(u) >> shift)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeValue decodes the contents octets.
func (u *UInt) DecodeValue(d *Decoder, length int) error {
	start := d.pos
	bs, err := d.ReadBytes(length)
	if err != nil {
		return err
	}
	if err := checkIntegerForm(bs, start); err != nil {
		return err
	}
	if bs[0]&0x80 != 0 {
		return &Error{Kind: ErrOverflow, Offset: start, Err: errors.New("negative INTEGER decoded into unsigned type")}
	}
	if bs[0] == 0x00 {
		// Sign padding. The canonical form check guarantees that the next
		// octet has its top bit set.
		bs = bs[1:]
	}
	if len(bs) > 8 {
		return &Error{Kind: ErrOverflow, Offset: start, Err: errors.New("INTEGER does not fit uint64")}
	}
	var v uint64
	for _, c := range bs {
		v = v<<8 | uint64(c)
	}
	*u = UInt(v)
	return nil
}

// ReadInt decodes the INTEGER at the cursor into a signed integer type. It
// fails with ErrOverflow if the value does not fit T.
func ReadInt[T constraints.Signed](d *Decoder) (T, error) {
	start := d.pos
	var i Int
	if err := d.Decode(&i); err != nil {
		return 0, err
	}
	if v := T(i); int64(v) == int64(i) {
		return v, nil
	}
	return 0, &Error{Kind: ErrOverflow, Offset: start, Err: fmt.Errorf("INTEGER %d does not fit the requested type", int64(i))}
}

// ReadUint decodes the INTEGER at the cursor into an unsigned integer type.
// It fails with ErrOverflow if the value is negative or does not fit T.
func ReadUint[T constraints.Unsigned](d *Decoder) (T, error) {
	start := d.pos
	var u UInt
	if err := d.Decode(&u); err != nil {
		return 0, err
	}
	if v := T(u); uint64(v) == uint64(u) {
		return v, nil
	}
	return 0, &Error{Kind: ErrOverflow, Offset: start, Err: fmt.Errorf("INTEGER %d does not fit the requested type", uint64(u))}
}

// UIntBytes is a non-negative ASN.1 INTEGER whose magnitude is kept as a
// big-endian byte view instead of a machine integer. It represents values
// of arbitrary size, such as RSA key components, without allocating.
//
// The zero UIntBytes represents the value 0.
type UIntBytes struct {
	// bytes is the big-endian magnitude without leading zero octets. The
	// value 0 is an empty slice.
	bytes []byte
}

// NewUIntBytes returns the UIntBytes with the big-endian magnitude b.
// Leading zero octets are ignored, so b need not be in any particular form.
// The slice is not copied.
func NewUIntBytes(b []byte) UIntBytes {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	return UIntBytes{bytes: b}
}

// Bytes returns the big-endian magnitude without leading zero octets. The
// magnitude of 0 is the empty slice. The returned slice aliases the buffer
// the value was created or decoded from.
func (u UIntBytes) Bytes() []byte {
	return u.bytes
}

// BitLen returns the length of the value in bits.
func (u UIntBytes) BitLen() int {
	if len(u.bytes) == 0 {
		return 0
	}
	return (len(u.bytes)-1)*8 + bits.Len8(u.bytes[0])
}

// Equal reports whether u and v represent the same value.
func (u UIntBytes) Equal(v UIntBytes) bool {
	return bytes.Equal(u.bytes, v.bytes)
}

// Tag returns TagInteger.
func (UIntBytes) Tag() Tag {
	return TagInteger
}

// ValueLen returns the number of contents octets of the encoded value.
func (u UIntBytes) ValueLen() (int, error) {
	if len(u.bytes) == 0 || u.bytes[0]&0x80 != 0 {
		return len(u.bytes) + 1, nil
	}
	return len(u.bytes), nil
}

// EncodeValue writes the contents octets: the magnitude, preceded by a
// 0x00 octet if the magnitude is empty or starts with the top bit set.
func (u UIntBytes) EncodeValue(e *Encoder) error {
	if len(u.bytes) == 0 || u.bytes[0]&0x80 != 0 {
		if err := e.writeByte(0x00); err != nil {
			return err
		}
	}
	return e.WriteBytes(u.bytes)
}

// DecodeValue decodes the contents octets. The magnitude is a view into the
// decoder's input.
func (u *UIntBytes) DecodeValue(d *Decoder, length int) error {
	start := d.pos
	bs, err := d.ReadBytes(length)
	if err != nil {
		return err
	}
	if err := checkIntegerForm(bs, start); err != nil {
		return err
	}
	if bs[0]&0x80 != 0 {
		return &Error{Kind: ErrOverflow, Offset: start, Err: errors.New("negative INTEGER decoded into unsigned type")}
	}
	if bs[0] == 0x00 {
		bs = bs[1:]
	}
	u.bytes = bs
	return nil
}

// checkIntegerForm validates the contents octets of an INTEGER against the
// form rules of Rec. ITU-T X.690, Section 8.3: at least one octet, and the
// first nine bits not all zero and not all one.
func checkIntegerForm(bs []byte, offset int) error {
	if len(bs) == 0 {
		return &Error{Kind: ErrInvalidLength, Offset: offset, Err: errors.New("INTEGER contents must not be empty")}
	}
	if len(bs) > 1 {
		switch {
		case bs[0] == 0x00 && bs[1]&0x80 == 0:
			return &Error{Kind: ErrNonCanonical, Offset: offset, Err: errors.New("INTEGER has a redundant leading 0x00 octet")}
		case bs[0] == 0xFF && bs[1]&0x80 != 0:
			return &Error{Kind: ErrNonCanonical, Offset: offset, Err: errors.New("INTEGER has a redundant leading 0xFF octet")}
		}
	}
	return nil
}

// intLen returns the number of octets in the shortest two's-complement
// encoding of v.
func intLen(v int64) int {
	n := 8
	for n > 1 {
		c, next := byte(v>>((n-1)*8)), byte(v>>((n-2)*8))
		if c != 0x00 && c != 0xFF {
			break
		}
		if c == 0x00 && next&0x80 != 0 || c == 0xFF && next&0x80 == 0 {
			break
		}
		n--
	}
	return n
}

// uintLen returns the number of octets in the shortest encoding of v: the
// big-endian magnitude plus a leading 0x00 octet if the top bit of the
// magnitude is set.
func uintLen(v uint64) int {
	n := 1
	for x := v; x > 0xFF; x >>= 8 {
		n++
	}
	if byte(v>>((n-1)*8))&0x80 != 0 {
		n++
	}
	return n
}
