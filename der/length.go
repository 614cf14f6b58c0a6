// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"
	"math"
)

// readLength decodes the length octets at the cursor and advances past
// them. The format of the length octets is defined in Rec. ITU-T X.690,
// Section 8.1.3.
//
// DER requires the definite form using the fewest possible octets: the
// short form for lengths below 128 and no leading zero octets in the long
// form. The indefinite form and the reserved octet 0xFF are rejected, as is
// any length that does not fit the platform int.
func (d *Decoder) readLength() (int, error) {
	start := d.pos
	c, err := d.readByte()
	if err != nil {
		return 0, err
	}
	if c < 0x80 {
		return int(c), nil
	}
	switch c {
	case 0x80:
		return 0, &Error{Kind: ErrInvalidLength, Offset: start, Err: errors.New("indefinite length")}
	case 0xFF:
		return 0, &Error{Kind: ErrInvalidLength, Offset: start, Err: errors.New("reserved length octet")}
	}

	length := 0
	for i, n := 0, int(c&0x7F); i < n; i++ {
		c, err = d.readByte()
		if err != nil {
			return 0, err
		}
		if i == 0 && c == 0 {
			return 0, &Error{Kind: ErrInvalidLength, Offset: start, Err: errors.New("length not minimally encoded")}
		}
		if length > math.MaxInt>>8 {
			return 0, &Error{Kind: ErrInvalidLength, Offset: start, Err: errors.New("length overflows int")}
		}
		length = length<<8 | int(c)
	}
	if length < 0x80 {
		return 0, &Error{Kind: ErrInvalidLength, Offset: start, Err: errors.New("length not minimally encoded")}
	}
	return length, nil
}

// writeLength encodes the length octets for length at the cursor.
func (e *Encoder) writeLength(length int) error {
	n := encodedLengthLen(length)
	if len(e.buf)-e.pos < n {
		return &Error{Kind: ErrBufferTooSmall, Offset: e.pos}
	}
	if length < 0x80 {
		e.buf[e.pos] = byte(length)
	} else {
		e.buf[e.pos] = 0x80 | byte(n-1)
		for i := n - 1; i >= 1; i-- {
			e.buf[e.pos+i] = byte(length)
			length >>= 8
		}
	}
	e.pos += n
	return nil
}

// encodedLengthLen returns the number of length octets used to encode
// length in the minimal definite form.
func encodedLengthLen(length int) int {
	if length < 0x80 {
		return 1
	}
	n := 1
	for v := length; v > 0; v >>= 8 {
		n++
	}
	return n
}
