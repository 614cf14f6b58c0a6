// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"
	"fmt"
)

// Boolean is an ASN.1 BOOLEAN.
//
// DER restricts the contents of a BOOLEAN to a single octet that is either
// 0x00 for FALSE or 0xFF for TRUE. The BER rule that any nonzero octet
// means TRUE does not apply; see Rec. ITU-T X.690, Section 11.1.
type Boolean bool

// Tag returns TagBoolean.
func (Boolean) Tag() Tag {
	return TagBoolean
}

// ValueLen returns the number of contents octets, which is always 1.
func (Boolean) ValueLen() (int, error) {
	return 1, nil
}

// EncodeValue writes the single contents octet.
func (b Boolean) EncodeValue(e *Encoder) error {
	if b {
		return e.writeByte(0xFF)
	}
	return e.writeByte(0x00)
}

// DecodeValue decodes the single contents octet.
func (b *Boolean) DecodeValue(d *Decoder, length int) error {
	if length != 1 {
		return &Error{Kind: ErrInvalidLength, Offset: d.pos, Err: errors.New("BOOLEAN contents must be a single octet")}
	}
	c, err := d.readByte()
	if err != nil {
		return err
	}
	switch c {
	case 0x00:
		*b = false
	case 0xFF:
		*b = true
	default:
		return &Error{Kind: ErrNonCanonical, Offset: d.pos - 1, Err: fmt.Errorf("BOOLEAN contents octet %#02x", c)}
	}
	return nil
}
