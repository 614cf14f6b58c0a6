// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "errors"

// Null is the ASN.1 NULL value. It encodes with no contents octets.
type Null struct{}

// Tag returns TagNull.
func (Null) Tag() Tag {
	return TagNull
}

// ValueLen returns the number of contents octets, which is always 0.
func (Null) ValueLen() (int, error) {
	return 0, nil
}

// EncodeValue writes nothing.
func (Null) EncodeValue(*Encoder) error {
	return nil
}

// DecodeValue validates that the value has no contents octets.
func (*Null) DecodeValue(d *Decoder, length int) error {
	if length != 0 {
		return &Error{Kind: ErrInvalidLength, Offset: d.pos, Err: errors.New("NULL must not have contents octets")}
	}
	return nil
}
