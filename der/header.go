// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "fmt"

// Header is the tag and length prefix of an encoded value.
type Header struct {
	// Tag identifies the type of the value.
	Tag Tag
	// Length is the number of contents octets. It never includes the
	// identifier or length octets themselves.
	Length int
}

// EncodedLen returns the number of octets in the encoding of h. This covers
// the identifier and length octets only, not the contents octets that
// follow them.
func (h Header) EncodedLen() int {
	return h.Tag.EncodedLen() + encodedLengthLen(h.Length)
}

// ReadHeader decodes the tag and length at the cursor and advances past
// them. The declared length is validated against the remaining input, so a
// successful ReadHeader guarantees that the contents octets are available
// in full.
func (d *Decoder) ReadHeader() (Header, error) {
	tag, err := d.readTag()
	if err != nil {
		return Header{}, err
	}
	lengthStart := d.pos
	length, err := d.readLength()
	if err != nil {
		return Header{}, err
	}
	if length > d.end-d.pos {
		return Header{}, &Error{
			Kind:   ErrIncomplete,
			Offset: lengthStart,
			Err:    fmt.Errorf("declared length %d exceeds %d remaining octets", length, d.end-d.pos),
		}
	}
	return Header{Tag: tag, Length: length}, nil
}

// PeekHeader decodes the tag and length at the cursor without advancing.
func (d *Decoder) PeekHeader() (Header, error) {
	pos := d.pos
	h, err := d.ReadHeader()
	d.pos = pos
	return h, err
}

// PeekTag returns the tag of the value at the cursor without advancing.
func (d *Decoder) PeekTag() (Tag, error) {
	pos := d.pos
	t, err := d.readTag()
	d.pos = pos
	return t, err
}

// writeHeader encodes the identifier and length octets of h at the cursor.
func (e *Encoder) writeHeader(h Header) error {
	if err := e.writeTag(h.Tag); err != nil {
		return err
	}
	return e.writeLength(h.Length)
}
