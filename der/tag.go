// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"
	"fmt"

	"github.com/olekhov/formats/internal/base128"
)

// Tag identifies the type of an ASN.1 value. A Tag corresponds to the
// identifier octets of an encoded value, defined in Rec. ITU-T X.690,
// Section 8.1.2.
//
// The zero Tag is [UNIVERSAL 0], which is reserved and does not identify a
// valid value.
type Tag struct {
	// Class is the scope of the tag's Number.
	Class Class
	// Constructed indicates that the contents octets of the value are
	// themselves a concatenation of encoded values. DER requires the
	// constructed form for SEQUENCE and SET and forbids it for all other
	// universal types supported by this package.
	Constructed bool
	// Number is the tag number within its class.
	Number uint
}

// Tags for the universal types supported by this package. The assignments
// are defined in Rec. ITU-T X.680, Section 8, Table 1.
var (
	TagBoolean          = Tag{Number: 1}
	TagInteger          = Tag{Number: 2}
	TagBitString        = Tag{Number: 3}
	TagOctetString      = Tag{Number: 4}
	TagNull             = Tag{Number: 5}
	TagObjectIdentifier = Tag{Number: 6}
	TagUTF8String       = Tag{Number: 12}
	TagSequence         = Tag{Number: 16, Constructed: true}
	TagSet              = Tag{Number: 17, Constructed: true}
	TagPrintableString  = Tag{Number: 19}
	TagIA5String        = Tag{Number: 22}
	TagUTCTime          = Tag{Number: 23}
	TagGeneralizedTime  = Tag{Number: 24}
)

// ContextSpecific returns the context-specific tag with the given number.
func ContextSpecific(number uint, constructed bool) Tag {
	return Tag{Class: ClassContextSpecific, Constructed: constructed, Number: number}
}

// String returns a string representation of t, using the ASN.1 notation for
// tags. For example the tag of a SEQUENCE is "[UNIVERSAL 16]" and the
// context-specific tag number 4 is "[4]".
func (t Tag) String() string {
	switch t.Class {
	case ClassUniversal:
		return fmt.Sprintf("[UNIVERSAL %d]", t.Number)
	case ClassApplication:
		return fmt.Sprintf("[APPLICATION %d]", t.Number)
	case ClassContextSpecific:
		return fmt.Sprintf("[%d]", t.Number)
	case ClassPrivate:
		return fmt.Sprintf("[PRIVATE %d]", t.Number)
	default:
		// A Class only has 4 valid values.
		panic("unreachable")
	}
}

// EncodedLen returns the number of identifier octets used by t.
func (t Tag) EncodedLen() int {
	if t.Number < 0x1F {
		return 1
	}
	return 1 + base128.Len(t.Number)
}

// readTag decodes the identifier octets at the cursor and advances past
// them. DER requires the low-tag-number form for tag numbers below 31 and a
// minimal high-tag-number form for all others. Violations of either rule
// are reported as ErrInvalidTag.
func (d *Decoder) readTag() (Tag, error) {
	start := d.pos
	c, err := d.readByte()
	if err != nil {
		return Tag{}, err
	}
	t := Tag{
		Class:       Class(c >> 6),
		Constructed: c&0x20 != 0,
	}
	if c&0x1F != 0x1F {
		t.Number = uint(c & 0x1F)
		return t, nil
	}
	number, n, err := base128.Parse[uint](d.buf[d.pos:d.end])
	if err != nil {
		return Tag{}, &Error{Kind: ErrInvalidTag, Offset: start, Err: err}
	}
	if number < 0x1F {
		return Tag{}, &Error{Kind: ErrInvalidTag, Offset: start, Err: errors.New("high-tag-number form for tag number below 31")}
	}
	d.pos += n
	t.Number = number
	return t, nil
}

// writeTag encodes the identifier octets for t at the cursor.
func (e *Encoder) writeTag(t Tag) error {
	n := t.EncodedLen()
	if len(e.buf)-e.pos < n {
		return &Error{Kind: ErrBufferTooSmall, Offset: e.pos}
	}
	c := byte(t.Class) << 6
	if t.Constructed {
		c |= 0x20
	}
	if t.Number < 0x1F {
		e.buf[e.pos] = c | byte(t.Number)
	} else {
		e.buf[e.pos] = c | 0x1F
		base128.Put(e.buf[e.pos+1:], t.Number)
	}
	e.pos += n
	return nil
}
