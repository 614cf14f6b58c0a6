// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/olekhov/formats/internal/base128"
)

// ObjectIdentifier is an ASN.1 OBJECT IDENTIFIER, a sequence of unsigned
// integers called arcs that name a node in the OID tree.
//
// An ObjectIdentifier keeps the validated contents octets rather than the
// numeric arcs, so decoding one is a zero-copy view operation and comparing
// identifiers is a plain byte comparison. The numeric arcs are available
// through Arcs.
//
// The zero ObjectIdentifier is empty and does not name anything. Arcs
// larger than the platform uint are not supported.
type ObjectIdentifier struct {
	enc []byte // contents octets of the encoding
}

// NewObjectIdentifier returns the ObjectIdentifier with the given arcs. At
// least two arcs are required, the first arc must be 0, 1 or 2, and below
// the first arcs 0 and 1 the second arc must be below 40.
func NewObjectIdentifier(arcs ...uint) (ObjectIdentifier, error) {
	if len(arcs) < 2 {
		return ObjectIdentifier{}, errors.New("der: an OBJECT IDENTIFIER needs at least two arcs")
	}
	if arcs[0] > 2 || (arcs[0] < 2 && arcs[1] >= 40) {
		return ObjectIdentifier{}, fmt.Errorf("der: invalid root arcs %d.%d", arcs[0], arcs[1])
	}
	if arcs[0] == 2 && arcs[1] > ^uint(0)-80 {
		return ObjectIdentifier{}, errors.New("der: second arc out of range")
	}
	// The first two arcs share one component; see Rec. ITU-T X.690,
	// Section 8.19.4.
	enc := base128.Append(nil, arcs[0]*40+arcs[1])
	for _, arc := range arcs[2:] {
		enc = base128.Append(enc, arc)
	}
	return ObjectIdentifier{enc: enc}, nil
}

// ParseObjectIdentifier parses an identifier in dotted-decimal notation,
// such as "1.2.840.113549".
func ParseObjectIdentifier(s string) (ObjectIdentifier, error) {
	parts := strings.Split(s, ".")
	arcs := make([]uint, len(parts))
	for i, part := range parts {
		arc, err := strconv.ParseUint(part, 10, strconv.IntSize)
		if err != nil {
			return ObjectIdentifier{}, fmt.Errorf("der: invalid arc %q", part)
		}
		arcs[i] = uint(arc)
	}
	return NewObjectIdentifier(arcs...)
}

// MustParseObjectIdentifier is like ParseObjectIdentifier but panics if the
// string is not a valid identifier. Use it to declare identifier constants.
func MustParseObjectIdentifier(s string) ObjectIdentifier {
	oid, err := ParseObjectIdentifier(s)
	if err != nil {
		panic(err)
	}
	return oid
}

// Arcs returns an iterator over the arcs of the identifier. The zero
// ObjectIdentifier yields no arcs.
func (oid ObjectIdentifier) Arcs() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		b := oid.enc
		if len(b) == 0 {
			return
		}
		v, n, err := base128.Parse[uint](b)
		if err != nil {
			return
		}
		first, second := splitRootArcs(v)
		if !yield(first) || !yield(second) {
			return
		}
		for b = b[n:]; len(b) > 0; b = b[n:] {
			if v, n, err = base128.Parse[uint](b); err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// splitRootArcs splits the first encoded component into the first two arcs.
func splitRootArcs(v uint) (uint, uint) {
	switch {
	case v < 40:
		return 0, v
	case v < 80:
		return 1, v - 40
	default:
		return 2, v - 80
	}
}

// String returns the identifier in dotted-decimal notation.
func (oid ObjectIdentifier) String() string {
	var s strings.Builder
	for arc := range oid.Arcs() {
		if s.Len() > 0 {
			s.WriteByte('.')
		}
		s.WriteString(strconv.FormatUint(uint64(arc), 10))
	}
	return s.String()
}

// Equal reports whether oid and other name the same identifier.
func (oid ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return bytes.Equal(oid.enc, other.enc)
}

// Tag returns TagObjectIdentifier.
func (ObjectIdentifier) Tag() Tag {
	return TagObjectIdentifier
}

// ValueLen returns the number of contents octets of the encoded value. It
// reports an error for the zero ObjectIdentifier, which has no encoding.
func (oid ObjectIdentifier) ValueLen() (int, error) {
	if len(oid.enc) == 0 {
		return 0, &Error{Kind: ErrInvalidLength, Offset: -1, Err: errors.New("empty OBJECT IDENTIFIER")}
	}
	return len(oid.enc), nil
}

// EncodeValue writes the contents octets.
func (oid ObjectIdentifier) EncodeValue(e *Encoder) error {
	return e.WriteBytes(oid.enc)
}

// DecodeValue validates the contents octets and captures them as a view
// into the input. Every arc must be minimally encoded and fit a uint.
func (oid *ObjectIdentifier) DecodeValue(d *Decoder, length int) error {
	start := d.pos
	bs, err := d.ReadBytes(length)
	if err != nil {
		return err
	}
	if len(bs) == 0 {
		return &Error{Kind: ErrInvalidLength, Offset: start, Err: errors.New("OBJECT IDENTIFIER contents must not be empty")}
	}
	for off := 0; off < len(bs); {
		_, n, err := base128.Parse[uint](bs[off:])
		if err != nil {
			return &Error{Kind: oidErrorKind(err), Offset: start + off, Err: err}
		}
		off += n
	}
	oid.enc = bs
	return nil
}

// oidErrorKind maps arc parse failures onto the error taxonomy.
func oidErrorKind(err error) ErrorKind {
	switch {
	case errors.Is(err, base128.ErrNonMinimal):
		return ErrNonCanonical
	case errors.Is(err, base128.ErrOverflow):
		return ErrOverflow
	default:
		return ErrIncomplete
	}
}
