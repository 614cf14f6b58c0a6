// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec1

import (
	"errors"
	"fmt"
)

// ErrPointEncoding is reported when octets do not form a valid
// Elliptic-Curve-Point-to-Octet-String encoding.
var ErrPointEncoding = errors.New("sec1: invalid point encoding")

// EncodedPoint is a curve point in the Elliptic-Curve-Point-to-Octet-String
// encoding of SEC 1, Version 2.0, Section 2.3.3. Three forms exist:
//
//	00                 the identity, or point at infinity
//	02|03 <x>          compressed: x and the parity of y
//	04 <x> <y>         uncompressed: both affine coordinates
//
// Coordinates are fixed-width big-endian integers of the field size, the
// byte length of the curve's field order. The encoding is self-framing only
// together with the field size, which is why ParseEncodedPoint requires it.
//
// An EncodedPoint is a byte-level object: it does not know its curve and is
// never checked to lie on one.
type EncodedPoint struct {
	bytes []byte
}

// ParseEncodedPoint parses a point encoding for a curve with the given field
// size in bytes. The returned point keeps b as a view.
func ParseEncodedPoint(b []byte, fieldSize int) (EncodedPoint, error) {
	if fieldSize <= 0 {
		return EncodedPoint{}, fmt.Errorf("%w: field size must be positive", ErrPointEncoding)
	}
	if len(b) == 0 {
		return EncodedPoint{}, fmt.Errorf("%w: no octets", ErrPointEncoding)
	}
	switch form := b[0]; form {
	case 0x00:
		if len(b) != 1 {
			return EncodedPoint{}, fmt.Errorf("%w: the identity is a single octet", ErrPointEncoding)
		}
	case 0x02, 0x03:
		if len(b) != 1+fieldSize {
			return EncodedPoint{}, fmt.Errorf("%w: compressed form needs %d octets, got %d", ErrPointEncoding, 1+fieldSize, len(b))
		}
	case 0x04:
		if len(b) != 1+2*fieldSize {
			return EncodedPoint{}, fmt.Errorf("%w: uncompressed form needs %d octets, got %d", ErrPointEncoding, 1+2*fieldSize, len(b))
		}
	default:
		return EncodedPoint{}, fmt.Errorf("%w: unknown form 0x%02X", ErrPointEncoding, form)
	}
	return EncodedPoint{bytes: b}, nil
}

// NewUncompressedPoint returns the uncompressed encoding of the point with
// affine coordinates x and y, which must have the same nonzero length.
func NewUncompressedPoint(x, y []byte) (EncodedPoint, error) {
	if len(x) == 0 || len(x) != len(y) {
		return EncodedPoint{}, fmt.Errorf("%w: coordinates must have equal nonzero lengths", ErrPointEncoding)
	}
	b := make([]byte, 1+len(x)+len(y))
	b[0] = 0x04
	copy(b[1:], x)
	copy(b[1+len(x):], y)
	return EncodedPoint{bytes: b}, nil
}

// NewCompressedPoint returns the compressed encoding of the point with
// affine coordinate x and the given parity of y.
func NewCompressedPoint(x []byte, yIsOdd bool) (EncodedPoint, error) {
	if len(x) == 0 {
		return EncodedPoint{}, fmt.Errorf("%w: empty coordinate", ErrPointEncoding)
	}
	b := make([]byte, 1+len(x))
	b[0] = 0x02
	if yIsOdd {
		b[0] = 0x03
	}
	copy(b[1:], x)
	return EncodedPoint{bytes: b}, nil
}

// Bytes returns the encoded octets.
func (p EncodedPoint) Bytes() []byte {
	return p.bytes
}

// IsIdentity reports whether p is the identity.
func (p EncodedPoint) IsIdentity() bool {
	return len(p.bytes) == 1 && p.bytes[0] == 0x00
}

// IsCompressed reports whether p uses the compressed form.
func (p EncodedPoint) IsCompressed() bool {
	return len(p.bytes) > 0 && p.bytes[0]&0xFE == 0x02
}

// X returns the affine x coordinate, or nil for the identity.
func (p EncodedPoint) X() []byte {
	switch {
	case len(p.bytes) == 0 || p.IsIdentity():
		return nil
	case p.IsCompressed():
		return p.bytes[1:]
	default:
		return p.bytes[1 : 1+(len(p.bytes)-1)/2]
	}
}

// Y returns the affine y coordinate. It is nil for the identity and for
// compressed points, which carry only the parity of y; see YIsOdd.
func (p EncodedPoint) Y() []byte {
	if len(p.bytes) == 0 || p.IsIdentity() || p.IsCompressed() {
		return nil
	}
	return p.bytes[1+(len(p.bytes)-1)/2:]
}

// YIsOdd reports whether the affine y coordinate is odd. For the identity it
// reports false.
func (p EncodedPoint) YIsOdd() bool {
	switch {
	case p.IsCompressed():
		return p.bytes[0] == 0x03
	case len(p.bytes) > 1 && p.bytes[0] == 0x04:
		return p.bytes[len(p.bytes)-1]&1 == 1
	default:
		return false
	}
}
