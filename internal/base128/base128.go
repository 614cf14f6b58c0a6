// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base128 implements the base-128 integer encoding used by ASN.1
// identifier octets and object identifier components. Each octet carries 7
// bits of the value, most significant group first. Bit 8 of every octet
// except the last is set, marking a continuation.
//
// The encoding is described in Rec. ITU-T X.690, Section 8.1.2.4.2 for tag
// numbers and Section 8.19.2 for object identifier components.
package base128

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrTruncated indicates that the input ended before an octet without
	// the continuation bit was found.
	ErrTruncated = errors.New("base128: truncated value")

	// ErrNonMinimal indicates that a value started with the octet 0x80,
	// encoding a redundant leading zero group.
	ErrNonMinimal = errors.New("base128: value not minimally encoded")

	// ErrOverflow indicates that a value does not fit into the requested
	// integer type.
	ErrOverflow = errors.New("base128: value overflows integer type")
)

// Parse decodes a single base-128 value from the beginning of b. It returns
// the value and the number of bytes consumed.
//
// Parse only accepts the canonical form: the first octet of a multi-octet
// value must not be 0x80, since leading zero groups carry no information.
func Parse[T constraints.Unsigned](b []byte) (T, int, error) {
	var ret T
	for n := 0; n < len(b); n++ {
		c := b[n]
		if n == 0 && c == 0x80 {
			return 0, 0, ErrNonMinimal
		}
		if ret > ^T(0)>>7 {
			return 0, 0, ErrOverflow
		}
		ret = ret<<7 | T(c&0x7F)

		if c&0x80 == 0 {
			return ret, n + 1, nil
		}
	}
	return 0, 0, ErrTruncated
}

// Len returns the number of octets needed to encode v.
func Len[T constraints.Unsigned](v T) int {
	n := 1
	for v >>= 7; v > 0; v >>= 7 {
		n++
	}
	return n
}

// Put encodes v at the beginning of buf and returns the number of bytes
// written. It panics if buf is shorter than Len(v) octets.
func Put[T constraints.Unsigned](buf []byte, v T) int {
	n := Len(v)
	for i := n - 1; i >= 0; i-- {
		buf[i] = byte(v&0x7F) | 0x80
		v >>= 7
	}
	buf[n-1] &^= 0x80
	return n
}

// Append appends the encoding of v to dst and returns the extended slice.
func Append[T constraints.Unsigned](dst []byte, v T) []byte {
	var buf [10]byte
	n := Put(buf[:], v)
	return append(dst, buf[:n]...)
}
