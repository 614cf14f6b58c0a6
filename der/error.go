// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "strconv"

//go:generate stringer -type=ErrorKind -trimprefix=Err

// ErrorKind identifies the category of a codec failure. An ErrorKind can be
// used as a target for errors.Is to test errors returned by this package:
//
//	if errors.Is(err, der.ErrNonCanonical) { ... }
type ErrorKind uint8

const (
	// ErrIncomplete indicates that the input ended before a complete value
	// could be decoded.
	ErrIncomplete ErrorKind = iota + 1
	// ErrInvalidTag indicates malformed identifier octets, such as a
	// truncated or non-minimal high-tag-number form.
	ErrInvalidTag
	// ErrInvalidLength indicates malformed length octets or a length that
	// is not allowed for the type being decoded. Indefinite lengths and
	// non-minimal length forms are rejected with this kind.
	ErrInvalidLength
	// ErrNonCanonical indicates contents octets that are syntactically
	// decodable but violate a canonical form rule of DER.
	ErrNonCanonical
	// ErrUnexpectedTag indicates a well-formed value whose tag differs from
	// the tag required by the caller.
	ErrUnexpectedTag
	// ErrTrailingData indicates extra octets after a complete value.
	ErrTrailingData
	// ErrOverflow indicates a decoded value that exceeds the range of the
	// requested Go type, or a value that cannot be represented in DER.
	ErrOverflow
	// ErrBufferTooSmall indicates that an output buffer is too small to
	// hold the encoded value.
	ErrBufferTooSmall
)

// Error implements the error interface. This makes it possible to pass an
// ErrorKind as the target of errors.Is.
func (k ErrorKind) Error() string {
	return "der: " + k.message()
}

func (k ErrorKind) message() string {
	switch k {
	case ErrIncomplete:
		return "unexpected end of input"
	case ErrInvalidTag:
		return "malformed tag"
	case ErrInvalidLength:
		return "malformed length"
	case ErrNonCanonical:
		return "encoding is not canonical DER"
	case ErrUnexpectedTag:
		return "unexpected tag"
	case ErrTrailingData:
		return "trailing data"
	case ErrOverflow:
		return "value out of range"
	case ErrBufferTooSmall:
		return "buffer too small"
	default:
		return "invalid error kind"
	}
}

// Error is the error type returned by the decoding and encoding operations
// of this package. It carries the category of the failure and the offset at
// which it was detected.
type Error struct {
	// Kind is the category of the error.
	Kind ErrorKind
	// Offset is the byte offset into the input or output buffer at which
	// the error was detected, or -1 if no position applies.
	Offset int
	// Err optionally holds a more specific description or underlying cause
	// of the error. It may be nil.
	Err error
}

func (e *Error) Error() string {
	msg := "der: " + e.Kind.message()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Offset >= 0 {
		msg += " (at offset " + strconv.Itoa(e.Offset) + ")"
	}
	return msg
}

// Unwrap returns the underlying cause of e, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether e matches target. It returns true if target is the
// ErrorKind of e, so that errors.Is(err, der.ErrOverflow) works as expected.
func (e *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}
