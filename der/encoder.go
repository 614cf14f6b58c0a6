// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "fmt"

// Encoder writes DER values into a caller-provided byte slice. An Encoder
// never allocates; if the output does not fit the buffer, operations fail
// with ErrBufferTooSmall. Use EncodedLen to size the buffer exactly.
//
// Because DER lengths are definite, the length octets of a value are
// written before its contents. Encodable values declare their contents
// length via ValueLen, which lets values nest to arbitrary depth in a
// single pass without buffering.
//
// An Encoder must not be used from multiple goroutines simultaneously.
type Encoder struct {
	buf []byte
	pos int
}

// NewEncoder returns an Encoder writing into buf.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{buf: buf}
}

// Len returns the number of octets written so far.
func (e *Encoder) Len() int {
	return e.pos
}

// WriteBytes writes b verbatim at the cursor. If b does not fit the
// remaining buffer, nothing is written.
func (e *Encoder) WriteBytes(b []byte) error {
	if len(e.buf)-e.pos < len(b) {
		return &Error{Kind: ErrBufferTooSmall, Offset: e.pos}
	}
	e.pos += copy(e.buf[e.pos:], b)
	return nil
}

// WriteString writes the bytes of s verbatim at the cursor. If s does not
// fit the remaining buffer, nothing is written.
func (e *Encoder) WriteString(s string) error {
	if len(e.buf)-e.pos < len(s) {
		return &Error{Kind: ErrBufferTooSmall, Offset: e.pos}
	}
	e.pos += copy(e.buf[e.pos:], s)
	return nil
}

// writeByte writes a single octet at the cursor.
func (e *Encoder) writeByte(c byte) error {
	if e.pos >= len(e.buf) {
		return &Error{Kind: ErrBufferTooSmall, Offset: e.pos}
	}
	e.buf[e.pos] = c
	e.pos++
	return nil
}

// Encode writes the complete encoding of v: identifier octets, length
// octets and contents octets. Encode verifies that v writes exactly the
// number of contents octets declared by its ValueLen.
func (e *Encoder) Encode(v Encodable) error {
	length, err := v.ValueLen()
	if err != nil {
		return err
	}
	if err := e.writeHeader(Header{Tag: v.Tag(), Length: length}); err != nil {
		return err
	}
	start := e.pos
	if err := v.EncodeValue(e); err != nil {
		return err
	}
	if e.pos-start != length {
		return &Error{
			Kind:   ErrInvalidLength,
			Offset: start,
			Err:    fmt.Errorf("value wrote %d contents octets, declared %d", e.pos-start, length),
		}
	}
	return nil
}

// Finish returns the written prefix of the encoder's buffer.
func (e *Encoder) Finish() []byte {
	return e.buf[:e.pos]
}
