// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "fmt"

// Decoder reads DER values from a byte slice. A Decoder never allocates:
// decoded values are returned as views into the input buffer wherever the
// type permits it.
//
// A Decoder is positioned within a scope, a contiguous range of the input.
// The top-level scope is the entire input. Decoding a constructed value
// opens a nested scope restricted to its contents octets, so a corrupt or
// hostile length can never make the decoder read octets that belong to an
// enclosing value.
//
// A Decoder must not be used from multiple goroutines simultaneously. The
// values it produces are plain data and may be shared freely.
type Decoder struct {
	buf []byte
	pos int // cursor, an absolute offset into buf
	end int // exclusive end of the current scope
}

// NewDecoder returns a Decoder reading from input. The Decoder borrows
// input: values decoded from it may reference the slice's backing array.
// The caller must not modify input until those values are no longer in use.
func NewDecoder(input []byte) *Decoder {
	return &Decoder{buf: input, end: len(input)}
}

// Len returns the number of octets remaining in the current scope.
func (d *Decoder) Len() int {
	return d.end - d.pos
}

// More reports whether any octets remain in the current scope.
func (d *Decoder) More() bool {
	return d.pos < d.end
}

// Offset returns the cursor position as a byte offset into the input passed
// to NewDecoder. Offsets remain absolute inside nested scopes, which makes
// them suitable for error reporting.
func (d *Decoder) Offset() int {
	return d.pos
}

// readByte consumes and returns a single octet.
func (d *Decoder) readByte() (byte, error) {
	if d.pos >= d.end {
		return 0, &Error{Kind: ErrIncomplete, Offset: d.pos}
	}
	c := d.buf[d.pos]
	d.pos++
	return c, nil
}

// ReadBytes consumes exactly n octets and returns them as a view into the
// input. The returned slice aliases the decoder's buffer; it remains valid
// after the decoder advances.
func (d *Decoder) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > d.end-d.pos {
		return nil, &Error{Kind: ErrIncomplete, Offset: d.pos}
	}
	bs := d.buf[d.pos : d.pos+n : d.pos+n]
	d.pos += n
	return bs, nil
}

// Nested runs fn on a decoder restricted to the next length octets. fn must
// consume the nested scope exactly: leftover octets are reported as
// ErrTrailingData. On success the cursor advances past the scope.
func (d *Decoder) Nested(length int, fn func(*Decoder) error) error {
	if length < 0 || length > d.end-d.pos {
		return &Error{Kind: ErrIncomplete, Offset: d.pos}
	}
	nested := Decoder{buf: d.buf, pos: d.pos, end: d.pos + length}
	if err := fn(&nested); err != nil {
		return err
	}
	if nested.pos != nested.end {
		return &Error{Kind: ErrTrailingData, Offset: nested.pos}
	}
	d.pos = nested.end
	return nil
}

// Decode decodes the value at the cursor into v and advances past it. The
// encoded value must carry exactly the tag reported by v.Tag, and v must
// consume the declared contents octets exactly.
func (d *Decoder) Decode(v Decodable) error {
	start := d.pos
	h, err := d.ReadHeader()
	if err != nil {
		return err
	}
	if h.Tag != v.Tag() {
		return &Error{
			Kind:   ErrUnexpectedTag,
			Offset: start,
			Err:    fmt.Errorf("expected %s, got %s", v.Tag(), h.Tag),
		}
	}
	return d.Nested(h.Length, func(d *Decoder) error {
		return v.DecodeValue(d, h.Length)
	})
}

// Finish verifies that the decoder's scope was consumed in full. Extra
// octets are reported as ErrTrailingData.
func (d *Decoder) Finish() error {
	if d.pos != d.end {
		return &Error{Kind: ErrTrailingData, Offset: d.pos}
	}
	return nil
}
