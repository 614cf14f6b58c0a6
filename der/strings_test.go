// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"errors"
	"testing"
)

func TestUTF8String(t *testing.T) {
	enc, err := Marshal(UTF8String("héllo"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := []byte{0x0C, 0x06, 0x68, 0xC3, 0xA9, 0x6C, 0x6C, 0x6F}
	if !bytes.Equal(enc, want) {
		t.Errorf("Marshal() = %X, want %X", enc, want)
	}

	var s UTF8String
	if err := Decode(enc, &s); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if s != "héllo" {
		t.Errorf("Decode() = %q, want %q", s, "héllo")
	}

	// 0xC3 starts a two-octet sequence that 0x28 cannot continue.
	err = Decode([]byte{0x0C, 0x02, 0xC3, 0x28}, &s)
	if !errors.Is(err, ErrNonCanonical) {
		t.Errorf("Decode(invalid UTF-8) error = %v, want %v", err, ErrNonCanonical)
	}
	if _, err := Marshal(UTF8String("\xC3\x28")); !errors.Is(err, ErrNonCanonical) {
		t.Errorf("Marshal(invalid UTF-8) error = %v, want %v", err, ErrNonCanonical)
	}
}

func TestPrintableString(t *testing.T) {
	const valid = "Test User 19(+)?"
	enc, err := Marshal(PrintableString(valid))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var s PrintableString
	if err := Decode(enc, &s); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if string(s) != valid {
		t.Errorf("Decode() = %q, want %q", s, valid)
	}

	err = Decode([]byte{0x13, 0x03, 'a', '@', 'b'}, &s)
	if !errors.Is(err, ErrNonCanonical) {
		t.Errorf("Decode(%q) error = %v, want %v", "a@b", err, ErrNonCanonical)
	}
	if _, err := Marshal(PrintableString("a@b")); !errors.Is(err, ErrNonCanonical) {
		t.Errorf("Marshal(%q) error = %v, want %v", "a@b", err, ErrNonCanonical)
	}
}

func TestIA5String(t *testing.T) {
	const valid = "user@example.com"
	enc, err := Marshal(IA5String(valid))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var s IA5String
	if err := Decode(enc, &s); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if string(s) != valid {
		t.Errorf("Decode() = %q, want %q", s, valid)
	}

	err = Decode([]byte{0x16, 0x03, 'a', 0x80, 'b'}, &s)
	if !errors.Is(err, ErrNonCanonical) {
		t.Errorf("Decode(non-ASCII) error = %v, want %v", err, ErrNonCanonical)
	}
	if _, err := Marshal(IA5String("héllo")); !errors.Is(err, ErrNonCanonical) {
		t.Errorf("Marshal(non-ASCII) error = %v, want %v", err, ErrNonCanonical)
	}
}
