// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"errors"
	"testing"
)

func TestBooleanDecode(t *testing.T) {
	tests := map[string]struct {
		input []byte
		want  Boolean
		err   error
	}{
		"True":  {[]byte{0x01, 0x01, 0xFF}, true, nil},
		"False": {[]byte{0x01, 0x01, 0x00}, false, nil},
		// BER accepts any nonzero octet as TRUE, DER only 0xFF.
		"NonCanonicalTrue": {[]byte{0x01, 0x01, 0x01}, false, ErrNonCanonical},
		"AlmostTrue":       {[]byte{0x01, 0x01, 0xFE}, false, ErrNonCanonical},
		"Empty":            {[]byte{0x01, 0x00}, false, ErrInvalidLength},
		"TwoOctets":        {[]byte{0x01, 0x02, 0xFF, 0xFF}, false, ErrInvalidLength},
		"Truncated":        {[]byte{0x01, 0x01}, false, ErrIncomplete},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var b Boolean
			err := Decode(tt.input, &b)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.err)
			}
			if b != tt.want {
				t.Errorf("Decode() = %t, want %t", b, tt.want)
			}
		})
	}
}

func TestBooleanEncode(t *testing.T) {
	enc, err := Marshal(Boolean(true))
	if err != nil {
		t.Fatalf("Marshal(true) error = %v", err)
	}
	if want := []byte{0x01, 0x01, 0xFF}; !bytes.Equal(enc, want) {
		t.Errorf("Marshal(true) = %X, want %X", enc, want)
	}
	enc, err = Marshal(Boolean(false))
	if err != nil {
		t.Fatalf("Marshal(false) error = %v", err)
	}
	if want := []byte{0x01, 0x01, 0x00}; !bytes.Equal(enc, want) {
		t.Errorf("Marshal(false) = %X, want %X", enc, want)
	}
}
