// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func utcTimeInput(s string) []byte {
	return append([]byte{0x17, byte(len(s))}, s...)
}

func generalizedTimeInput(s string) []byte {
	return append([]byte{0x18, byte(len(s))}, s...)
}

func TestUTCTimeDecode(t *testing.T) {
	tests := map[string]struct {
		input []byte
		want  time.Time
		err   error
	}{
		"EndOfCentury": {
			utcTimeInput("991231235959Z"),
			time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC), nil,
		},
		"StartOfCentury": {
			utcTimeInput("000101000000Z"),
			time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), nil,
		},
		"WindowHigh": {
			utcTimeInput("490615120000Z"),
			time.Date(2049, 6, 15, 12, 0, 0, 0, time.UTC), nil,
		},
		"WindowLow": {
			utcTimeInput("500615120000Z"),
			time.Date(1950, 6, 15, 12, 0, 0, 0, time.UTC), nil,
		},
		"MissingZone": {
			utcTimeInput("9912312359590"), time.Time{}, ErrNonCanonical,
		},
		"LocalOffset": {
			utcTimeInput("991231235959+0100"), time.Time{}, ErrInvalidLength,
		},
		"MissingSeconds": {
			utcTimeInput("9912312359Z"), time.Time{}, ErrInvalidLength,
		},
		"MonthOutOfRange": {
			utcTimeInput("991331235959Z"), time.Time{}, ErrNonCanonical,
		},
		"February30th": {
			utcTimeInput("000230120000Z"), time.Time{}, ErrNonCanonical,
		},
		"NonDigit": {
			utcTimeInput("99123123595-Z"), time.Time{}, ErrNonCanonical,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var v UTCTime
			err := Decode(tt.input, &v)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.err)
			}
			if !v.Time().Equal(tt.want) {
				t.Errorf("Decode() = %v, want %v", v.Time(), tt.want)
			}
		})
	}
}

func TestUTCTimeEncode(t *testing.T) {
	enc, err := Marshal(UTCTime(time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := utcTimeInput("260826120000Z"); !bytes.Equal(enc, want) {
		t.Errorf("Marshal() = %X, want %X", enc, want)
	}

	// Times are normalized to UTC before encoding.
	loc := time.FixedZone("UTC+2", 2*60*60)
	enc, err = Marshal(UTCTime(time.Date(2026, 8, 26, 14, 0, 0, 0, loc)))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := utcTimeInput("260826120000Z"); !bytes.Equal(enc, want) {
		t.Errorf("Marshal() = %X, want %X", enc, want)
	}

	for _, year := range []int{1949, 2050} {
		v := UTCTime(time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC))
		if _, err := Marshal(v); !errors.Is(err, ErrOverflow) {
			t.Errorf("Marshal(year %d) error = %v, want %v", year, err, ErrOverflow)
		}
	}
}

func TestGeneralizedTimeDecode(t *testing.T) {
	tests := map[string]struct {
		input []byte
		want  time.Time
		err   error
	}{
		"Simple": {
			generalizedTimeInput("20261231235959Z"),
			time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC), nil,
		},
		"DistantPast": {
			generalizedTimeInput("16000229120000Z"),
			time.Date(1600, 2, 29, 12, 0, 0, 0, time.UTC), nil,
		},
		"FractionalSeconds": {
			generalizedTimeInput("20261231235959.5Z"), time.Time{}, ErrInvalidLength,
		},
		"MissingZone": {
			generalizedTimeInput("202612312359590"), time.Time{}, ErrNonCanonical,
		},
		"February30th": {
			generalizedTimeInput("20260230120000Z"), time.Time{}, ErrNonCanonical,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var v GeneralizedTime
			err := Decode(tt.input, &v)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.err)
			}
			if !v.Time().Equal(tt.want) {
				t.Errorf("Decode() = %v, want %v", v.Time(), tt.want)
			}
		})
	}
}

func TestGeneralizedTimeEncode(t *testing.T) {
	enc, err := Marshal(GeneralizedTime(time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := generalizedTimeInput("20260826120000Z"); !bytes.Equal(enc, want) {
		t.Errorf("Marshal() = %X, want %X", enc, want)
	}

	v := GeneralizedTime(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC))
	if _, err := Marshal(v); !errors.Is(err, ErrOverflow) {
		t.Errorf("Marshal(year 10000) error = %v, want %v", err, ErrOverflow)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	moments := []time.Time{
		time.Date(1988, 7, 20, 6, 30, 15, 0, time.UTC),
		time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC),
	}
	for _, want := range moments {
		enc, err := Marshal(UTCTime(want))
		if err != nil {
			t.Fatalf("Marshal(UTCTime) error = %v", err)
		}
		var u UTCTime
		if err := Decode(enc, &u); err != nil {
			t.Fatalf("Decode(UTCTime) error = %v", err)
		}
		if !u.Time().Equal(want) {
			t.Errorf("UTCTime round trip = %v, want %v", u.Time(), want)
		}

		enc, err = Marshal(GeneralizedTime(want))
		if err != nil {
			t.Fatalf("Marshal(GeneralizedTime) error = %v", err)
		}
		var g GeneralizedTime
		if err := Decode(enc, &g); err != nil {
			t.Fatalf("Decode(GeneralizedTime) error = %v", err)
		}
		if !g.Time().Equal(want) {
			t.Errorf("GeneralizedTime round trip = %v, want %v", g.Time(), want)
		}
	}
}
