// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"
	"time"
)

// UTCTime is an ASN.1 UTCTime, a calendar time with a two-digit year and
// one second resolution.
//
// DER requires the form YYMMDDHHMMSSZ: seconds always present, no
// fractional seconds and the time zone always Z. Two-digit years are
// interpreted as defined in RFC 5280, Section 4.1.2.5.1: values from 50
// through 99 mean 1950 through 1999, values from 00 through 49 mean 2000
// through 2049. Encoding a year outside this window fails with
// ErrOverflow; use GeneralizedTime for such dates.
type UTCTime time.Time

// Time returns t as a time.Time.
func (t UTCTime) Time() time.Time {
	return time.Time(t)
}

// Tag returns TagUTCTime.
func (UTCTime) Tag() Tag {
	return TagUTCTime
}

// ValueLen returns the number of contents octets, which is always 13. It
// reports ErrOverflow if the year falls outside the UTCTime window.
func (t UTCTime) ValueLen() (int, error) {
	if year := time.Time(t).UTC().Year(); year < 1950 || year > 2049 {
		return 0, &Error{Kind: ErrOverflow, Offset: -1, Err: errors.New("UTCTime can only represent the years 1950 through 2049")}
	}
	return 13, nil
}

// EncodeValue writes the contents octets. The time is converted to UTC and
// truncated to whole seconds.
func (t UTCTime) EncodeValue(e *Encoder) error {
	u := time.Time(t).UTC()
	var bs [13]byte
	putDigits2(bs[0:], u.Year()%100)
	putDigits2(bs[2:], int(u.Month()))
	putDigits2(bs[4:], u.Day())
	putDigits2(bs[6:], u.Hour())
	putDigits2(bs[8:], u.Minute())
	putDigits2(bs[10:], u.Second())
	bs[12] = 'Z'
	return e.WriteBytes(bs[:])
}

// DecodeValue decodes the contents octets.
func (t *UTCTime) DecodeValue(d *Decoder, length int) error {
	start := d.pos
	if length != 13 {
		return &Error{Kind: ErrInvalidLength, Offset: start, Err: errors.New("UTCTime must use the 13 octet YYMMDDHHMMSSZ form")}
	}
	bs, err := d.ReadBytes(length)
	if err != nil {
		return err
	}
	if bs[12] != 'Z' {
		return &Error{Kind: ErrNonCanonical, Offset: start, Err: errors.New("UTCTime must use the UTC time zone Z")}
	}
	year, ok := atoi2(bs[0:])
	if year >= 50 {
		year += 1900
	} else {
		year += 2000
	}
	parsed, ok2 := parseCalendar(year, bs[2:12])
	if !ok || !ok2 {
		return &Error{Kind: ErrNonCanonical, Offset: start, Err: errors.New("UTCTime contents are not a valid calendar time")}
	}
	*t = UTCTime(parsed)
	return nil
}

// GeneralizedTime is an ASN.1 GeneralizedTime, a calendar time with a
// four-digit year and one second resolution.
//
// DER requires the form YYYYMMDDHHMMSSZ: seconds always present, no
// fractional seconds and the time zone always Z; see Rec. ITU-T X.690,
// Section 11.7. Encoding a year outside 0 through 9999 fails with
// ErrOverflow.
type GeneralizedTime time.Time

// Time returns t as a time.Time.
func (t GeneralizedTime) Time() time.Time {
	return time.Time(t)
}

// Tag returns TagGeneralizedTime.
func (GeneralizedTime) Tag() Tag {
	return TagGeneralizedTime
}

// ValueLen returns the number of contents octets, which is always 15. It
// reports ErrOverflow if the year needs more than four digits.
func (t GeneralizedTime) ValueLen() (int, error) {
	if year := time.Time(t).UTC().Year(); year < 0 || year > 9999 {
		return 0, &Error{Kind: ErrOverflow, Offset: -1, Err: errors.New("GeneralizedTime can only represent the years 0 through 9999")}
	}
	return 15, nil
}

// EncodeValue writes the contents octets. The time is converted to UTC and
// truncated to whole seconds.
func (t GeneralizedTime) EncodeValue(e *Encoder) error {
	u := time.Time(t).UTC()
	var bs [15]byte
	putDigits2(bs[0:], u.Year()/100)
	putDigits2(bs[2:], u.Year()%100)
	putDigits2(bs[4:], int(u.Month()))
	putDigits2(bs[6:], u.Day())
	putDigits2(bs[8:], u.Hour())
	putDigits2(bs[10:], u.Minute())
	putDigits2(bs[12:], u.Second())
	bs[14] = 'Z'
	return e.WriteBytes(bs[:])
}

// DecodeValue decodes the contents octets.
func (t *GeneralizedTime) DecodeValue(d *Decoder, length int) error {
	start := d.pos
	if length != 15 {
		return &Error{Kind: ErrInvalidLength, Offset: start, Err: errors.New("GeneralizedTime must use the 15 octet YYYYMMDDHHMMSSZ form")}
	}
	bs, err := d.ReadBytes(length)
	if err != nil {
		return err
	}
	if bs[14] != 'Z' {
		return &Error{Kind: ErrNonCanonical, Offset: start, Err: errors.New("GeneralizedTime must use the UTC time zone Z")}
	}
	century, ok := atoi2(bs[0:])
	year2, ok2 := atoi2(bs[2:])
	parsed, ok3 := parseCalendar(century*100+year2, bs[4:14])
	if !ok || !ok2 || !ok3 {
		return &Error{Kind: ErrNonCanonical, Offset: start, Err: errors.New("GeneralizedTime contents are not a valid calendar time")}
	}
	*t = GeneralizedTime(parsed)
	return nil
}

// parseCalendar parses the MMDDHHMMSS digits in bs into a UTC time with the
// given year. It reports false if a digit is out of range or the fields do
// not name a real calendar time, such as the 30th of February.
func parseCalendar(year int, bs []byte) (time.Time, bool) {
	month, ok1 := atoi2(bs[0:])
	day, ok2 := atoi2(bs[2:])
	hour, ok3 := atoi2(bs[4:])
	minute, ok4 := atoi2(bs[6:])
	second, ok5 := atoi2(bs[8:])
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	// time.Date normalizes out-of-range fields instead of failing, so an
	// invalid time is one that does not survive the round trip.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, false
	}
	return t, true
}

// atoi2 parses exactly two decimal digits.
func atoi2(bs []byte) (int, bool) {
	if bs[0] < '0' || bs[0] > '9' || bs[1] < '0' || bs[1] > '9' {
		return 0, false
	}
	return int(bs[0]-'0')*10 + int(bs[1]-'0'), true
}

// putDigits2 writes n as exactly two decimal digits.
func putDigits2(bs []byte, n int) {
	bs[0] = '0' + byte(n/10)
	bs[1] = '0' + byte(n%10)
}
