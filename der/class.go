// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

//go:generate stringer -type=Class -trimprefix=Class

// Class identifies the scope of an ASN.1 tag. The class of a tag occupies
// the top two bits of the first identifier octet.
type Class uint8

// These are all tag classes defined by ASN.1, in Rec. ITU-T X.680,
// Section 8, Table 1.
const (
	ClassUniversal       Class = 0b00
	ClassApplication     Class = 0b01
	ClassContextSpecific Class = 0b10
	ClassPrivate         Class = 0b11
)

// IsValid reports whether c is a valid class value.
func (c Class) IsValid() bool {
	return c <= 0b11
}
