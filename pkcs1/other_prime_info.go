// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkcs1

import (
	"github.com/olekhov/formats/der"
)

// OtherPrimeInfo describes one additional prime of a multi-prime RSA key,
// as defined in RFC 8017, Appendix A.1.2:
//
//	OtherPrimeInfo ::= SEQUENCE {
//	    prime             INTEGER,  -- ri
//	    exponent          INTEGER,  -- di
//	    coefficient       INTEGER   -- ti
//	}
type OtherPrimeInfo struct {
	// Prime is the prime factor r_i of n.
	Prime der.UIntBytes
	// Exponent is d mod (r_i - 1).
	Exponent der.UIntBytes
	// Coefficient is the CRT coefficient (r_1 * r_2 * ... * r_(i-1))^(-1) mod r_i.
	Coefficient der.UIntBytes
}

// Tag returns der.TagSequence.
func (OtherPrimeInfo) Tag() der.Tag {
	return der.TagSequence
}

// ValueLen returns the number of contents octets of the encoded info.
func (info OtherPrimeInfo) ValueLen() (int, error) {
	return der.SequenceValueLen(info.Prime, info.Exponent, info.Coefficient)
}

// EncodeValue writes the fields of the info in order.
func (info OtherPrimeInfo) EncodeValue(e *der.Encoder) error {
	return der.EncodeSequenceValue(e, info.Prime, info.Exponent, info.Coefficient)
}

// DecodeValue decodes the fields of the info. The integer views borrow from
// the decoder's input.
func (info *OtherPrimeInfo) DecodeValue(d *der.Decoder, length int) error {
	if err := d.Decode(&info.Prime); err != nil {
		return err
	}
	if err := d.Decode(&info.Exponent); err != nil {
		return err
	}
	return d.Decode(&info.Coefficient)
}
