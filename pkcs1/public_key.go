// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkcs1

import (
	"github.com/olekhov/formats/der"
)

// RsaPublicKey is an RSAPublicKey as defined in RFC 8017, Appendix A.1.1:
//
//	RSAPublicKey ::= SEQUENCE {
//	    modulus           INTEGER,  -- n
//	    publicExponent    INTEGER   -- e
//	}
type RsaPublicKey struct {
	// Modulus is the RSA modulus n.
	Modulus der.UIntBytes
	// PublicExponent is the public exponent e.
	PublicExponent der.UIntBytes
}

// Equal reports whether k and other hold the same key.
func (k RsaPublicKey) Equal(other RsaPublicKey) bool {
	return k.Modulus.Equal(other.Modulus) && k.PublicExponent.Equal(other.PublicExponent)
}

// Tag returns der.TagSequence.
func (RsaPublicKey) Tag() der.Tag {
	return der.TagSequence
}

// ValueLen returns the number of contents octets of the encoded key.
func (k RsaPublicKey) ValueLen() (int, error) {
	return der.SequenceValueLen(k.Modulus, k.PublicExponent)
}

// EncodeValue writes the fields of the key in order.
func (k RsaPublicKey) EncodeValue(e *der.Encoder) error {
	return der.EncodeSequenceValue(e, k.Modulus, k.PublicExponent)
}

// DecodeValue decodes the fields of the key. The integer views borrow from
// the decoder's input.
func (k *RsaPublicKey) DecodeValue(d *der.Decoder, length int) error {
	if err := d.Decode(&k.Modulus); err != nil {
		return err
	}
	return d.Decode(&k.PublicExponent)
}
