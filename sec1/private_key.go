// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec1

import (
	"fmt"

	"github.com/olekhov/formats/der"
)

// ecPrivkeyVer1 is the only ECPrivateKey version RFC 5915 defines.
const ecPrivkeyVer1 = 1

// EcPrivateKey is an ECPrivateKey as defined in RFC 5915, Section 3:
//
//	ECPrivateKey ::= SEQUENCE {
//	    version        INTEGER { ecPrivkeyVer1(1) } (ecPrivkeyVer1),
//	    privateKey     OCTET STRING,
//	    parameters [0] ECParameters {{ NamedCurve }} OPTIONAL,
//	    publicKey  [1] BIT STRING OPTIONAL
//	}
//
// The version field is pinned to ecPrivkeyVer1 and not stored; decoding any
// other version fails with ErrVersion.
type EcPrivateKey struct {
	// PrivateKey is the private scalar, padded to the byte length of the
	// curve order. It is a view into the input the key was parsed from.
	PrivateKey []byte
	// Parameters identifies the curve. RFC 5915 requires it, but formats
	// that carry the curve elsewhere, such as PKCS #8, omit it, so it is
	// optional here.
	Parameters *EcParameters
	// PublicKey is the public point as an Elliptic-Curve-Point-to-Octet-
	// String encoding wrapped in a BIT STRING, if present. Use
	// ParseEncodedPoint to interpret it.
	PublicKey *der.BitString
}

// Zeroize overwrites the private scalar with zeros. Because the view aliases
// the buffer the key was parsed from, the buffer is scrubbed as well. The
// curve identifier and the public point are not private and stay intact.
func (k *EcPrivateKey) Zeroize() {
	der.Zeroize(k.PrivateKey)
}

// Tag returns der.TagSequence.
func (*EcPrivateKey) Tag() der.Tag {
	return der.TagSequence
}

// ValueLen returns the number of contents octets of the encoded key.
func (k *EcPrivateKey) ValueLen() (int, error) {
	return der.SequenceValueLen(k.fields()...)
}

// EncodeValue writes the fields of the key in order.
func (k *EcPrivateKey) EncodeValue(e *der.Encoder) error {
	return der.EncodeSequenceValue(e, k.fields()...)
}

func (k *EcPrivateKey) fields() []der.Encodable {
	fields := []der.Encodable{
		der.Int(ecPrivkeyVer1),
		der.OctetString(k.PrivateKey),
	}
	if k.Parameters != nil {
		fields = append(fields, der.Explicit(0, *k.Parameters))
	}
	if k.PublicKey != nil {
		fields = append(fields, der.Explicit(1, *k.PublicKey))
	}
	return fields
}

// DecodeValue decodes the fields of the key. The private scalar and the
// public point borrow from the decoder's input.
func (k *EcPrivateKey) DecodeValue(d *der.Decoder, length int) error {
	version, err := der.ReadInt[int64](d)
	if err != nil {
		return err
	}
	if version != ecPrivkeyVer1 {
		return fmt.Errorf("%w: %d", ErrVersion, version)
	}
	var privateKey der.OctetString
	if err := d.Decode(&privateKey); err != nil {
		return err
	}
	k.PrivateKey = privateKey
	if k.Parameters, err = der.OptionalExplicit[EcParameters](d, 0); err != nil {
		return err
	}
	k.PublicKey, err = der.OptionalExplicit[der.BitString](d, 1)
	return err
}
