// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec1

import (
	"github.com/olekhov/formats/der"
)

// Object identifiers of the named curves commonly found in ECPrivateKey
// parameters, from RFC 5480, Section 2.1.1.1 and SEC 2, Version 2.0.
var (
	// OIDSecp256r1 names secp256r1, also known as NIST P-256.
	OIDSecp256r1 = der.MustParseObjectIdentifier("1.2.840.10045.3.1.7")
	// OIDSecp384r1 names secp384r1, also known as NIST P-384.
	OIDSecp384r1 = der.MustParseObjectIdentifier("1.3.132.0.34")
	// OIDSecp521r1 names secp521r1, also known as NIST P-521.
	OIDSecp521r1 = der.MustParseObjectIdentifier("1.3.132.0.35")
	// OIDSecp256k1 names secp256k1, the curve used by Bitcoin.
	OIDSecp256k1 = der.MustParseObjectIdentifier("1.3.132.0.10")
)

// EcParameters identifies the curve of an ECPrivateKey.
//
// RFC 5480, Section 2.1.1 defines ECParameters as a CHOICE, but mandates the
// namedCurve alternative for PKIX and reserves the others, so this type
// supports only named curves. On the wire an EcParameters is therefore a
// plain OBJECT IDENTIFIER.
type EcParameters struct {
	// NamedCurve identifies the curve.
	NamedCurve der.ObjectIdentifier
}

// Tag returns der.TagObjectIdentifier.
func (EcParameters) Tag() der.Tag {
	return der.TagObjectIdentifier
}

// ValueLen returns the number of contents octets of the encoded parameters.
func (p EcParameters) ValueLen() (int, error) {
	return p.NamedCurve.ValueLen()
}

// EncodeValue writes the contents octets of the curve identifier.
func (p EcParameters) EncodeValue(e *der.Encoder) error {
	return p.NamedCurve.EncodeValue(e)
}

// DecodeValue decodes the contents octets of the curve identifier.
func (p *EcParameters) DecodeValue(d *der.Decoder, length int) error {
	return p.NamedCurve.DecodeValue(d, length)
}
