// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pkcs1 implements the RSA key formats defined in PKCS #1, published
// as RFC 8017, Appendix A.
//
// The package covers the DER layer only: it maps key material to and from
// the RSAPrivateKey and RSAPublicKey ASN.1 types without interpreting it.
// Key components are exposed as der.UIntBytes views into the input, so
// parsing a key does not copy its material; call RsaPrivateKey.Zeroize to
// scrub everything a parsed key refers to.
package pkcs1

import (
	"errors"

	"github.com/olekhov/formats/der"
)

// ErrVersion is reported when a key declares a version number this package
// does not know.
var ErrVersion = errors.New("pkcs1: unrecognized version number")

// ErrVersionMismatch is reported when a key's version number contradicts its
// fields: a two-prime key carrying otherPrimeInfos, or a multi-prime key
// without them. RFC 8017 ties the two together, so a mismatch means the key
// was produced incorrectly or tampered with.
var ErrVersionMismatch = errors.New("pkcs1: version does not match the prime count")

// ParseRsaPrivateKey parses a DER-encoded RSAPrivateKey. The returned key
// borrows from input; it stays valid only as long as input does.
func ParseRsaPrivateKey(input []byte) (*RsaPrivateKey, error) {
	key := new(RsaPrivateKey)
	if err := der.Decode(input, key); err != nil {
		return nil, err
	}
	return key, nil
}

// MarshalRsaPrivateKey returns the DER encoding of key.
func MarshalRsaPrivateKey(key *RsaPrivateKey) ([]byte, error) {
	return der.Marshal(key)
}

// ParseRsaPublicKey parses a DER-encoded RSAPublicKey. The returned key
// borrows from input; it stays valid only as long as input does.
func ParseRsaPublicKey(input []byte) (*RsaPublicKey, error) {
	key := new(RsaPublicKey)
	if err := der.Decode(input, key); err != nil {
		return nil, err
	}
	return key, nil
}

// MarshalRsaPublicKey returns the DER encoding of key.
func MarshalRsaPublicKey(key *RsaPublicKey) ([]byte, error) {
	return der.Marshal(key)
}
