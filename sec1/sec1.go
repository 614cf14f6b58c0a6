// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sec1 implements the elliptic curve key encodings defined in SEC 1:
// Elliptic Curve Cryptography, Version 2.0.
//
// It covers the ECPrivateKey DER format, also published as RFC 5915, and the
// Elliptic-Curve-Point-to-Octet-String encoding of curve points. Both are
// byte formats: the package never performs curve arithmetic and never
// validates that a point lies on a curve.
//
// Private key material is exposed as views into the input; call
// EcPrivateKey.Zeroize to scrub it.
package sec1

import (
	"errors"

	"github.com/olekhov/formats/der"
)

// ErrVersion is reported when a key declares a version other than
// ecPrivkeyVer1, the only version RFC 5915 defines.
var ErrVersion = errors.New("sec1: unsupported version number")

// ParseEcPrivateKey parses a DER-encoded ECPrivateKey. The returned key
// borrows from input; it stays valid only as long as input does.
func ParseEcPrivateKey(input []byte) (*EcPrivateKey, error) {
	key := new(EcPrivateKey)
	if err := der.Decode(input, key); err != nil {
		return nil, err
	}
	return key, nil
}

// MarshalEcPrivateKey returns the DER encoding of key.
func MarshalEcPrivateKey(key *EcPrivateKey) ([]byte, error) {
	return der.Marshal(key)
}
